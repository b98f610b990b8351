// winshell-demo is a reference client for the winshell loop: a pulsing
// meter driven by a background state goroutine, with key beeps and a mouse
// trail. Run it in a real terminal; q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mothlight/winshell/shell"
	"github.com/mothlight/winshell/window"
)

var (
	configFlag = flag.String("config", "", "Path to config.toml (default: XDG search)")
	muteFlag   = flag.Bool("mute", false, "Disable key beeps")
	fpsFlag    = flag.Float64("fps", 0, "Override render rate (frames per second)")
	debugFlag  = flag.String("debuglog", "", "Write loop diagnostics to this file")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Beep.Enabled = false
	}
	if *fpsFlag > 0 {
		cfg.FrameInterval = duration{time.Duration(float64(time.Second) / *fpsFlag)}
	}

	var logf func(string, ...any)
	if *debugFlag != "" {
		f, err := os.OpenFile(*debugFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logf = log.New(f, "", log.LstdFlags|log.Lmicroseconds).Printf
	}

	var win *window.TcellWindow

	// Restore the terminal before printing a crash, or the trace is lost
	// in the alternate screen
	defer func() {
		if r := recover(); r != nil {
			if win != nil {
				win.Fini()
			}
			fmt.Fprintf(os.Stderr, "\nwinshell-demo crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	win = window.NewTcell(screen)
	if err := win.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize window: %v\n", err)
		os.Exit(1)
	}
	defer win.Fini()

	app := newDemoApp(win, cfg.Beep)
	prog := shell.Program[pulseState, pulse]{
		InitialState: newPulseState,
		ManageState:  managePulse,
	}

	shell.Run(win, app, prog, shell.Config{
		FrameInterval: cfg.FrameInterval.Duration,
		QueueSize:     cfg.QueueSize,
		Logf:          logf,
	})
}
