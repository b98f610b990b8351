package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/mothlight/winshell/geom"
	"github.com/mothlight/winshell/relay"
	"github.com/mothlight/winshell/shell"
	"github.com/mothlight/winshell/window"
)

const (
	pulseTick     = 50 * time.Millisecond
	pulsePeriod   = 0.8 // Seconds per half-cycle
	trailLength   = 12
	trailDecayPer = 0.85
	sampleRate    = beep.SampleRate(44100)
)

// pulse is the update message the state goroutine feeds into the loop.
type pulse struct {
	Beat  int
	Level float64
}

// pulseState lives entirely on the state goroutine.
type pulseState struct {
	tween  *gween.Tween
	rising bool
	beat   int
}

func newPulseState() pulseState {
	return pulseState{
		tween:  gween.New(0, 1, pulsePeriod, ease.InOutQuad),
		rising: true,
	}
}

// managePulse is the state loop: it eases a heartbeat level up and down
// forever, relaying each sample, and winds down when the loop reports Off.
func managePulse(state *pulseState, send shell.SendFunc[pulse]) {
	ticker := time.NewTicker(pulseTick)
	defer ticker.Stop()

	for range ticker.C {
		level, finished := state.tween.Update(float32(pulseTick.Seconds()))
		if finished {
			if state.rising {
				state.tween = gween.New(1, 0, pulsePeriod, ease.InOutQuad)
			} else {
				state.tween = gween.New(0, 1, pulsePeriod, ease.InOutQuad)
				state.beat++
			}
			state.rising = !state.rising
		}
		if send(pulse{Beat: state.beat, Level: float64(level)}) == relay.Off {
			return
		}
	}
}

type trailPoint struct {
	pos       geom.LogicalPosition
	intensity float64
}

// demoApp renders a pulsing meter and echoes input state. All fields are
// touched from the loop goroutine only.
type demoApp struct {
	win *window.TcellWindow

	level   float64
	beat    int
	focused bool
	mods    window.Modifier
	size    geom.LogicalSize
	presses int
	trail   []trailPoint

	beepCfg beepConfig
	audioOK bool
}

func newDemoApp(win *window.TcellWindow, cfg beepConfig) *demoApp {
	a := &demoApp{
		win:     win,
		focused: true,
		beepCfg: cfg,
		trail:   make([]trailPoint, 0, trailLength),
	}
	w, h := win.Size()
	a.size = geom.LogicalSize{Width: float64(w), Height: float64(h)}

	if cfg.Enabled {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
			a.audioOK = true
		}
	}
	return a
}

func (a *demoApp) playBeep() {
	if !a.audioOK {
		return
	}
	sine, err := generators.SineTone(sampleRate, a.beepCfg.Freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(a.beepCfg.Duration.Duration), sine))
}

func (a *demoApp) Render(surface window.Surface) {
	surface.Clear()
	width, height := surface.Size()

	dim := window.Style{Fg: window.RGB{R: 110, G: 110, B: 110}}
	bright := window.Style{Fg: window.RGB{R: 230, G: 230, B: 230}, Attrs: window.AttrBold}

	// Pulse meter across the middle
	meterY := height / 2
	filled := int(a.level * float64(width-2))
	g := uint8(80 + a.level*175)
	barStyle := window.Style{Fg: window.RGB{R: 40, G: g, B: 60}, Attrs: window.AttrBold}
	for x := 0; x < width-2; x++ {
		r := ' '
		style := dim
		if x < filled {
			r = '█'
			style = barStyle
		}
		surface.SetCell(x+1, meterY, r, style)
	}

	// Cursor trail, newest brightest
	for _, p := range a.trail {
		v := uint8(60 + p.intensity*195)
		surface.SetCell(int(p.pos.X), int(p.pos.Y), '·',
			window.Style{Fg: window.RGB{R: v, G: v, B: 0}})
	}

	// Status line
	status := fmt.Sprintf(" beat %d  level %.2f  keys %d  mods %04b  focus %v  %gx%g  q to quit ",
		a.beat, a.level, a.presses, a.mods, a.focused, a.size.Width, a.size.Height)
	for i, r := range status {
		if i >= width {
			break
		}
		surface.SetCell(i, height-1, r, bright)
	}

	surface.Show()
}

func (a *demoApp) Receive(update pulse) {
	a.beat = update.Beat
	a.level = update.Level
	a.decayTrail()
}

func (a *demoApp) PressKey(key window.Key) {
	if key == window.KeyQ || key == window.KeyEscape {
		a.win.RequestClose()
		return
	}
	a.presses++
	a.playBeep()
}

func (a *demoApp) ReleaseKey(window.Key) {}

func (a *demoApp) SetFocus(focused bool) {
	a.focused = focused
}

func (a *demoApp) MoveCursor(pos geom.LogicalPosition) {
	if len(a.trail) >= trailLength {
		a.trail = a.trail[1:]
	}
	a.trail = append(a.trail, trailPoint{pos: pos, intensity: 1.0})
}

func (a *demoApp) PressMouse(window.MouseButton) { a.playBeep() }
func (a *demoApp) ReleaseMouse(window.MouseButton) {}

func (a *demoApp) ChangeModifiers(mods window.Modifier) {
	a.mods = mods
}

func (a *demoApp) Resize(size geom.LogicalSize) {
	a.size = size
	a.trail = a.trail[:0]
}

func (a *demoApp) decayTrail() {
	kept := a.trail[:0]
	for _, p := range a.trail {
		p.intensity *= trailDecayPer
		if p.intensity > 0.05 {
			kept = append(kept, p)
		}
	}
	a.trail = kept
}
