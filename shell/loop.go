package shell

import (
	"runtime/debug"

	"github.com/mothlight/winshell/relay"
	"github.com/mothlight/winshell/window"
)

// loopEvent is one entry in the shared queue: either a native window event
// or a relayed update message. Sharing one FIFO keeps relayed messages and
// native events in plain enqueue order.
type loopEvent[U any] struct {
	native   window.Event
	update   U
	isUpdate bool
}

// Run drives the application until the window reports CloseRequested or
// Destroyed. Each iteration renders once, then waits for the next queued
// event or the frame deadline, whichever comes first. The window must
// already be initialized; Run does not Fini it.
//
// Run spawns exactly one state goroutine for prog. That goroutine is never
// joined: its cue to wind down is the send function reporting relay.Off,
// which every send does once Run returns. A panic in the state goroutine
// kills only that goroutine; the loop keeps running without further
// updates, and the crash is reported through cfg.Logf.
func Run[S, U any](win window.Window, app App[U], prog Program[S, U], cfg Config) {
	cfg = cfg.withDefaults()

	queue := relay.New[loopEvent[U]](cfg.QueueSize)
	defer queue.Close()

	loopDone := make(chan struct{})
	defer close(loopDone)

	// Forward the native stream into the shared queue. A closed stream
	// means the window is gone: inject Destroyed so the loop unwinds.
	// loopDone releases the forwarder when Run exits first, so its
	// lifetime never hangs on a window that keeps its stream open
	go func() {
		for {
			select {
			case ev, ok := <-win.Events():
				if !ok {
					queue.Send(loopEvent[U]{native: window.Event{Type: window.EventDestroyed}})
					return
				}
				if queue.Send(loopEvent[U]{native: ev}) == relay.Off {
					return
				}
			case <-loopDone:
				return
			}
		}
	}()

	send := SendFunc[U](func(update U) relay.Signal {
		return queue.Send(loopEvent[U]{update: update, isUpdate: true})
	})
	go runState(prog, send, cfg)

	t := newTranslator(app, win.ScaleFactor(), cfg.Logf)
	surface := win.Surface()

	timer := newStoppedTimer()
	defer timer.Stop()

	for {
		app.Render(surface)

		resetTimer(timer, cfg.FrameInterval)

		select {
		case <-queue.Ready():
			ev, ok := queue.Next()
			if !ok {
				continue
			}
			if ev.isUpdate {
				app.Receive(ev.update)
			} else if !t.dispatch(ev.native) {
				return
			}
		case <-timer.C:
			// Frame deadline: next iteration renders again
		}
	}
}

// runState owns the application state for its lifetime. Recovery keeps a
// client panic from taking down the window loop; in Go an unrecovered panic
// on any goroutine ends the whole process.
func runState[S, U any](prog Program[S, U], send SendFunc[U], cfg Config) {
	defer func() {
		if r := recover(); r != nil {
			cfg.logf("winshell: state goroutine crashed: %v\n%s", r, debug.Stack())
		}
	}()
	state := prog.InitialState()
	prog.ManageState(&state, send)
}
