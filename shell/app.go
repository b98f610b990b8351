// Package shell runs the event loop of a single-window application: it
// renders on a fixed cadence, translates native window events into typed
// callbacks, and carries update messages from the application's background
// state goroutine into the same loop.
package shell

import (
	"github.com/mothlight/winshell/geom"
	"github.com/mothlight/winshell/relay"
	"github.com/mothlight/winshell/window"
)

// App is the callback surface the loop drives. All methods are invoked on
// the loop goroutine, one at a time, in event order. U is the update message
// type produced by the application's state goroutine; values cross the
// goroutine boundary by ownership handoff only.
type App[U any] interface {
	// Render draws the current view. Called once per loop iteration,
	// before that iteration's event is processed
	Render(surface window.Surface)

	// Receive takes ownership of one update message from the state
	// goroutine
	Receive(update U)

	// PressKey handles a key going down. Pressed keys are delivered
	// twice per native event; existing clients depend on the repeat
	PressKey(key window.Key)

	// ReleaseKey handles a key going up. Delivered exactly once
	ReleaseKey(key window.Key)

	// SetFocus handles window focus changes
	SetFocus(focused bool)

	// MoveCursor handles cursor motion, in logical units
	MoveCursor(pos geom.LogicalPosition)

	// PressMouse and ReleaseMouse handle mouse button edges
	PressMouse(button window.MouseButton)
	ReleaseMouse(button window.MouseButton)

	// ChangeModifiers handles changes to the held modifier set
	ChangeModifiers(mods window.Modifier)

	// Resize handles window size changes, in logical units
	Resize(size geom.LogicalSize)
}

// SendFunc relays one update message into the loop. The returned signal is
// the producer's lifecycle: relay.Off means the loop is gone and the state
// logic should wind down.
type SendFunc[U any] func(update U) relay.Signal

// Program supplies the state side of an application: the pieces that run
// outside the App instance, on their own goroutine.
type Program[S, U any] struct {
	// InitialState produces the state value the state goroutine owns for
	// its entire lifetime. The loop never touches it
	InitialState func() S

	// ManageState runs the state loop. It does not return under normal
	// operation; its cue to stop producing is send reporting relay.Off
	ManageState func(state *S, send SendFunc[U])
}
