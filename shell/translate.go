package shell

import (
	"github.com/mothlight/winshell/geom"
	"github.com/mothlight/winshell/window"
)

// translator turns raw window events into callback invocations. It owns the
// scale factor: coordinates are converted with whatever factor is current
// when the event is dispatched, never retroactively.
type translator[U any] struct {
	app   App[U]
	scale float64
	logf  func(format string, args ...any)
}

func newTranslator[U any](app App[U], scale float64, logf func(string, ...any)) *translator[U] {
	return &translator[U]{app: app, scale: scale, logf: logf}
}

// dispatch produces zero or one callback invocation for ev and reports
// whether the loop should keep running. It never fails: events it cannot
// place are dropped, with a diagnostic for unrecognized kinds.
func (t *translator[U]) dispatch(ev window.Event) (running bool) {
	switch ev.Type {
	case window.EventCloseRequested, window.EventDestroyed:
		return false

	case window.EventKey:
		if ev.Key == window.KeyNone {
			// Unresolvable key code: dropped, not an error
			return true
		}
		if ev.Pressed {
			// Pressed keys reach PressKey twice per native event;
			// clients in the field depend on the repeat
			t.app.PressKey(ev.Key)
			t.app.PressKey(ev.Key)
		} else {
			t.app.ReleaseKey(ev.Key)
		}

	case window.EventFocus:
		t.app.SetFocus(ev.Focused)

	case window.EventResize:
		size := geom.PhysicalSize{Width: float64(ev.Width), Height: float64(ev.Height)}
		t.app.Resize(size.ToLogical(t.scale))

	case window.EventCursorMoved:
		pos := geom.PhysicalPosition{X: ev.X, Y: ev.Y}
		t.app.MoveCursor(pos.ToLogical(t.scale))

	case window.EventModifiers:
		t.app.ChangeModifiers(ev.Mods)

	case window.EventMouseButton:
		if ev.Pressed {
			t.app.PressMouse(ev.Button)
		} else {
			t.app.ReleaseMouse(ev.Button)
		}

	case window.EventScaleFactor:
		// Applies to subsequent conversions only; the client sees no
		// callback for the change itself
		t.scale = ev.Factor

	default:
		if t.logf != nil {
			t.logf("winshell: unhandled window event: %v (%s)", ev.Type, ev.Desc)
		}
	}
	return true
}
