package window

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// convert is pure translation over poll-goroutine state, so it can be
// driven directly with constructed tcell events.

func TestConvertRuneKey(t *testing.T) {
	w := NewTcell(nil)

	out := w.convert(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if len(out) != 1 {
		t.Fatalf("Expected 1 event, got %d: %v", len(out), out)
	}
	ev := out[0]
	if ev.Type != EventKey || ev.Key != KeyQ || !ev.Pressed {
		t.Errorf("Expected pressed KeyQ, got %+v", ev)
	}
}

func TestConvertSpecialKeys(t *testing.T) {
	cases := []struct {
		in   tcell.Key
		want Key
	}{
		{tcell.KeyEscape, KeyEscape},
		{tcell.KeyEnter, KeyEnter},
		{tcell.KeyTab, KeyTab},
		{tcell.KeyBackspace2, KeyBackspace},
		{tcell.KeyUp, KeyUp},
		{tcell.KeyLeft, KeyLeft},
		{tcell.KeyHome, KeyHome},
		{tcell.KeyPgDn, KeyPageDown},
		{tcell.KeyF5, KeyF5},
		{tcell.KeyF12, KeyF12},
	}
	for _, c := range cases {
		w := NewTcell(nil)
		out := w.convert(tcell.NewEventKey(c.in, 0, tcell.ModNone))
		if len(out) != 1 || out[0].Key != c.want {
			t.Errorf("Key %v: expected %v, got %v", c.in, c.want, out)
		}
	}
}

// TestConvertUnmappedRune verifies runes without a key assignment still
// produce a key event, marked KeyNone for downstream dropping
func TestConvertUnmappedRune(t *testing.T) {
	w := NewTcell(nil)

	out := w.convert(tcell.NewEventKey(tcell.KeyRune, '©', tcell.ModNone))
	if len(out) != 1 || out[0].Type != EventKey || out[0].Key != KeyNone {
		t.Errorf("Expected KeyNone event, got %v", out)
	}
}

// TestConvertModifierSynthesis verifies a modifiers event is emitted before
// the key event when the held set changes, and only then
func TestConvertModifierSynthesis(t *testing.T) {
	w := NewTcell(nil)

	out := w.convert(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModCtrl|tcell.ModShift))
	if len(out) != 2 {
		t.Fatalf("Expected modifiers + key, got %v", out)
	}
	if out[0].Type != EventModifiers || out[0].Mods != ModCtrl|ModShift {
		t.Errorf("Expected modifiers event first, got %+v", out[0])
	}
	if out[1].Type != EventKey || out[1].Key != KeyA {
		t.Errorf("Expected key event second, got %+v", out[1])
	}

	// Same modifiers again: no synthesis
	out = w.convert(tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModCtrl|tcell.ModShift))
	if len(out) != 1 || out[0].Type != EventKey {
		t.Errorf("Expected only the key event, got %v", out)
	}

	// Released: synthesized change back to none
	out = w.convert(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	if len(out) != 2 || out[0].Type != EventModifiers || out[0].Mods != ModNone {
		t.Errorf("Expected modifiers cleared, got %v", out)
	}
}

// TestConvertMouseEdges verifies cursor motion and button press/release
// derivation from tcell's combined mouse reports
func TestConvertMouseEdges(t *testing.T) {
	w := NewTcell(nil)

	out := w.convert(tcell.NewEventMouse(5, 7, tcell.ButtonPrimary, tcell.ModNone))
	if len(out) != 2 {
		t.Fatalf("Expected motion + press, got %v", out)
	}
	if out[0].Type != EventCursorMoved || out[0].X != 5 || out[0].Y != 7 {
		t.Errorf("Expected cursor move to (5,7), got %+v", out[0])
	}
	if out[1].Type != EventMouseButton || out[1].Button != ButtonLeft || !out[1].Pressed {
		t.Errorf("Expected left press, got %+v", out[1])
	}

	// Held at the same position: nothing new
	out = w.convert(tcell.NewEventMouse(5, 7, tcell.ButtonPrimary, tcell.ModNone))
	if len(out) != 0 {
		t.Errorf("Expected no events while held still, got %v", out)
	}

	// Released
	out = w.convert(tcell.NewEventMouse(5, 7, tcell.ButtonNone, tcell.ModNone))
	if len(out) != 1 || out[0].Type != EventMouseButton || out[0].Pressed {
		t.Errorf("Expected left release, got %v", out)
	}
}

// TestConvertWheelIsDiagnosticOnly verifies scroll wheel reports never
// become button events
func TestConvertWheelIsDiagnosticOnly(t *testing.T) {
	w := NewTcell(nil)
	// Settle position first
	w.convert(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))

	out := w.convert(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	if len(out) != 1 || out[0].Type != EventOther {
		t.Errorf("Expected diagnostic-only wheel event, got %v", out)
	}
}

func TestConvertResize(t *testing.T) {
	w := NewTcell(nil)

	out := w.convert(tcell.NewEventResize(120, 40))
	if len(out) != 1 || out[0].Type != EventResize || out[0].Width != 120 || out[0].Height != 40 {
		t.Errorf("Expected 120x40 resize, got %v", out)
	}
}

func TestConvertFocus(t *testing.T) {
	w := NewTcell(nil)

	out := w.convert(tcell.NewEventFocus(true))
	if len(out) != 1 || out[0].Type != EventFocus || !out[0].Focused {
		t.Errorf("Expected focus gained, got %v", out)
	}
}

// TestConvertInterruptCarriesInjectedEvent verifies PostEvent payloads ride
// through tcell's queue intact
func TestConvertInterruptCarriesInjectedEvent(t *testing.T) {
	w := NewTcell(nil)

	out := w.convert(tcell.NewEventInterrupt(Event{Type: EventCloseRequested}))
	if len(out) != 1 || out[0].Type != EventCloseRequested {
		t.Errorf("Expected injected close request, got %v", out)
	}
}

func TestKeyFromRune(t *testing.T) {
	cases := []struct {
		r    rune
		want Key
	}{
		{'a', KeyA},
		{'Z', KeyZ},
		{'0', Key0},
		{'9', Key9},
		{' ', KeySpace},
		{'?', KeyNone},
		{'\t', KeyNone},
	}
	for _, c := range cases {
		if got := KeyFromRune(c.r); got != c.want {
			t.Errorf("KeyFromRune(%q): expected %v, got %v", c.r, c.want, got)
		}
	}
}
