package window

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// eventBuffer is the capacity of the native event channel. Sized so a burst
// of terminal input never stalls the poll goroutine.
const eventBuffer = 256

// TcellWindow adapts a tcell.Screen to the Window contract. Terminals report
// key presses only (no releases) and have no device scale factor, so this
// binding never emits release or scale-factor events; ScaleFactor is a
// constant 1.0.
type TcellWindow struct {
	screen tcell.Screen
	events chan Event
	stop   chan struct{}
	inited bool

	// Poll-goroutine state for deriving edge events from tcell's
	// combined mouse/modifier reporting. Touched only by that goroutine.
	lastButtons tcell.ButtonMask
	lastMods    Modifier
	lastX       int
	lastY       int
}

// NewTcell wraps an existing screen. The caller creates the screen
// (tcell.NewScreen or a simulation screen) but must not Init it; that
// happens in Init.
func NewTcell(screen tcell.Screen) *TcellWindow {
	return &TcellWindow{
		screen: screen,
		events: make(chan Event, eventBuffer),
		stop:   make(chan struct{}),
		lastX:  -1,
		lastY:  -1,
	}
}

// Init enters the alternate screen and starts event delivery.
func (w *TcellWindow) Init() error {
	if err := w.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	w.screen.EnableMouse()
	w.screen.EnableFocus()
	w.inited = true

	go w.poll()
	return nil
}

// Fini restores the terminal. Safe to call multiple times.
func (w *TcellWindow) Fini() {
	if !w.inited {
		return
	}
	w.inited = false
	close(w.stop)
	// Unblocks PollEvent; the poll goroutine then closes the event channel
	w.screen.Fini()
}

// Size returns the physical screen dimensions.
func (w *TcellWindow) Size() (width, height int) {
	return w.screen.Size()
}

// ScaleFactor returns 1.0: terminal cells are both the physical and the
// logical unit.
func (w *TcellWindow) ScaleFactor() float64 {
	return 1.0
}

// Events returns the native event stream.
func (w *TcellWindow) Events() <-chan Event {
	return w.events
}

// Surface returns the draw handle backed by the screen.
func (w *TcellWindow) Surface() Surface {
	return tcellSurface{screen: w.screen}
}

// PostEvent injects an event into the native stream from any goroutine.
// It rides tcell's own event queue so the injected event keeps its place
// relative to terminal input.
func (w *TcellWindow) PostEvent(ev Event) error {
	return w.screen.PostEvent(tcell.NewEventInterrupt(ev))
}

// RequestClose asks the loop to terminate, standing in for the close button
// terminals do not have.
func (w *TcellWindow) RequestClose() {
	if err := w.PostEvent(Event{Type: EventCloseRequested}); err != nil {
		// Queue full: deliver directly so the request cannot be lost
		select {
		case w.events <- Event{Type: EventCloseRequested}:
		case <-w.stop:
		}
	}
}

// poll reads raw tcell events and forwards the converted stream until the
// screen is torn down.
func (w *TcellWindow) poll() {
	defer close(w.events)
	for {
		raw := w.screen.PollEvent()
		if raw == nil {
			// Screen finalized
			return
		}
		for _, ev := range w.convert(raw) {
			select {
			case w.events <- ev:
			case <-w.stop:
				return
			}
		}
	}
}

// convert translates one raw tcell event into zero or more window events,
// synthesizing modifier-change events and mouse button edges that tcell
// folds into its combined key/mouse reports.
func (w *TcellWindow) convert(raw tcell.Event) []Event {
	switch ev := raw.(type) {
	case *tcell.EventKey:
		out := w.modifierChange(convertMods(ev.Modifiers()))
		key := convertKey(ev)
		return append(out, Event{Type: EventKey, Key: key, Pressed: true, Mods: w.lastMods})

	case *tcell.EventMouse:
		return w.convertMouse(ev)

	case *tcell.EventResize:
		width, height := ev.Size()
		return []Event{{Type: EventResize, Width: width, Height: height}}

	case *tcell.EventFocus:
		return []Event{{Type: EventFocus, Focused: ev.Focused}}

	case *tcell.EventInterrupt:
		if injected, ok := ev.Data().(Event); ok {
			return []Event{injected}
		}
		return []Event{{Type: EventOther, Desc: "interrupt"}}

	case *tcell.EventError:
		return []Event{{Type: EventDestroyed}}

	default:
		return []Event{{Type: EventOther, Desc: fmt.Sprintf("%T", raw)}}
	}
}

func (w *TcellWindow) convertMouse(ev *tcell.EventMouse) []Event {
	out := w.modifierChange(convertMods(ev.Modifiers()))

	x, y := ev.Position()
	if x != w.lastX || y != w.lastY {
		w.lastX, w.lastY = x, y
		out = append(out, Event{Type: EventCursorMoved, X: float64(x), Y: float64(y)})
	}

	buttons := ev.Buttons() &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	masks := []struct {
		mask   tcell.ButtonMask
		button MouseButton
	}{
		{tcell.ButtonPrimary, ButtonLeft},
		{tcell.ButtonMiddle, ButtonMiddle},
		{tcell.ButtonSecondary, ButtonRight},
	}
	for _, m := range masks {
		was := w.lastButtons&m.mask != 0
		is := buttons&m.mask != 0
		if is && !was {
			out = append(out, Event{Type: EventMouseButton, Button: m.button, Pressed: true})
		}
		if was && !is {
			out = append(out, Event{Type: EventMouseButton, Button: m.button, Pressed: false})
		}
	}
	w.lastButtons = buttons

	if wheel := ev.Buttons() & (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight); wheel != 0 {
		out = append(out, Event{Type: EventOther, Desc: "wheel"})
	}
	return out
}

// modifierChange emits a modifiers event when the held set differs from the
// last reported one.
func (w *TcellWindow) modifierChange(mods Modifier) []Event {
	if mods == w.lastMods {
		return nil
	}
	w.lastMods = mods
	return []Event{{Type: EventModifiers, Mods: mods}}
}

func convertMods(mask tcell.ModMask) Modifier {
	var mods Modifier
	if mask&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if mask&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if mask&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if mask&tcell.ModMeta != 0 {
		mods |= ModMeta
	}
	return mods
}

func convertKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyFromRune(ev.Rune())
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyInsert:
		return KeyInsert
	case tcell.KeyF1:
		return KeyF1
	case tcell.KeyF2:
		return KeyF2
	case tcell.KeyF3:
		return KeyF3
	case tcell.KeyF4:
		return KeyF4
	case tcell.KeyF5:
		return KeyF5
	case tcell.KeyF6:
		return KeyF6
	case tcell.KeyF7:
		return KeyF7
	case tcell.KeyF8:
		return KeyF8
	case tcell.KeyF9:
		return KeyF9
	case tcell.KeyF10:
		return KeyF10
	case tcell.KeyF11:
		return KeyF11
	case tcell.KeyF12:
		return KeyF12
	}
	return KeyNone
}

// tcellSurface implements Surface over a tcell.Screen.
type tcellSurface struct {
	screen tcell.Screen
}

func (s tcellSurface) Clear() {
	s.screen.Clear()
}

func (s tcellSurface) Fill(style Style) {
	s.screen.Fill(' ', toTcellStyle(style))
}

func (s tcellSurface) SetCell(x, y int, r rune, style Style) {
	s.screen.SetContent(x, y, r, nil, toTcellStyle(style))
}

func (s tcellSurface) Size() (width, height int) {
	return s.screen.Size()
}

func (s tcellSurface) Show() {
	s.screen.Show()
}

func toTcellStyle(style Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(style.Fg.R), int32(style.Fg.G), int32(style.Fg.B))).
		Background(tcell.NewRGBColor(int32(style.Bg.R), int32(style.Bg.G), int32(style.Bg.B)))
	if style.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if style.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if style.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if style.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
