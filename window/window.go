// Package window defines the contract between the shell core and the
// windowing binding that supplies the physical window: the semantic event
// vocabulary, the draw surface, and the Window interface itself. A tcell
// backend is included; other backends only need to satisfy Window.
package window

// EventType distinguishes window event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventCloseRequested
	EventDestroyed
	EventKey         // Key, Pressed
	EventFocus       // Focused
	EventResize      // Width, Height (physical)
	EventCursorMoved // X, Y (physical)
	EventModifiers   // Mods
	EventMouseButton // Button, Pressed
	EventScaleFactor // Factor
	EventOther       // Desc, diagnostic only
)

// Event represents one raw window event as reported by the binding.
// Coordinates and sizes are physical; conversion to logical units happens
// downstream against the scale factor current at dispatch time.
type Event struct {
	Type    EventType
	Key     Key
	Pressed bool
	Focused bool
	Width   int // EventResize
	Height  int // EventResize
	X       float64
	Y       float64
	Mods    Modifier
	Button  MouseButton
	Factor  float64 // EventScaleFactor
	Desc    string  // EventOther
}

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Attr represents cell text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrUnderline Attr = 1 << 2
	AttrReverse   Attr = 1 << 3
)

// Style is the full visual style of a cell
type Style struct {
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Surface is the mutable draw handle passed to the application's render
// callback. Cell coordinates are physical.
type Surface interface {
	// Clear fills the surface with the default style
	Clear()

	// Fill fills the surface with the given style
	Fill(style Style)

	// SetCell places a rune at (x, y). Out-of-bounds writes are ignored
	SetCell(x, y int, r rune, style Style)

	// Size returns current surface dimensions
	Size() (width, height int)

	// Show makes everything drawn since the last Show visible
	Show()
}

// Window is the windowing binding consumed by the shell core. It supplies
// the native event stream and the draw surface; the core supplies the loop.
type Window interface {
	// Init acquires the window and starts event delivery
	Init() error

	// Fini releases the window. Safe to call multiple times
	Fini()

	// Size returns current physical dimensions
	Size() (width, height int)

	// ScaleFactor returns the starting physical-to-logical ratio.
	// Later changes arrive as EventScaleFactor events
	ScaleFactor() float64

	// Events returns the native event stream. The channel is closed when
	// the window is gone; no events are delivered after that
	Events() <-chan Event

	// Surface returns the draw handle for this window
	Surface() Surface
}
