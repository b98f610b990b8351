package shell

import "time"

const (
	// DefaultFrameInterval is the render cadence, one frame per ~16.67ms
	DefaultFrameInterval = 16_666_667 * time.Nanosecond

	// DefaultQueueSize is the initial capacity of the shared event queue
	DefaultQueueSize = 256
)

// Config tunes the loop. The zero value is usable: 60Hz rendering, a 256
// entry queue, and no diagnostics.
type Config struct {
	// FrameInterval is the fixed wait between renders. Each iteration
	// waits the full interval from the end of its render; there is no
	// catch-up when a frame runs long
	FrameInterval time.Duration

	// QueueSize is the initial capacity of the queue shared by native
	// events and relayed updates. The queue grows past it under load
	// rather than stalling producers
	QueueSize int

	// Logf receives diagnostics: unrecognized native events and state
	// goroutine crashes. Nil disables them
	Logf func(format string, args ...any)
}

func (c Config) withDefaults() Config {
	if c.FrameInterval <= 0 {
		c.FrameInterval = DefaultFrameInterval
	}
	if c.QueueSize <= 0 {
		c.QueueSize = DefaultQueueSize
	}
	return c
}

func (c Config) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}
