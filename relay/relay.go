// Package relay provides the bridge between background producers and the
// single consumer that owns an event loop. Producers hand over owned values;
// the send result doubles as the lifecycle signal telling them whether the
// consumer is still alive.
package relay

import "sync"

// Signal reports the consumer lifecycle to a producer.
type Signal uint8

const (
	// On means the value was enqueued and the producer should keep going
	On Signal = iota

	// Off means the consumer is gone. Off is permanent: every send after
	// the first Off also reports Off
	Off
)

func (s Signal) String() string {
	if s == On {
		return "On"
	}
	return "Off"
}

// Relay is a FIFO queue safe for any number of producers and exactly one
// consumer. Values sent before Close are delivered in send order. The
// backing buffer grows as needed, so Send returns without waiting for the
// consumer to drain.
type Relay[T any] struct {
	mu     sync.Mutex
	items  []T
	head   int
	closed bool
	ready  chan struct{}
}

// New creates a relay. capacity sizes the initial buffer; the buffer grows
// past it rather than making producers wait.
func New[T any](capacity int) *Relay[T] {
	return &Relay[T]{
		items: make([]T, 0, capacity),
		ready: make(chan struct{}, 1),
	}
}

// Send enqueues v and reports On, or reports Off without enqueuing if the
// relay has been closed. It never blocks waiting for the consumer.
func (r *Relay[T]) Send(v T) Signal {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return Off
	}
	r.items = append(r.items, v)
	r.mu.Unlock()
	r.signal()
	return On
}

// Ready returns a channel carrying a token whenever values are pending.
// Owned by the consumer only; after receiving a token, pop with Next.
func (r *Relay[T]) Ready() <-chan struct{} {
	return r.ready
}

// Next pops the oldest pending value, reporting false when none are queued.
// Values enqueued before Close stay readable after it.
func (r *Relay[T]) Next() (T, bool) {
	r.mu.Lock()
	if r.head == len(r.items) {
		r.mu.Unlock()
		var zero T
		return zero, false
	}
	v := r.items[r.head]
	var zero T
	r.items[r.head] = zero
	r.head++
	remaining := r.head != len(r.items)
	if !remaining {
		// Reuse the array once drained instead of growing forever
		r.items = r.items[:0]
		r.head = 0
	}
	r.mu.Unlock()
	if remaining {
		r.signal()
	}
	return v, true
}

// Close marks the relay torn down. Idempotent. Values already enqueued stay
// readable; subsequent sends report Off.
func (r *Relay[T]) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}

func (r *Relay[T]) signal() {
	select {
	case r.ready <- struct{}{}:
	default:
	}
}
