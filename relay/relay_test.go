package relay

import (
	"sync"
	"testing"
	"time"
)

// mustNext pops a value, failing the test when the queue is empty
func mustNext[T any](t *testing.T, r *Relay[T]) T {
	t.Helper()
	v, ok := r.Next()
	if !ok {
		t.Fatal("Expected a pending value, queue was empty")
	}
	return v
}

// TestRelayOrdering verifies FIFO delivery from a single producer
func TestRelayOrdering(t *testing.T) {
	r := New[int](16)

	for i := 0; i < 10; i++ {
		if sig := r.Send(i); sig != On {
			t.Fatalf("Send %d: expected On, got %v", i, sig)
		}
	}

	for i := 0; i < 10; i++ {
		if got := mustNext(t, r); got != i {
			t.Errorf("Expected %d, got %d", i, got)
		}
	}
	if _, ok := r.Next(); ok {
		t.Error("Expected queue to be drained")
	}
}

// TestRelaySendNeverBlocksWhileOpen verifies producers never wait for the
// consumer: sends far past the initial capacity must all complete with On
// before anything is drained
func TestRelaySendNeverBlocksWhileOpen(t *testing.T) {
	r := New[int](1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if sig := r.Send(i); sig != On {
				t.Errorf("Send %d: expected On, got %v", i, sig)
				return
			}
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Send blocked with the relay open and the consumer idle")
	}

	for i := 0; i < 200; i++ {
		if got := mustNext(t, r); got != i {
			t.Fatalf("Expected %d, got %d", i, got)
		}
	}
}

// TestRelayOffIsPermanent verifies that once a send reports Off, every
// later send also reports Off
func TestRelayOffIsPermanent(t *testing.T) {
	r := New[string](8)

	if sig := r.Send("before"); sig != On {
		t.Fatalf("Expected On before close, got %v", sig)
	}

	r.Close()

	for i := 0; i < 5; i++ {
		if sig := r.Send("after"); sig != Off {
			t.Errorf("Send %d after close: expected Off, got %v", i, sig)
		}
	}

	// The value enqueued before close is still readable
	if got := mustNext(t, r); got != "before" {
		t.Errorf("Expected buffered value, got %q", got)
	}
}

// TestRelayCloseIdempotent verifies Close can be called repeatedly
func TestRelayCloseIdempotent(t *testing.T) {
	r := New[int](1)
	r.Close()
	r.Close()
	if sig := r.Send(1); sig != Off {
		t.Errorf("Expected Off, got %v", sig)
	}
}

// TestRelayReadyTracksPendingValues verifies the consumer token: signaled
// after a send, re-signaled while values remain, quiet once drained
func TestRelayReadyTracksPendingValues(t *testing.T) {
	r := New[int](4)

	select {
	case <-r.Ready():
		t.Fatal("Ready signaled on an empty relay")
	default:
	}

	r.Send(1)
	r.Send(2)

	select {
	case <-r.Ready():
	default:
		t.Fatal("Expected Ready token after send")
	}

	// One value left, so the token comes back
	mustNext(t, r)
	select {
	case <-r.Ready():
	default:
		t.Fatal("Expected Ready token while a value remains")
	}

	mustNext(t, r)
	select {
	case <-r.Ready():
		t.Error("Ready signaled after draining")
	default:
	}
}

// TestRelayConcurrentProducers verifies that sends from multiple goroutines
// all arrive exactly once
func TestRelayConcurrentProducers(t *testing.T) {
	numGoroutines := 10
	perGoroutine := 10
	total := numGoroutines * perGoroutine

	r := New[int](total)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				if sig := r.Send(id*100 + j); sig != On {
					t.Errorf("Producer %d: expected On, got %v", id, sig)
				}
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for i := 0; i < total; i++ {
		v := mustNext(t, r)
		if seen[v] {
			t.Errorf("Duplicate value %d", v)
		}
		seen[v] = true
	}
	if len(seen) != total {
		t.Errorf("Expected %d distinct values, got %d", total, len(seen))
	}
}
