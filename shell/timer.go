package shell

import "time"

// newStoppedTimer returns a timer that is not running and whose channel is
// drained, ready for resetTimer.
func newStoppedTimer() *time.Timer {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	return timer
}

// resetTimer arms the timer for d from now, draining any stale expiry left
// from an iteration that consumed an event instead of the tick.
func resetTimer(timer *time.Timer, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(d)
}
