// Package schedule provides the timer and frame callbacks that widgets use for
// delayed work (show/hide delays, ripple cleanup, transitions).
//
// All callbacks run on a single goroutine, mirroring a browser event loop:
// widgets never need locks around their own state. The default implementation
// is [Loop]; tests substitute a fake scheduler with a controllable clock.
package schedule

import "time"

// FrameInterval is the delay used for RequestFrame on schedulers without a
// real display refresh signal.
const FrameInterval = 16 * time.Millisecond

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback already
	// ran or was stopped before.
	Stop() bool
}

// Scheduler runs callbacks after a delay on the UI goroutine.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time
	// AfterFunc schedules fn to run once after d.
	AfterFunc(d time.Duration, fn func()) Timer
	// RequestFrame schedules fn to run before the next frame.
	RequestFrame(fn func()) Timer
}

// Clock provides time. The default implementation uses system time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return realClock{} }

// Stop stops t if it is non-nil. It is a convenience for clearing optional
// timer fields.
func Stop(t Timer) {
	if t != nil {
		t.Stop()
	}
}
