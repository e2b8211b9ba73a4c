package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-mtrl/mtrl/pkg/errors"
)

// Loop is a Scheduler whose callbacks execute inside Run.
//
// Timers fire on runtime goroutines but only enqueue their callback; the
// callback itself runs on the goroutine that called Run, so widget state is
// touched by one goroutine at a time. Enqueueing never blocks: a Loop that
// is not running simply accumulates callbacks until it is.
//
// A panicking callback is reported through errors.ReportPanic and the loop
// keeps going.
type Loop struct {
	clock Clock
	wake  chan struct{}

	mu      sync.Mutex
	queue   []func()
	pending int
}

// NewLoop creates a Loop whose queue starts with the given capacity.
func NewLoop(capacity int) *Loop {
	if capacity <= 0 {
		capacity = 64
	}
	return &Loop{
		clock: realClock{},
		wake:  make(chan struct{}, 1),
		queue: make([]func(), 0, capacity),
	}
}

// Now returns the current system time.
func (l *Loop) Now() time.Time { return l.clock.Now() }

// AfterFunc schedules fn to run on the loop after d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	l.track(1)
	t.release = func() { l.track(-1) }
	t.timer = time.AfterFunc(d, func() {
		if !t.fired.CompareAndSwap(false, true) {
			return
		}
		l.enqueue(func() {
			defer l.track(-1)
			if !t.ran.CompareAndSwap(false, true) {
				return
			}
			fn()
		})
	})
	return t
}

// RequestFrame schedules fn for the next frame.
func (l *Loop) RequestFrame(fn func()) Timer {
	return l.AfterFunc(FrameInterval, fn)
}

// Dispatch enqueues fn to run on the loop goroutine. It is safe to call from
// any goroutine. It returns false if fn is nil.
func (l *Loop) Dispatch(fn func()) bool {
	if fn == nil {
		return false
	}
	l.track(1)
	l.enqueue(func() {
		defer l.track(-1)
		fn()
	})
	return true
}

// Pending returns the number of timers and dispatched callbacks that have
// not run or been stopped yet.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

// Run executes queued callbacks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if fn, ok := l.next(); ok {
			l.run(fn)
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// RunUntilIdle executes callbacks until no timers or dispatched callbacks
// remain, or ctx is cancelled.
func (l *Loop) RunUntilIdle(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if fn, ok := l.next(); ok {
			l.run(fn)
			continue
		}
		if l.Pending() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

func (l *Loop) run(fn func()) {
	defer errors.Recover("schedule.callback")
	fn()
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true
}

func (l *Loop) enqueue(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	l.signal()
}

func (l *Loop) track(delta int) {
	l.mu.Lock()
	l.pending += delta
	idle := l.pending == 0
	l.mu.Unlock()
	if idle {
		// Wakes RunUntilIdle when a timer is stopped from another goroutine.
		l.signal()
	}
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

type loopTimer struct {
	timer   *time.Timer
	fired   atomic.Bool // timer expired or was stopped before expiring
	ran     atomic.Bool // callback ran or was cancelled after being queued
	release func()
}

func (t *loopTimer) Stop() bool {
	if t.timer.Stop() && t.fired.CompareAndSwap(false, true) {
		t.ran.Store(true)
		t.release()
		return true
	}
	// Already queued: claim it so the queued callback skips.
	return t.ran.CompareAndSwap(false, true)
}
