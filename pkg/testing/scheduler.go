package testing

import (
	"cmp"
	"slices"
	"time"

	"github.com/go-mtrl/mtrl/pkg/schedule"
)

// maxFlushRounds bounds Flush so that callbacks rescheduling themselves
// forever fail loudly instead of hanging the test.
const maxFlushRounds = 10000

// FakeScheduler is a schedule.Scheduler driven by a FakeClock. Callbacks run
// synchronously inside Advance and Flush, in deadline order; callbacks with
// the same deadline run in scheduling order.
type FakeScheduler struct {
	clock  *FakeClock
	timers []*fakeTimer
	seq    uint64
}

var _ schedule.Scheduler = (*FakeScheduler)(nil)

type fakeTimer struct {
	s        *FakeScheduler
	deadline time.Time
	seq      uint64
	fn       func()
	done     bool
}

func (t *fakeTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.s.drop(t)
	return true
}

// NewFakeScheduler returns a scheduler reading time from clock. A nil clock
// gets a fresh FakeClock.
func NewFakeScheduler(clock *FakeClock) *FakeScheduler {
	if clock == nil {
		clock = NewFakeClock()
	}
	return &FakeScheduler{clock: clock}
}

// Clock returns the scheduler's clock.
func (s *FakeScheduler) Clock() *FakeClock { return s.clock }

// Now returns the fake time.
func (s *FakeScheduler) Now() time.Time { return s.clock.Now() }

// AfterFunc schedules fn to run once the clock has advanced by d.
func (s *FakeScheduler) AfterFunc(d time.Duration, fn func()) schedule.Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &fakeTimer{s: s, deadline: s.clock.Now().Add(d), seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// RequestFrame schedules fn one frame interval from now.
func (s *FakeScheduler) RequestFrame(fn func()) schedule.Timer {
	return s.AfterFunc(schedule.FrameInterval, fn)
}

// Pending returns the number of callbacks that have not run yet.
func (s *FakeScheduler) Pending() int { return len(s.timers) }

// Advance moves time forward by d, running every callback whose deadline
// falls inside the window. The clock is set to each deadline before its
// callback runs, so callbacks observe the time they were due.
func (s *FakeScheduler) Advance(d time.Duration) {
	target := s.clock.Now().Add(d)
	for {
		next := s.next()
		if next == nil || next.deadline.After(target) {
			break
		}
		s.fire(next)
	}
	s.clock.Set(target)
}

// Flush runs callbacks until none are pending, advancing the clock as
// needed. It panics if callbacks keep rescheduling themselves.
func (s *FakeScheduler) Flush() {
	for range maxFlushRounds {
		next := s.next()
		if next == nil {
			return
		}
		s.fire(next)
	}
	panic("testing: FakeScheduler.Flush did not settle")
}

func (s *FakeScheduler) next() *fakeTimer {
	if len(s.timers) == 0 {
		return nil
	}
	return slices.MinFunc(s.timers, func(a, b *fakeTimer) int {
		if c := a.deadline.Compare(b.deadline); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
}

func (s *FakeScheduler) fire(t *fakeTimer) {
	if t.deadline.After(s.clock.Now()) {
		s.clock.Set(t.deadline)
	}
	t.done = true
	s.drop(t)
	t.fn()
}

func (s *FakeScheduler) drop(t *fakeTimer) {
	s.timers = slices.DeleteFunc(s.timers, func(o *fakeTimer) bool { return o == t })
}
