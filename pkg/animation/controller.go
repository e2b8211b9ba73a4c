// Package animation drives values over time on a [schedule.Scheduler], one
// frame at a time, and provides the Material easing curves.
package animation

import (
	"fmt"
	"slices"
	"time"

	"github.com/go-mtrl/mtrl/pkg/schedule"
)

// Status represents the current state of an animation.
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// The status is Forward or Reverse while moving, and keeps that value when
// an animation stops between the bounds.
type Status int

const (
	// Dismissed means the value rests at 0.
	Dismissed Status = iota
	// Forward means the value is moving up.
	Forward
	// Reverse means the value is moving down.
	Reverse
	// Completed means the value rests at 1.
	Completed
)

func (s Status) String() string {
	switch s {
	case Dismissed:
		return "dismissed"
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

type listener[T any] struct {
	id int
	fn func(T)
}

// Controller moves a value in [0, 1] towards a target over Duration, shaped
// by Curve. Frames are requested from the scheduler, so with a fake
// scheduler the animation advances only when the test clock does.
//
// Call Dispose when done to cancel the pending frame.
type Controller struct {
	Duration time.Duration
	Curve    Curve

	sched     schedule.Scheduler
	value     float64
	start     float64
	target    float64
	startTime time.Time
	status    Status
	frame     schedule.Timer

	nextID          int
	listeners       []listener[float64]
	statusListeners []listener[Status]
}

// NewController creates a controller at value 0.
func NewController(sched schedule.Scheduler, duration time.Duration) *Controller {
	return &Controller{Duration: duration, Curve: Linear, sched: sched}
}

// Value returns the current value.
func (c *Controller) Value() float64 { return c.value }

// Status returns the current status.
func (c *Controller) Status() Status { return c.status }

// IsAnimating reports whether a frame is pending.
func (c *Controller) IsAnimating() bool { return c.frame != nil }

// Forward animates to 1.
func (c *Controller) Forward() { c.animateTo(1, Forward) }

// Reverse animates to 0.
func (c *Controller) Reverse() { c.animateTo(0, Reverse) }

// AnimateTo animates to target, clamped to [0, 1].
func (c *Controller) AnimateTo(target float64) {
	target = clampUnit(target)
	if target >= c.value {
		c.animateTo(target, Forward)
	} else {
		c.animateTo(target, Reverse)
	}
}

// SetValue stops any running animation and jumps to v.
func (c *Controller) SetValue(v float64) {
	c.Stop()
	c.value = clampUnit(v)
	c.notify()
	c.settle()
}

func (c *Controller) animateTo(target float64, direction Status) {
	c.Stop()
	if c.Duration <= 0 || target == c.value {
		c.value = target
		c.notify()
		c.settle()
		return
	}
	c.start, c.target = c.value, target
	c.startTime = c.sched.Now()
	c.setStatus(direction)
	c.frame = c.sched.RequestFrame(c.tick)
}

func (c *Controller) tick() {
	c.frame = nil
	progress := min(float64(c.sched.Now().Sub(c.startTime))/float64(c.Duration), 1)

	eased := progress
	if c.Curve != nil {
		eased = c.Curve.Transform(progress)
	}
	c.value = c.start + (c.target-c.start)*eased
	if progress >= 1 {
		c.value = c.target
	}
	c.notify()

	if progress >= 1 {
		c.settle()
		return
	}
	c.frame = c.sched.RequestFrame(c.tick)
}

// settle updates the status once the value rests at a bound.
func (c *Controller) settle() {
	switch {
	case c.value <= 0:
		c.setStatus(Dismissed)
	case c.value >= 1:
		c.setStatus(Completed)
	}
}

// Stop halts the animation at the current value.
func (c *Controller) Stop() {
	if c.frame != nil {
		c.frame.Stop()
		c.frame = nil
	}
}

// AddListener registers fn to run with the value on every change. The
// returned function unsubscribes.
func (c *Controller) AddListener(fn func(value float64)) func() {
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listener[float64]{id: id, fn: fn})
	return func() {
		c.listeners = slices.DeleteFunc(c.listeners, func(l listener[float64]) bool { return l.id == id })
	}
}

// AddStatusListener registers fn to run on every status change.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	c.nextID++
	id := c.nextID
	c.statusListeners = append(c.statusListeners, listener[Status]{id: id, fn: fn})
	return func() {
		c.statusListeners = slices.DeleteFunc(c.statusListeners, func(l listener[Status]) bool { return l.id == id })
	}
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, l := range slices.Clone(c.statusListeners) {
		l.fn(status)
	}
}

func (c *Controller) notify() {
	for _, l := range slices.Clone(c.listeners) {
		l.fn(c.value)
	}
}

// Dispose stops the animation and drops all listeners.
func (c *Controller) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
