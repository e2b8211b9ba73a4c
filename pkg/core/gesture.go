package core

import (
	"math"
	"time"

	"github.com/go-mtrl/mtrl/pkg/dom"
)

// Touch interaction thresholds.
const (
	// SwipeThreshold is the horizontal distance in pixels after which a touch
	// sequence is reported as a swipe.
	SwipeThreshold = 50.0
	// TapThreshold is the longest touch that still counts as a tap.
	TapThreshold = 250 * time.Millisecond
	// TouchTargetSize is the minimum touch target edge in pixels.
	TouchTargetSize = 44.0
	// FeedbackDuration is how long touch feedback stays visible.
	FeedbackDuration = 200 * time.Millisecond
)

// Synthetic gesture events emitted by interactive elements.
const (
	EventTap   = "tap"
	EventSwipe = "swipe"
)

// SwipeDirection is the horizontal direction of a swipe.
type SwipeDirection string

const (
	SwipeLeft  SwipeDirection = "left"
	SwipeRight SwipeDirection = "right"
)

// Point is a position in client coordinates.
type Point struct {
	X float64
	Y float64
}

// SwipeDetail is the payload of EventSwipe.
type SwipeDetail struct {
	Direction SwipeDirection
	DeltaX    float64
	DeltaY    float64
}

// TapDetail is the payload of EventTap.
type TapDetail struct {
	Position Point
	Duration time.Duration
}

// TouchState is the per-component record of the current touch sequence.
type TouchState struct {
	StartTime     time.Time
	StartPosition Point
	IsTouching    bool
	ActiveTarget  *dom.Element

	swiped bool
}

func (s *TouchState) reset() {
	*s = TouchState{}
}

// touchActiveClass marks an element while a finger is down.
func (c *Component) touchActiveClass() string {
	return c.GetClass("touch-active")
}

// attachTouch registers the touchstart/touchmove/touchend handlers that
// synthesize tap and swipe events. The returned function detaches them.
func (c *Component) attachTouch() func() {
	c.Touch = &TouchState{}
	el := c.Element
	state := c.Touch

	removeStart := el.AddEventListener("touchstart", func(ev *dom.Event) {
		t, ok := ev.FirstTouch()
		if !ok {
			return
		}
		state.reset()
		state.IsTouching = true
		state.StartTime = ev.Time
		state.StartPosition = Point{X: t.ClientX, Y: t.ClientY}
		state.ActiveTarget = ev.Target
		el.AddClass(c.touchActiveClass())
	})

	removeMove := el.AddEventListener("touchmove", func(ev *dom.Event) {
		if !state.IsTouching || state.swiped {
			return
		}
		t, ok := ev.FirstTouch()
		if !ok {
			return
		}
		dx := t.ClientX - state.StartPosition.X
		dy := t.ClientY - state.StartPosition.Y
		if math.Abs(dx) <= SwipeThreshold {
			return
		}
		state.swiped = true
		dir := SwipeLeft
		if dx > 0 {
			dir = SwipeRight
		}
		c.Emit(EventSwipe, SwipeDetail{Direction: dir, DeltaX: dx, DeltaY: dy})
	})

	removeEnd := el.AddEventListener("touchend", func(ev *dom.Event) {
		el.RemoveClass(c.touchActiveClass())
		if !state.IsTouching {
			return
		}
		elapsed := ev.Time.Sub(state.StartTime)
		if elapsed < TapThreshold && !state.swiped {
			pos := state.StartPosition
			if t, ok := ev.FirstTouch(); ok {
				pos = Point{X: t.ClientX, Y: t.ClientY}
			}
			c.Emit(EventTap, TapDetail{Position: pos, Duration: elapsed})
		}
		state.reset()
	})

	return func() {
		removeStart()
		removeMove()
		removeEnd()
		el.RemoveClass(c.touchActiveClass())
	}
}
