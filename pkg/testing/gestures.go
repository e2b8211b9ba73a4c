package testing

import (
	"fmt"
	"time"

	"github.com/go-mtrl/mtrl/pkg/dom"
)

// DefaultTapDuration is the finger-down time used by Tap, well under the
// tap threshold.
const DefaultTapDuration = 50 * time.Millisecond

// DefaultSwipeSteps is the number of touchmove events Swipe dispatches.
const DefaultSwipeSteps = 4

// nextTouchID is incremented for each touch sequence to avoid collisions.
var nextTouchID int

func allocTouchID() int {
	nextTouchID++
	return nextTouchID
}

// center returns the middle of el's layout box.
func center(el *dom.Element) (float64, float64) {
	r := el.BoundingClientRect()
	return r.X + r.Width/2, r.Y + r.Height/2
}

func touchEvent(typ string, id int, x, y float64) *dom.Event {
	ev := dom.NewEvent(typ)
	pt := []dom.Touch{{Identifier: id, ClientX: x, ClientY: y}}
	if typ == "touchend" {
		ev.ChangedTouches = pt
	} else {
		ev.Touches = pt
		ev.ChangedTouches = pt
	}
	return ev
}

// TouchStart dispatches a touchstart at (x, y) on el.
func (t *Tester) TouchStart(el *dom.Element, id int, x, y float64) bool {
	return el.DispatchEvent(touchEvent("touchstart", id, x, y))
}

// TouchMove dispatches a touchmove at (x, y) on el.
func (t *Tester) TouchMove(el *dom.Element, id int, x, y float64) bool {
	return el.DispatchEvent(touchEvent("touchmove", id, x, y))
}

// TouchEnd dispatches a touchend at (x, y) on el.
func (t *Tester) TouchEnd(el *dom.Element, id int, x, y float64) bool {
	return el.DispatchEvent(touchEvent("touchend", id, x, y))
}

// Tap simulates a short touch at the center of el.
func (t *Tester) Tap(el *dom.Element) {
	t.TapFor(el, DefaultTapDuration)
}

// TapFor holds a touch on el for d before lifting it. Pending callbacks due
// within d run while the finger is down.
func (t *Tester) TapFor(el *dom.Element, d time.Duration) {
	id := allocTouchID()
	x, y := center(el)
	t.TouchStart(el, id, x, y)
	t.Advance(d)
	t.TouchEnd(el, id, x, y)
}

// Swipe simulates a horizontal drag of dx pixels across el, spread over
// DefaultSwipeSteps moves and DefaultTapDuration.
func (t *Tester) Swipe(el *dom.Element, dx float64) {
	id := allocTouchID()
	x, y := center(el)
	t.TouchStart(el, id, x, y)
	step := DefaultTapDuration / DefaultSwipeSteps
	for i := 1; i <= DefaultSwipeSteps; i++ {
		t.Advance(step)
		t.TouchMove(el, id, x+dx*float64(i)/DefaultSwipeSteps, y)
	}
	t.TouchEnd(el, id, x+dx, y)
}

// Press dispatches mousedown then mouseup at the center of el.
func (t *Tester) Press(el *dom.Element) {
	x, y := center(el)
	down := dom.NewEvent("mousedown")
	down.ClientX, down.ClientY = x, y
	el.DispatchEvent(down)
	up := dom.NewEvent("mouseup")
	up.ClientX, up.ClientY = x, y
	el.DispatchEvent(up)
}

// Click dispatches a full mouse click on el.
func (t *Tester) Click(el *dom.Element) bool {
	t.Press(el)
	return el.Click()
}

// Hover dispatches mouseenter on el.
func (t *Tester) Hover(el *dom.Element) {
	el.DispatchEvent(dom.NewEvent("mouseenter"))
}

// Leave dispatches mouseleave on el.
func (t *Tester) Leave(el *dom.Element) {
	el.DispatchEvent(dom.NewEvent("mouseleave"))
}

// KeyDown dispatches a keydown with the given key on el. It returns false
// when a listener prevented the default action.
func (t *Tester) KeyDown(el *dom.Element, key string) bool {
	ev := dom.NewEvent("keydown")
	ev.Key = key
	return el.DispatchEvent(ev)
}

// TapFinder taps the first element matched by finder.
func (t *Tester) TapFinder(finder Finder) error {
	el := t.Find(finder).FirstOrNil()
	if el == nil {
		return fmt.Errorf("Tap: finder matched no elements: %s", finder.Description())
	}
	t.Tap(el)
	return nil
}

// ClickFinder clicks the first element matched by finder.
func (t *Tester) ClickFinder(finder Finder) error {
	el := t.Find(finder).FirstOrNil()
	if el == nil {
		return fmt.Errorf("Click: finder matched no elements: %s", finder.Description())
	}
	t.Click(el)
	return nil
}
