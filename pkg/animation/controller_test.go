package animation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mtrl/mtrl/pkg/animation"
	"github.com/go-mtrl/mtrl/pkg/schedule"
	mtrltest "github.com/go-mtrl/mtrl/pkg/testing"
)

func newController(d time.Duration) (*animation.Controller, *mtrltest.FakeScheduler) {
	sched := mtrltest.NewFakeScheduler(mtrltest.NewFakeClock())
	return animation.NewController(sched, d), sched
}

func TestController_Forward(t *testing.T) {
	c, sched := newController(100 * time.Millisecond)

	var values []float64
	var statuses []animation.Status
	c.AddListener(func(v float64) { values = append(values, v) })
	c.AddStatusListener(func(s animation.Status) { statuses = append(statuses, s) })

	c.Forward()
	assert.True(t, c.IsAnimating())
	assert.Equal(t, animation.Forward, c.Status())
	assert.Empty(t, values)

	sched.Advance(schedule.FrameInterval)
	require.Len(t, values, 1)
	assert.InDelta(t, 0.16, values[0], 1e-9)

	sched.Advance(time.Second)
	assert.False(t, c.IsAnimating())
	assert.Equal(t, 1.0, c.Value())
	assert.Equal(t, []animation.Status{animation.Forward, animation.Completed}, statuses)
	assert.Equal(t, 0, sched.Pending())

	for i := 1; i < len(values); i++ {
		assert.Greater(t, values[i], values[i-1])
	}
}

func TestController_ReverseWithCurve(t *testing.T) {
	c, sched := newController(200 * time.Millisecond)
	c.Curve = animation.StandardDecelerate
	c.SetValue(1)
	assert.Equal(t, animation.Completed, c.Status())

	c.Reverse()
	sched.Advance(100 * time.Millisecond)
	mid := c.Value()
	assert.Less(t, mid, 0.5, "decelerating curves cover most of the distance early")
	assert.Greater(t, mid, 0.0)

	sched.Flush()
	assert.Equal(t, 0.0, c.Value())
	assert.Equal(t, animation.Dismissed, c.Status())
}

func TestController_StopAndDispose(t *testing.T) {
	c, sched := newController(100 * time.Millisecond)
	calls := 0
	unsubscribe := c.AddListener(func(float64) { calls++ })

	c.AnimateTo(0.5)
	sched.Advance(32 * time.Millisecond)
	c.Stop()
	stopped := c.Value()
	sched.Advance(time.Second)
	assert.Equal(t, stopped, c.Value())
	assert.Equal(t, animation.Forward, c.Status())

	unsubscribe()
	c.SetValue(0)
	assert.Equal(t, 2, calls)

	c.Forward()
	c.Dispose()
	assert.Equal(t, 0, sched.Pending())
}

func TestController_ZeroDurationJumps(t *testing.T) {
	c, sched := newController(0)
	c.Forward()
	assert.Equal(t, 1.0, c.Value())
	assert.Equal(t, animation.Completed, c.Status())
	assert.Equal(t, 0, sched.Pending())
}

func TestCubicBezier(t *testing.T) {
	assert.Equal(t, 0.0, animation.Standard.Transform(0))
	assert.Equal(t, 1.0, animation.Standard.Transform(1))
	assert.InDelta(t, 0.5, animation.CubicBezier{X1: 0.25, Y1: 0.25, X2: 0.75, Y2: 0.75}.Transform(0.5), 1e-6)
	assert.Equal(t, "cubic-bezier(0.2, 0, 0, 1)", animation.Standard.CSS())
	assert.Equal(t, "linear", animation.Linear.CSS())
	assert.Equal(t, 0.25, animation.Linear.Transform(0.25))
}

func TestTween(t *testing.T) {
	c, _ := newController(0)
	tw := animation.TweenFloat64(10, 20)
	assert.Equal(t, 10.0, tw.Transform(c))
	c.SetValue(0.5)
	assert.Equal(t, 15.0, tw.Transform(c))
}
