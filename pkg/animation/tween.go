package animation

// Tween interpolates between Begin and End based on animation progress.
type Tween[T any] struct {
	Begin T
	End   T
	// Lerp receives the begin value, the end value and progress t.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform evaluates the tween at the controller's current value.
func (tw *Tween[T]) Transform(c *Controller) T {
	return tw.Evaluate(c.Value())
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// TweenFloat64 returns a tween between two float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}
