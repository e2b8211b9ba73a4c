package animation

import (
	"math"
	"strconv"
	"time"
)

// Curve transforms linear progress in [0, 1] into eased progress.
type Curve interface {
	Transform(t float64) float64
	// CSS returns the equivalent transition-timing-function value.
	CSS() string
}

type linear struct{}

func (linear) Transform(t float64) float64 { return clampUnit(t) }
func (linear) CSS() string                 { return "linear" }

// Linear applies no easing.
var Linear Curve = linear{}

// Material motion easing curves.
var (
	Standard             = CubicBezier{X1: 0.2, Y1: 0, X2: 0, Y2: 1}
	StandardAccelerate   = CubicBezier{X1: 0.3, Y1: 0, X2: 1, Y2: 1}
	StandardDecelerate   = CubicBezier{X1: 0, Y1: 0, X2: 0, Y2: 1}
	EmphasizedAccelerate = CubicBezier{X1: 0.3, Y1: 0, X2: 0.8, Y2: 0.15}
	EmphasizedDecelerate = CubicBezier{X1: 0.05, Y1: 0.7, X2: 0.1, Y2: 1}
)

// Material motion durations.
const (
	DurationShort  = 200 * time.Millisecond
	DurationMedium = 300 * time.Millisecond
	DurationLong   = 500 * time.Millisecond
)

// CubicBezier is an easing curve matching CSS cubic-bezier(). The curve
// starts at (0,0) and ends at (1,1); (X1,Y1) and (X2,Y2) are the control
// points.
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Transform returns the eased value for t.
func (c CubicBezier) Transform(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	u := t
	// Newton-Raphson converges quickly for most values.
	for range 8 {
		x := sampleCurve(c.X1, c.X2, u) - t
		if math.Abs(x) < 1e-7 {
			return sampleCurve(c.Y1, c.Y2, clampUnit(u))
		}
		dx := sampleCurveDerivative(c.X1, c.X2, u)
		if math.Abs(dx) < 1e-7 {
			break
		}
		u -= x / dx
	}

	// Bisection keeps the solution inside [0,1].
	lo, hi := 0.0, 1.0
	u = clampUnit(u)
	for range 12 {
		x := sampleCurve(c.X1, c.X2, u) - t
		if math.Abs(x) < 1e-7 {
			break
		}
		if x > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}

	return sampleCurve(c.Y1, c.Y2, u)
}

// CSS renders the curve as cubic-bezier(x1, y1, x2, y2).
func (c CubicBezier) CSS() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return "cubic-bezier(" + f(c.X1) + ", " + f(c.Y1) + ", " + f(c.X2) + ", " + f(c.Y2) + ")"
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
