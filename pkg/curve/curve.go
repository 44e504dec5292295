// Package curve provides easing curves that shape animation progress.
//
// A [Curve] maps normalized time t in [0, 1] to normalized progress. Every
// named curve in this package returns exactly 0 at t = 0 and exactly 1 at
// t = 1, even the families that overshoot in between ([EaseInBack],
// [EaseOutElastic], [EaseOutBounce], ...).
//
// Named curves are shared singletons: compare them by identity.
//
//	if a.Curve == curve.EaseOutBounce { ... }
//
// Use [Func] to wrap an arbitrary progress function and [CubicBezier] for
// CSS-style cubic-bezier() timing functions.
package curve

// Curve transforms a position in time into a position on the curve.
type Curve interface {
	// Transform returns the progress at time t. t is in [0, 1]; the result
	// may leave [0, 1] transiently for overshooting curves.
	Transform(t float64) float64
}

// Func adapts an ordinary function to a Curve. A nil function yields Linear.
//
// Each call returns a distinct Curve, so two Func curves are never identical
// even when they wrap the same function.
func Func(fn func(t float64) float64) Curve {
	if fn == nil {
		return Linear
	}
	return &funcCurve{fn: fn}
}

type funcCurve struct {
	fn func(float64) float64
}

func (c *funcCurve) Transform(t float64) float64 { return c.fn(t) }

// named is the concrete type behind every built-in curve.
type named struct {
	name string
	fn   func(float64) float64
}

func (c *named) Transform(t float64) float64 {
	// The formulas are only defined on [0, 1]. Pinning the endpoints keeps
	// the boundary values exact regardless of floating-point error.
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return c.fn(t)
}

func (c *named) String() string { return c.name }

func newNamed(name string, fn func(float64) float64) *named {
	c := &named{name: name, fn: fn}
	registry[name] = c
	order = append(order, name)
	return c
}

// Sample evaluates c at n+1 evenly spaced times from 0 to 1 inclusive.
// n < 1 is treated as 1.
func Sample(c Curve, n int) []float64 {
	if n < 1 {
		n = 1
	}
	out := make([]float64, n+1)
	for i := range out {
		out[i] = c.Transform(float64(i) / float64(n))
	}
	return out
}
