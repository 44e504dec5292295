package animation

import (
	"github.com/go-drift/motion/pkg/curve"
	"github.com/go-drift/motion/pkg/interp"
)

// Tween maps normalized time to a value between Begin and End, without
// any scheduling. It is useful for sampling an animation's shape ahead of
// time, or for deriving secondary values from a running animation's
// progress.
type Tween[T any] struct {
	Begin T
	End   T
	// Curve shapes progress. Nil means linear.
	Curve curve.Curve
	// Interpolator computes the value. Nil yields End for every t.
	Interpolator interp.Interpolator[T]
}

// Evaluate returns the value at normalized time t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Interpolator == nil {
		return tw.End
	}
	if tw.Curve != nil {
		t = tw.Curve.Transform(t)
	}
	return tw.Interpolator.Interpolate(tw.Begin, tw.End, t)
}

// Progressor reports normalized time in [0, 1].
type Progressor interface {
	Progress() float64
}

// Transform evaluates the tween at p's current progress.
func (tw *Tween[T]) Transform(p Progressor) T {
	return tw.Evaluate(p.Progress())
}

// Sample evaluates the tween at n+1 evenly spaced times from 0 to 1.
func (tw *Tween[T]) Sample(n int) []T {
	if n < 1 {
		n = 1
	}
	out := make([]T, n+1)
	for i := range out {
		out[i] = tw.Evaluate(float64(i) / float64(n))
	}
	return out
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64, c curve.Curve) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Curve: c, Interpolator: interp.Float64}
}

// TweenColor creates a tween that blends colors in linear RGB.
func TweenColor(begin, end interp.Color, c curve.Curve) *Tween[interp.Color] {
	return &Tween[interp.Color]{Begin: begin, End: end, Curve: c, Interpolator: interp.ColorsLinear}
}
