// Package interp defines how animated values move between two endpoints.
//
// An [Interpolator] computes the value at a given progress between a start
// and an end value of the same type. Composite types interpolate each
// component independently with the same progress.
//
// Interpolators built with [Func] are exact at the boundaries: progress 0
// returns the start value and progress 1 returns the end value, bit for bit.
// The raw Lerp functions in this package do not pin the boundaries on their
// own; wrap them in Func (or use [For]) before handing them to an animation.
//
//	ip := interp.Func[interp.Point](interp.LerpPoint)
//	mid := ip.Interpolate(interp.Point{}, interp.Point{X: 10, Y: 20}, 0.5)
package interp

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Interpolator computes intermediate values of type T.
type Interpolator[T any] interface {
	// Interpolate returns the value at progress between from and to.
	// Progress is normally in [0, 1] but may leave it for overshooting curves.
	Interpolate(from, to T, progress float64) T
}

// Validator is implemented by interpolators that can only handle some pairs
// of endpoints. Animations call Validate once their start value is known.
type Validator[T any] interface {
	Validate(from, to T) error
}

// Func adapts a lerp function to an Interpolator that pins the boundaries.
type Func[T any] func(from, to T, progress float64) T

// Interpolate implements Interpolator.
func (f Func[T]) Interpolate(from, to T, progress float64) T {
	switch progress {
	case 0:
		return from
	case 1:
		return to
	}
	return f(from, to, progress)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// Float returns an interpolator for any floating-point type.
func Float[T constraints.Float]() Func[T] {
	return func(from, to T, progress float64) T {
		return T(LerpFloat64(float64(from), float64(to), progress))
	}
}

// Integer returns an interpolator for any integer type. Intermediate values
// are rounded to the nearest integer and saturate at the type's range.
func Integer[T constraints.Integer]() Func[T] {
	return func(from, to T, progress float64) T {
		v := math.Round(LerpFloat64(float64(from), float64(to), progress))
		return saturate[T](v)
	}
}

func saturate[T constraints.Integer](v float64) T {
	lo, hi := bounds[T]()
	if v <= lo {
		return T(lo)
	}
	if v >= hi {
		return T(hi)
	}
	return T(v)
}

// bounds returns the representable range of T as float64. The upper bound
// is backed off by one ulp so converting it back to T cannot overflow.
func bounds[T constraints.Integer]() (lo, hi float64) {
	var zero T
	bits := float64(unsafe.Sizeof(zero) * 8)
	if zero-1 > zero {
		return 0, math.Nextafter(math.Pow(2, bits), 0)
	}
	return -math.Pow(2, bits-1), math.Nextafter(math.Pow(2, bits-1), 0)
}

// Float64 interpolates float64 values.
var Float64 = Float[float64]()
