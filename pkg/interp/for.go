package interp

import (
	"fmt"

	"golang.org/x/image/math/f64"

	"github.com/go-drift/motion/pkg/errors"
)

// For returns the built-in interpolator for T. When T is the empty interface
// the result is [Dynamic]. Types without a built-in interpolator return a
// configuration error; supply an Interpolator explicitly for those.
func For[T any]() (Interpolator[T], error) {
	var zero T
	var ip any
	switch any(zero).(type) {
	case float64:
		ip = Float64
	case float32:
		ip = Float[float32]()
	case int:
		ip = Integer[int]()
	case int8:
		ip = Integer[int8]()
	case int16:
		ip = Integer[int16]()
	case int32:
		ip = Integer[int32]()
	case int64:
		ip = Integer[int64]()
	case uint:
		ip = Integer[uint]()
	case uint8:
		ip = Integer[uint8]()
	case uint16:
		ip = Integer[uint16]()
	case uint32:
		ip = Integer[uint32]()
	case uint64:
		ip = Integer[uint64]()
	case Point:
		ip = Points
	case Size:
		ip = Sizes
	case Rect:
		ip = Rects
	case EdgeInsets:
		ip = Insets
	case Color:
		ip = Colors
	case f64.Vec2:
		ip = Vec2s
	case f64.Vec3:
		ip = Vec3s
	case f64.Vec4:
		ip = Vec4s
	case f64.Aff3:
		ip = Transforms
	default:
		ip = Dynamic
	}

	if typed, ok := ip.(Interpolator[T]); ok {
		return typed, nil
	}
	return nil, errors.Configuration("interp.For", fmt.Errorf("%w: %T", errors.ErrUnsupportedType, zero))
}
