package interp

import (
	"fmt"
	"reflect"

	"golang.org/x/image/math/f64"

	"github.com/go-drift/motion/pkg/errors"
)

// Dynamic interpolates values whose type is only known at run time, such as
// those loaded from scene files. Both endpoints must hold the same concrete
// type, which must be one of the types supported by [For]. Animations run
// Validate before the first interpolation, so Interpolate panics on a pair
// that would not validate rather than producing a wrong value.
var Dynamic = dynamic{}

type dynamic struct{}

var (
	_ Interpolator[any] = Dynamic
	_ Validator[any]    = Dynamic
)

// Validate reports whether from and to can be interpolated together.
func (dynamic) Validate(from, to any) error {
	const op = "interp.Dynamic.Validate"
	if to == nil {
		return errors.Configuration(op, errors.ErrMissingEndValue)
	}
	if !Supported(to) {
		return errors.Configuration(op, fmt.Errorf("%w: %T", errors.ErrUnsupportedType, to))
	}
	if reflect.TypeOf(from) != reflect.TypeOf(to) {
		return errors.Interpolation(op, fmt.Errorf("%w: %T and %T", errors.ErrTypeMismatch, from, to))
	}
	return nil
}

// Interpolate implements Interpolator.
func (d dynamic) Interpolate(from, to any, progress float64) any {
	switch progress {
	case 0:
		return from
	case 1:
		return to
	}
	if err := d.Validate(from, to); err != nil {
		panic(err)
	}

	switch a := from.(type) {
	case float64:
		return LerpFloat64(a, to.(float64), progress)
	case float32:
		return Float[float32]()(a, to.(float32), progress)
	case int:
		return Integer[int]()(a, to.(int), progress)
	case int8:
		return Integer[int8]()(a, to.(int8), progress)
	case int16:
		return Integer[int16]()(a, to.(int16), progress)
	case int32:
		return Integer[int32]()(a, to.(int32), progress)
	case int64:
		return Integer[int64]()(a, to.(int64), progress)
	case uint:
		return Integer[uint]()(a, to.(uint), progress)
	case uint8:
		return Integer[uint8]()(a, to.(uint8), progress)
	case uint16:
		return Integer[uint16]()(a, to.(uint16), progress)
	case uint32:
		return Integer[uint32]()(a, to.(uint32), progress)
	case uint64:
		return Integer[uint64]()(a, to.(uint64), progress)
	case Point:
		return LerpPoint(a, to.(Point), progress)
	case Size:
		return LerpSize(a, to.(Size), progress)
	case Rect:
		return LerpRect(a, to.(Rect), progress)
	case EdgeInsets:
		return LerpEdgeInsets(a, to.(EdgeInsets), progress)
	case Color:
		return LerpColor(a, to.(Color), progress)
	case f64.Vec2:
		return LerpVec2(a, to.(f64.Vec2), progress)
	case f64.Vec3:
		return LerpVec3(a, to.(f64.Vec3), progress)
	case f64.Vec4:
		return LerpVec4(a, to.(f64.Vec4), progress)
	case f64.Aff3:
		return LerpAffine(a, to.(f64.Aff3), progress)
	}
	panic(fmt.Sprintf("interp: unhandled dynamic type %T", from))
}

// Supported reports whether v's dynamic type has a built-in interpolator.
func Supported(v any) bool {
	switch v.(type) {
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		Point, Size, Rect, EdgeInsets, Color,
		f64.Vec2, f64.Vec3, f64.Vec4, f64.Aff3:
		return true
	}
	return false
}
