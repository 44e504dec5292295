package interp

import "golang.org/x/image/math/f64"

// Point represents a 2D point or vector.
type Point struct {
	X float64
	Y float64
}

// Size represents width and height dimensions.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// EdgeInsets represents insets from each edge of a rectangle.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// LerpPoint linearly interpolates between two Point values.
func LerpPoint(a, b Point, t float64) Point {
	return Point{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpSize linearly interpolates between two Size values.
func LerpSize(a, b Size, t float64) Size {
	return Size{
		Width:  LerpFloat64(a.Width, b.Width, t),
		Height: LerpFloat64(a.Height, b.Height, t),
	}
}

// LerpRect interpolates each edge of a Rect independently.
func LerpRect(a, b Rect, t float64) Rect {
	return Rect{
		Left:   LerpFloat64(a.Left, b.Left, t),
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
	}
}

// LerpEdgeInsets linearly interpolates between two EdgeInsets values.
func LerpEdgeInsets(a, b EdgeInsets, t float64) EdgeInsets {
	return EdgeInsets{
		Left:   LerpFloat64(a.Left, b.Left, t),
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
	}
}

// LerpVec2 interpolates a 2-component vector.
func LerpVec2(a, b f64.Vec2, t float64) f64.Vec2 {
	return f64.Vec2{LerpFloat64(a[0], b[0], t), LerpFloat64(a[1], b[1], t)}
}

// LerpVec3 interpolates a 3-component vector.
func LerpVec3(a, b f64.Vec3, t float64) f64.Vec3 {
	var out f64.Vec3
	for i := range out {
		out[i] = LerpFloat64(a[i], b[i], t)
	}
	return out
}

// LerpVec4 interpolates a 4-component vector.
func LerpVec4(a, b f64.Vec4, t float64) f64.Vec4 {
	var out f64.Vec4
	for i := range out {
		out[i] = LerpFloat64(a[i], b[i], t)
	}
	return out
}

// LerpAffine interpolates the six coefficients of an affine transform
// independently. It does not decompose rotation, so large rotations pass
// through a skewed midpoint.
func LerpAffine(a, b f64.Aff3, t float64) f64.Aff3 {
	var out f64.Aff3
	for i := range out {
		out[i] = LerpFloat64(a[i], b[i], t)
	}
	return out
}

// Identity is the identity affine transform.
var Identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// Interpolators for the geometric types.
var (
	Points     = Func[Point](LerpPoint)
	Sizes      = Func[Size](LerpSize)
	Rects      = Func[Rect](LerpRect)
	Insets     = Func[EdgeInsets](LerpEdgeInsets)
	Vec2s      = Func[f64.Vec2](LerpVec2)
	Vec3s      = Func[f64.Vec3](LerpVec3)
	Vec4s      = Func[f64.Vec4](LerpVec4)
	Transforms = Func[f64.Aff3](LerpAffine)
)
