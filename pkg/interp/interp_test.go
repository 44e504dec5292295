package interp

import (
	stderrors "errors"
	"math"
	"testing"

	"golang.org/x/image/math/f64"

	"github.com/go-drift/motion/pkg/errors"
)

// a+(b-a)*1 loses b entirely when a dwarfs it
const (
	awkwardFrom = 1e17
	awkwardTo   = 1.0
)

func TestFuncPinsBoundaries(t *testing.T) {
	if got := LerpFloat64(awkwardFrom, awkwardTo, 1); got == awkwardTo {
		t.Fatalf("raw lerp unexpectedly exact: %v", got)
	}
	if got := Float64.Interpolate(awkwardFrom, awkwardTo, 1); got != awkwardTo {
		t.Errorf("Interpolate(..., 1) = %v, want exactly %v", got, awkwardTo)
	}
	if got := Float64.Interpolate(awkwardFrom, awkwardTo, 0); got != awkwardFrom {
		t.Errorf("Interpolate(..., 0) = %v, want exactly %v", got, awkwardFrom)
	}
}

func TestBoundariesForEveryType(t *testing.T) {
	check := func(name string, eq func(p float64) (bool, bool)) {
		t.Helper()
		if atStart, _ := eq(0); !atStart {
			t.Errorf("%s: progress 0 did not return from", name)
		}
		if _, atEnd := eq(1); !atEnd {
			t.Errorf("%s: progress 1 did not return to", name)
		}
	}

	check("float64", func(p float64) (bool, bool) {
		v := Float64.Interpolate(0.1, 0.7, p)
		return v == 0.1, v == 0.7
	})
	check("float32", func(p float64) (bool, bool) {
		v := Float[float32]().Interpolate(0.1, 0.7, p)
		return v == 0.1, v == 0.7
	})
	check("int", func(p float64) (bool, bool) {
		v := Integer[int]().Interpolate(-3, 11, p)
		return v == -3, v == 11
	})
	check("Point", func(p float64) (bool, bool) {
		a, b := Point{X: 0.1, Y: 0.2}, Point{X: 0.7, Y: 0.3}
		v := Points.Interpolate(a, b, p)
		return v == a, v == b
	})
	check("Size", func(p float64) (bool, bool) {
		a, b := Size{Width: 0.1, Height: 3}, Size{Width: 0.7, Height: 0.3}
		v := Sizes.Interpolate(a, b, p)
		return v == a, v == b
	})
	check("Rect", func(p float64) (bool, bool) {
		a, b := RectFromLTWH(0.1, 0.2, 0.3, 0.4), RectFromLTWH(0.7, 0.3, 1.1, 2.2)
		v := Rects.Interpolate(a, b, p)
		return v == a, v == b
	})
	check("EdgeInsets", func(p float64) (bool, bool) {
		a, b := EdgeInsets{Left: 0.1}, EdgeInsets{Left: 0.7, Bottom: 0.3}
		v := Insets.Interpolate(a, b, p)
		return v == a, v == b
	})
	check("Vec3", func(p float64) (bool, bool) {
		a, b := f64.Vec3{0.1, 0.2, 0.3}, f64.Vec3{0.7, 0.3, 0.9}
		v := Vec3s.Interpolate(a, b, p)
		return v == a, v == b
	})
	check("Aff3", func(p float64) (bool, bool) {
		a, b := Identity, f64.Aff3{0.7, 0.1, 3, -0.1, 0.7, 0.3}
		v := Transforms.Interpolate(a, b, p)
		return v == a, v == b
	})
	for name, ip := range map[string]Func[Color]{
		"Color": Colors, "ColorLab": ColorsLab, "ColorHCL": ColorsHCL, "ColorLinear": ColorsLinear,
	} {
		check(name, func(p float64) (bool, bool) {
			a, b := Color{R: 0.1, G: 0.2, B: 0.3, A: 0.4}, Color{R: 0.7, G: 0.3, B: 0.9, A: 1}
			v := ip.Interpolate(a, b, p)
			return v == a, v == b
		})
	}
	check("Dynamic", func(p float64) (bool, bool) {
		v := Dynamic.Interpolate(Point{X: 0.1}, Point{X: 0.7}, p)
		return v == Point{X: 0.1}, v == Point{X: 0.7}
	})
}

func TestComponentWiseInterpolation(t *testing.T) {
	r := Rects.Interpolate(RectFromLTWH(0, 0, 10, 10), RectFromLTWH(10, 20, 30, 40), 0.5)
	want := Rect{Left: 5, Top: 10, Right: 25, Bottom: 35}
	if r != want {
		t.Errorf("Rect midpoint = %+v, want %+v", r, want)
	}
	if r.Width() != 20 || r.Height() != 25 {
		t.Errorf("Rect midpoint size = %vx%v", r.Width(), r.Height())
	}

	m := Transforms.Interpolate(Identity, f64.Aff3{3, 0, 10, 0, 3, -10}, 0.5)
	if m != (f64.Aff3{2, 0, 5, 0, 2, -5}) {
		t.Errorf("affine midpoint = %v", m)
	}

	v := Vec2s.Interpolate(f64.Vec2{0, 10}, f64.Vec2{10, 0}, 0.25)
	if v != (f64.Vec2{2.5, 7.5}) {
		t.Errorf("vec2 quarter = %v", v)
	}

	c := Colors.Interpolate(Color{A: 0}, Color{R: 1, G: 0.5, B: 0, A: 1}, 0.5)
	if c != (Color{R: 0.5, G: 0.25, B: 0, A: 0.5}) {
		t.Errorf("color midpoint = %+v", c)
	}
}

func TestIntegerRoundingAndSaturation(t *testing.T) {
	if got := Integer[int]().Interpolate(0, 10, 0.26); got != 3 {
		t.Errorf("int rounding = %d, want 3", got)
	}
	if got := Integer[uint8]().Interpolate(200, 255, 1.5); got != 255 {
		t.Errorf("uint8 overshoot = %d, want 255", got)
	}
	if got := Integer[uint8]().Interpolate(10, 0, 1.5); got != 0 {
		t.Errorf("uint8 undershoot = %d, want 0", got)
	}
	if got := Integer[int8]().Interpolate(-100, 100, -0.5); got != -128 {
		t.Errorf("int8 undershoot = %d, want -128", got)
	}
	if got := Integer[uint16]().Interpolate(100, 0, 0.5); got != 50 {
		t.Errorf("uint16 descending = %d, want 50", got)
	}
}

func TestColorSpaces(t *testing.T) {
	red, _ := ParseHex("#ff0000")
	blue, _ := ParseHex("#0000ff")

	rgb := Colors.Interpolate(red, blue, 0.5)
	linear := ColorsLinear.Interpolate(red, blue, 0.5)
	if linear.R <= rgb.R {
		t.Errorf("linear blend should be brighter than sRGB blend: %v vs %v", linear.R, rgb.R)
	}

	for _, ip := range []Func[Color]{ColorsLab, ColorsHCL} {
		mid := ip.Interpolate(red, blue, 0.5)
		if math.IsNaN(mid.R) || math.IsNaN(mid.G) || math.IsNaN(mid.B) {
			t.Errorf("blend produced NaN: %+v", mid)
		}
		if mid.A != 1 {
			t.Errorf("alpha = %v, want 1", mid.A)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#ff8000", "#ff8000", false},
		{"#f80", "#ff8800", false},
		{"#ff800080", "#ff800080", false},
		{"  #00ff00 ", "#00ff00", false},
		{"ff8000", "", true},
		{"#ff8000zz", "", true},
		{"#12", "", true},
	}
	for _, tt := range tests {
		c, err := ParseHex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if got := c.Hex(); got != tt.want {
			t.Errorf("ParseHex(%q).Hex() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFor(t *testing.T) {
	f, err := For[float64]()
	if err != nil {
		t.Fatalf("For[float64]: %v", err)
	}
	if got := f.Interpolate(0, 100, 0.25); got != 25 {
		t.Errorf("For[float64] quarter = %v", got)
	}

	if _, err := For[Color](); err != nil {
		t.Errorf("For[Color]: %v", err)
	}
	if _, err := For[f64.Aff3](); err != nil {
		t.Errorf("For[f64.Aff3]: %v", err)
	}

	d, err := For[any]()
	if err != nil {
		t.Fatalf("For[any]: %v", err)
	}
	if _, ok := d.(Validator[any]); !ok {
		t.Error("For[any] should return a validating interpolator")
	}

	type opaque struct{ name string }
	_, err = For[opaque]()
	if !errors.IsKind(err, errors.KindConfiguration) {
		t.Errorf("For[opaque] error = %v, want configuration error", err)
	}
	if !stderrors.Is(err, errors.ErrUnsupportedType) {
		t.Errorf("For[opaque] error should wrap ErrUnsupportedType, got %v", err)
	}
}

func TestDynamicValidate(t *testing.T) {
	tests := []struct {
		name string
		from any
		to   any
		kind errors.ErrorKind
		ok   bool
	}{
		{"same scalar", 1.0, 2.0, 0, true},
		{"same point", Point{}, Point{X: 1}, 0, true},
		{"mismatch", 1.0, Point{}, errors.KindInterpolation, false},
		{"int vs float", 1, 2.0, errors.KindInterpolation, false},
		{"nil from", nil, 2.0, errors.KindInterpolation, false},
		{"nil to", 1.0, nil, errors.KindConfiguration, false},
		{"unsupported", "a", "b", errors.KindConfiguration, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Dynamic.Validate(tt.from, tt.to)
			if tt.ok {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("error = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

func TestDynamicInterpolatePanicsOnMismatch(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.IsKind(err, errors.KindInterpolation) {
			t.Errorf("expected interpolation error panic, got %v", r)
		}
	}()
	Dynamic.Interpolate(1.0, Point{}, 0.5)
}

func TestDynamicInterpolate(t *testing.T) {
	if got := Dynamic.Interpolate(0.0, 100.0, 0.5); got != 50.0 {
		t.Errorf("float64 = %v", got)
	}
	if got := Dynamic.Interpolate(uint8(0), uint8(100), 0.5); got != uint8(50) {
		t.Errorf("uint8 = %v (%T)", got, got)
	}
	if got := Dynamic.Interpolate(f64.Vec2{0, 0}, f64.Vec2{4, 8}, 0.5); got != (f64.Vec2{2, 4}) {
		t.Errorf("vec2 = %v", got)
	}
	if got := Dynamic.Interpolate(Size{}, Size{Width: 2, Height: 4}, 0.5); got != (Size{Width: 1, Height: 2}) {
		t.Errorf("size = %v", got)
	}
}
