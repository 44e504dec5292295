package curve

import "math"

// CSS timing function presets built with CubicBezier.
var (
	// CSSEase is CSS ease.
	CSSEase = CubicBezier(0.25, 0.1, 0.25, 1.0)
	// CSSEaseIn is CSS ease-in.
	CSSEaseIn = CubicBezier(0.42, 0.0, 1.0, 1.0)
	// CSSEaseOut is CSS ease-out.
	CSSEaseOut = CubicBezier(0.0, 0.0, 0.58, 1.0)
	// CSSEaseInOut is CSS ease-in-out.
	CSSEaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)
)

// CubicBezier returns a curve matching CSS cubic-bezier(x1, y1, x2, y2).
// The curve runs from (0,0) to (1,1) with (x1,y1) and (x2,y2) as control
// points. x1 and x2 are clamped to [0, 1] so the curve stays a function of t.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return &bezier{x1: clampUnit(x1), y1: y1, x2: clampUnit(x2), y2: y2}
}

type bezier struct {
	x1, y1, x2, y2 float64
}

func (b *bezier) Transform(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return sampleCurve(b.y1, b.y2, b.solve(t))
}

// solve finds the curve parameter u whose x coordinate equals t.
func (b *bezier) solve(t float64) float64 {
	const epsilon = 1e-7

	u := t
	for i := 0; i < 8; i++ {
		x := sampleCurve(b.x1, b.x2, u) - t
		if math.Abs(x) < epsilon {
			return clampUnit(u)
		}
		dx := sampleCurveDerivative(b.x1, b.x2, u)
		if math.Abs(dx) < epsilon {
			break
		}
		u -= x / dx
	}

	// Newton-Raphson stalled on a flat segment; bisect instead.
	lo, hi := 0.0, 1.0
	u = clampUnit(u)
	for i := 0; i < 32; i++ {
		x := sampleCurve(b.x1, b.x2, u) - t
		if math.Abs(x) < epsilon {
			break
		}
		if x > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
