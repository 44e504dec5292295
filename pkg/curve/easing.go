package curve

import "math"

const (
	backOvershoot      = 1.70158
	backOvershootInOut = backOvershoot * 1.525

	elasticPeriod      = 0.3
	elasticPeriodInOut = 0.45

	bounceScale = 7.5625
	bounceDiv   = 2.75
)

// Linear returns linear progress (no easing).
var Linear Curve = newNamed("linear", func(t float64) float64 { return t })

// Power curves.
var (
	EaseInQuad    Curve = newNamed("easeInQuad", powIn(2))
	EaseOutQuad   Curve = newNamed("easeOutQuad", powOut(2))
	EaseInOutQuad Curve = newNamed("easeInOutQuad", powInOut(2))

	EaseInCubic    Curve = newNamed("easeInCubic", powIn(3))
	EaseOutCubic   Curve = newNamed("easeOutCubic", powOut(3))
	EaseInOutCubic Curve = newNamed("easeInOutCubic", powInOut(3))

	EaseInQuart    Curve = newNamed("easeInQuart", powIn(4))
	EaseOutQuart   Curve = newNamed("easeOutQuart", powOut(4))
	EaseInOutQuart Curve = newNamed("easeInOutQuart", powInOut(4))

	EaseInQuint    Curve = newNamed("easeInQuint", powIn(5))
	EaseOutQuint   Curve = newNamed("easeOutQuint", powOut(5))
	EaseInOutQuint Curve = newNamed("easeInOutQuint", powInOut(5))
)

// Sine curves.
var (
	EaseInSine Curve = newNamed("easeInSine", func(t float64) float64 {
		return 1 - math.Cos(t*math.Pi/2)
	})
	EaseOutSine Curve = newNamed("easeOutSine", func(t float64) float64 {
		return math.Sin(t * math.Pi / 2)
	})
	EaseInOutSine Curve = newNamed("easeInOutSine", func(t float64) float64 {
		return -(math.Cos(math.Pi*t) - 1) / 2
	})
)

// Exponential curves. 2^(10(t-1)) never reaches 0, so the boundaries are
// special-cased rather than left to the asymptote.
var (
	EaseInExpo Curve = newNamed("easeInExpo", func(t float64) float64 {
		if t == 0 {
			return 0
		}
		return math.Pow(2, 10*(t-1))
	})
	EaseOutExpo Curve = newNamed("easeOutExpo", func(t float64) float64 {
		if t == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	})
	EaseInOutExpo Curve = newNamed("easeInOutExpo", func(t float64) float64 {
		switch {
		case t == 0:
			return 0
		case t == 1:
			return 1
		case t < 0.5:
			return math.Pow(2, 20*t-10) / 2
		default:
			return (2 - math.Pow(2, -20*t+10)) / 2
		}
	})
)

// Circular curves.
var (
	EaseInCirc Curve = newNamed("easeInCirc", func(t float64) float64 {
		return 1 - math.Sqrt(1-t*t)
	})
	EaseOutCirc Curve = newNamed("easeOutCirc", func(t float64) float64 {
		return math.Sqrt(1 - (t-1)*(t-1))
	})
	EaseInOutCirc Curve = newNamed("easeInOutCirc", func(t float64) float64 {
		if t < 0.5 {
			return (1 - math.Sqrt(1-4*t*t)) / 2
		}
		u := -2*t + 2
		return (math.Sqrt(1-u*u) + 1) / 2
	})
)

// Elastic curves: an exponentially decaying sinusoid with amplitude 1.
var (
	EaseInElastic Curve = newNamed("easeInElastic", func(t float64) float64 {
		s := elasticPeriod / 4
		u := t - 1
		return -math.Pow(2, 10*u) * math.Sin((u-s)*2*math.Pi/elasticPeriod)
	})
	EaseOutElastic Curve = newNamed("easeOutElastic", func(t float64) float64 {
		s := elasticPeriod / 4
		return math.Pow(2, -10*t)*math.Sin((t-s)*2*math.Pi/elasticPeriod) + 1
	})
	EaseInOutElastic Curve = newNamed("easeInOutElastic", func(t float64) float64 {
		s := elasticPeriodInOut / 4
		u := 2*t - 1
		if u < 0 {
			return -0.5 * math.Pow(2, 10*u) * math.Sin((u-s)*2*math.Pi/elasticPeriodInOut)
		}
		return math.Pow(2, -10*u)*math.Sin((u-s)*2*math.Pi/elasticPeriodInOut)*0.5 + 1
	})
)

// Back curves overshoot by roughly 10% before settling.
var (
	EaseInBack Curve = newNamed("easeInBack", func(t float64) float64 {
		return t * t * ((backOvershoot+1)*t - backOvershoot)
	})
	EaseOutBack Curve = newNamed("easeOutBack", func(t float64) float64 {
		u := t - 1
		return u*u*((backOvershoot+1)*u+backOvershoot) + 1
	})
	EaseInOutBack Curve = newNamed("easeInOutBack", func(t float64) float64 {
		u := 2 * t
		if u < 1 {
			return 0.5 * (u * u * ((backOvershootInOut+1)*u - backOvershootInOut))
		}
		u -= 2
		return 0.5 * (u*u*((backOvershootInOut+1)*u+backOvershootInOut) + 2)
	})
)

// Bounce curves.
var (
	EaseInBounce Curve = newNamed("easeInBounce", func(t float64) float64 {
		return 1 - bounceOut(1-t)
	})
	EaseOutBounce Curve = newNamed("easeOutBounce", bounceOut)
	EaseInOutBounce Curve = newNamed("easeInOutBounce", func(t float64) float64 {
		if t < 0.5 {
			return (1 - bounceOut(1-2*t)) / 2
		}
		return (1 + bounceOut(2*t-1)) / 2
	})
)

func powIn(n float64) func(float64) float64 {
	return func(t float64) float64 { return math.Pow(t, n) }
}

func powOut(n float64) func(float64) float64 {
	return func(t float64) float64 { return 1 - math.Pow(1-t, n) }
}

func powInOut(n float64) func(float64) float64 {
	return func(t float64) float64 {
		if t < 0.5 {
			return math.Pow(2, n-1) * math.Pow(t, n)
		}
		return 1 - math.Pow(-2*t+2, n)/2
	}
}

// bounceOut is four parabolic arcs of decreasing height.
func bounceOut(t float64) float64 {
	switch {
	case t < 1/bounceDiv:
		return bounceScale * t * t
	case t < 2/bounceDiv:
		t -= 1.5 / bounceDiv
		return bounceScale*t*t + 0.75
	case t < 2.5/bounceDiv:
		t -= 2.25 / bounceDiv
		return bounceScale*t*t + 0.9375
	default:
		t -= 2.625 / bounceDiv
		return bounceScale*t*t + 0.984375
	}
}
