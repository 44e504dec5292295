package interp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB constructs an opaque Color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// ParseHex parses "#RRGGBB", "#RGB" or "#RRGGBBAA".
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// Hex formats the color as "#rrggbb", appending an alpha byte when the
// color is not fully opaque.
func (c Color) Hex() string {
	hex := c.toColorful().Clamped().Hex()
	if c.A >= 1 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, uint8(math.Round(clamp01(c.A)*255)))
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color, alpha float64) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}
}

// LerpColor interpolates each RGBA component independently.
func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: LerpFloat64(a.R, b.R, t),
		G: LerpFloat64(a.G, b.G, t),
		B: LerpFloat64(a.B, b.B, t),
		A: LerpFloat64(a.A, b.A, t),
	}
}

// LerpColorLab blends RGB through CIE L*a*b* and alpha linearly.
func LerpColorLab(a, b Color, t float64) Color {
	return fromColorful(a.toColorful().BlendLab(b.toColorful(), t), LerpFloat64(a.A, b.A, t))
}

// LerpColorHCL blends RGB through HCL, taking the short way around the hue
// circle, and alpha linearly.
func LerpColorHCL(a, b Color, t float64) Color {
	return fromColorful(a.toColorful().BlendHcl(b.toColorful(), t), LerpFloat64(a.A, b.A, t))
}

// LerpColorLinear blends in linear RGB, which avoids the dark band sRGB
// blending produces between saturated colors.
func LerpColorLinear(a, b Color, t float64) Color {
	ar, ag, ab := a.toColorful().LinearRgb()
	br, bg, bb := b.toColorful().LinearRgb()
	mixed := colorful.LinearRgb(
		LerpFloat64(ar, br, t),
		LerpFloat64(ag, bg, t),
		LerpFloat64(ab, bb, t),
	)
	return fromColorful(mixed, LerpFloat64(a.A, b.A, t))
}

// Color interpolators. Colors is the component-wise default.
var (
	Colors       = Func[Color](LerpColor)
	ColorsLab    = Func[Color](LerpColorLab)
	ColorsHCL    = Func[Color](LerpColorHCL)
	ColorsLinear = Func[Color](LerpColorLinear)
)

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
