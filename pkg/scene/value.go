package scene

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/math/f64"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/interp"
)

// Value is an animatable value decoded from YAML. The YAML shape selects
// the Go type held in V:
//
//	1.5                                  float64
//	"#ff8000" / "#ff800080"              interp.Color (quote it: # starts a comment)
//	[x, y]                               interp.Point
//	[x, y, z]                            f64.Vec3
//	[x, y, z, w]                         f64.Vec4
//	{width: w, height: h}                interp.Size
//	{left: l, top: t, right: r, bottom: b}  interp.Rect
type Value struct {
	V any
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if strings.HasPrefix(n.Value, "#") {
			c, err := interp.ParseHex(n.Value)
			if err != nil {
				return fmt.Errorf("line %d: %w", n.Line, err)
			}
			v.V = c
			return nil
		}
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: expected a number or color, got %q", n.Line, n.Value)
		}
		v.V = f
		return nil

	case yaml.SequenceNode:
		var xs []float64
		if err := n.Decode(&xs); err != nil {
			return fmt.Errorf("line %d: expected a list of numbers: %w", n.Line, err)
		}
		switch len(xs) {
		case 2:
			v.V = interp.Point{X: xs[0], Y: xs[1]}
		case 3:
			v.V = f64.Vec3{xs[0], xs[1], xs[2]}
		case 4:
			v.V = f64.Vec4{xs[0], xs[1], xs[2], xs[3]}
		default:
			return fmt.Errorf("line %d: vectors need 2 to 4 components, got %d", n.Line, len(xs))
		}
		return nil

	case yaml.MappingNode:
		return v.decodeMapping(n)
	}
	return fmt.Errorf("line %d: unsupported value", n.Line)
}

func (v *Value) decodeMapping(n *yaml.Node) error {
	var m map[string]float64
	if err := n.Decode(&m); err != nil {
		return fmt.Errorf("line %d: expected numeric fields: %w", n.Line, err)
	}
	has := func(keys ...string) bool {
		if len(m) != len(keys) {
			return false
		}
		for _, k := range keys {
			if _, ok := m[k]; !ok {
				return false
			}
		}
		return true
	}
	switch {
	case has("x", "y"):
		v.V = interp.Point{X: m["x"], Y: m["y"]}
	case has("width", "height"):
		v.V = interp.Size{Width: m["width"], Height: m["height"]}
	case has("left", "top", "right", "bottom"):
		v.V = interp.Rect{Left: m["left"], Top: m["top"], Right: m["right"], Bottom: m["bottom"]}
	default:
		return fmt.Errorf("line %d: unrecognized value fields", n.Line)
	}
	return nil
}

// Format renders a value the way it is written in a scene file.
func Format(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case interp.Color:
		return x.Hex()
	case interp.Point:
		return fmt.Sprintf("[%s, %s]", Format(x.X), Format(x.Y))
	case f64.Vec3:
		return fmt.Sprintf("[%s, %s, %s]", Format(x[0]), Format(x[1]), Format(x[2]))
	case f64.Vec4:
		return fmt.Sprintf("[%s, %s, %s, %s]", Format(x[0]), Format(x[1]), Format(x[2]), Format(x[3]))
	case interp.Size:
		return fmt.Sprintf("{width: %s, height: %s}", Format(x.Width), Format(x.Height))
	case interp.Rect:
		return fmt.Sprintf("{left: %s, top: %s, right: %s, bottom: %s}", Format(x.Left), Format(x.Top), Format(x.Right), Format(x.Bottom))
	}
	return fmt.Sprint(v)
}

// Duration is a time.Duration decoded from either a Go duration string
// ("250ms", "1.5s") or a bare number of seconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a duration", n.Line)
	}
	if secs, err := strconv.ParseFloat(n.Value, 64); err == nil {
		*d = Duration(secs * float64(time.Second))
		return nil
	}
	parsed, err := time.ParseDuration(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", n.Line, n.Value)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }
