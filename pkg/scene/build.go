package scene

import (
	"fmt"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/interp"
)

// Build creates the scene's animation tree on s, writing to a fresh Store.
// The returned root group is Pending; onComplete fires once every
// animation in the scene has ended.
func (sc *Scene) Build(s *animation.Scheduler, onComplete func(finished bool)) (*animation.Group, *Store, error) {
	const op = "scene.Build"
	if s == nil {
		return nil, nil, errors.Configuration(op, errors.ErrMissingScheduler)
	}
	st := sc.NewStore()
	members, err := sc.buildNodes(s, st, "animations", sc.Animations)
	if err != nil {
		return nil, nil, err
	}
	root, err := animation.NewGroup(members, onComplete)
	if err != nil {
		return nil, nil, err
	}
	return root, st, nil
}

func (sc *Scene) buildNodes(s *animation.Scheduler, st *Store, path string, nodes []Node) ([]animation.Animation, error) {
	out := make([]animation.Animation, 0, len(nodes))
	for i := range nodes {
		at := fmt.Sprintf("%s[%d]", path, i)
		n := &nodes[i]
		if n.Group != nil {
			children, err := sc.buildNodes(s, st, at+".group.animations", n.Group.Animations)
			if err != nil {
				return nil, err
			}
			g, err := animation.NewGroup(children, nil)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
			continue
		}
		a, err := sc.buildProperty(s, st, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", at, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (sc *Scene) buildProperty(s *animation.Scheduler, st *Store, n *Node) (*animation.Property[any], error) {
	c, err := resolveCurve(n, sc.defaults)
	if err != nil {
		return nil, errors.Configuration("scene.Build", err)
	}
	ip, err := blendFor(n.Space)
	if err != nil {
		return nil, errors.Configuration("scene.Build", err)
	}

	cfg := animation.Config[any]{
		Target:       st.Target(n.Property),
		To:           n.To.V,
		Duration:     sc.defaults.Duration.Std(),
		Delay:        n.Delay.Std(),
		Curve:        c,
		Interpolator: ip,
	}
	if n.Duration != nil {
		cfg.Duration = n.Duration.Std()
	}
	if n.From != nil {
		from := n.From.V
		cfg.From = &from
	}
	return animation.NewProperty(s, cfg)
}

// blend interpolates dynamic values, blending colors in a chosen space.
type blend struct {
	colors interp.Func[interp.Color]
}

var (
	_ interp.Interpolator[any] = blend{}
	_ interp.Validator[any]    = blend{}
)

func blendFor(space string) (interp.Interpolator[any], error) {
	switch space {
	case "", "rgb":
		return interp.Dynamic, nil
	case "linear":
		return blend{interp.ColorsLinear}, nil
	case "lab":
		return blend{interp.ColorsLab}, nil
	case "hcl":
		return blend{interp.ColorsHCL}, nil
	}
	return nil, fmt.Errorf("unknown color space %q", space)
}

func (b blend) Validate(from, to any) error {
	return interp.Dynamic.Validate(from, to)
}

func (b blend) Interpolate(from, to any, progress float64) any {
	fc, ok1 := from.(interp.Color)
	tc, ok2 := to.(interp.Color)
	if ok1 && ok2 {
		return b.colors.Interpolate(fc, tc, progress)
	}
	return interp.Dynamic.Interpolate(from, to, progress)
}
