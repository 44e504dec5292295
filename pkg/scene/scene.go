// Package scene loads animation scenes from YAML files and builds them into
// runnable animation groups.
//
// A scene declares named properties with initial values and a tree of
// animations over them:
//
//	version: v1
//	defaults:
//	  curve: easeInOutQuad
//	  duration: 500ms
//	properties:
//	  - name: opacity
//	    value: 0
//	  - name: tint
//	    value: "#000000"
//	animations:
//	  - property: opacity
//	    to: 1
//	  - group:
//	      animations:
//	        - property: tint
//	          to: "#ff8000"
//	          space: lab
//	          delay: 250ms
package scene

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/curve"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/interp"
)

// FormatVersion is the newest scene format this package reads. Files
// declaring a different major version, or a newer minor, are rejected.
const FormatVersion = "v1.1.0"

// File is the raw YAML document.
type File struct {
	Version    string         `yaml:"version"`
	Name       string         `yaml:"name,omitempty"`
	Defaults   Defaults       `yaml:"defaults,omitempty"`
	Properties []PropertySpec `yaml:"properties"`
	Animations []Node         `yaml:"animations"`
}

// Defaults apply to every animation that does not set its own value.
type Defaults struct {
	Curve    string   `yaml:"curve,omitempty"`
	Duration Duration `yaml:"duration,omitempty"`
}

// PropertySpec declares an animatable property and its initial value.
type PropertySpec struct {
	Name  string `yaml:"name"`
	Value Value  `yaml:"value"`
}

// Node is either a property animation or a nested group.
type Node struct {
	Property string    `yaml:"property,omitempty"`
	From     *Value    `yaml:"from,omitempty"`
	To       *Value    `yaml:"to,omitempty"`
	Duration *Duration `yaml:"duration,omitempty"`
	Delay    Duration  `yaml:"delay,omitempty"`
	Curve    string    `yaml:"curve,omitempty"`
	// Bezier is a cubic Bézier curve [x1, y1, x2, y2]; it overrides Curve.
	Bezier []float64 `yaml:"bezier,omitempty"`
	// Space selects the color blend space: rgb (default), linear, lab or hcl.
	Space string `yaml:"space,omitempty"`

	Group *GroupSpec `yaml:"group,omitempty"`
}

// GroupSpec is a nested group of animations.
type GroupSpec struct {
	Animations []Node `yaml:"animations"`
}

// Scene is a parsed and validated scene.
type Scene struct {
	Name       string
	Version    string
	Properties []PropertySpec
	Animations []Node

	defaults Defaults
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Configuration("scene.Load", fmt.Errorf("failed to read scene: %w", err))
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Parse decodes and validates a scene document.
func Parse(data []byte) (*Scene, error) {
	const op = "scene.Parse"
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Configuration(op, fmt.Errorf("failed to parse scene: %w", err))
	}

	version, err := checkVersion(f.Version)
	if err != nil {
		return nil, errors.Configuration(op, err)
	}
	if err := validate(&f); err != nil {
		return nil, errors.Configuration(op, err)
	}

	return &Scene{
		Name:       strings.TrimSpace(f.Name),
		Version:    version,
		Properties: f.Properties,
		Animations: f.Animations,
		defaults:   f.Defaults,
	}, nil
}

func checkVersion(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", fmt.Errorf("version is required")
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid version %q", raw)
	}
	if semver.Major(v) != semver.Major(FormatVersion) {
		return "", fmt.Errorf("unsupported scene version %s (this build reads %s)", v, semver.Major(FormatVersion))
	}
	if semver.Compare(v, FormatVersion) > 0 {
		return "", fmt.Errorf("scene version %s is newer than supported %s", v, FormatVersion)
	}
	return semver.Canonical(v), nil
}

func validate(f *File) error {
	initial := make(map[string]any, len(f.Properties))
	for i, p := range f.Properties {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return fmt.Errorf("properties[%d]: name is required", i)
		}
		if _, dup := initial[name]; dup {
			return fmt.Errorf("properties[%d]: duplicate property %q", i, name)
		}
		if p.Value.V == nil {
			return fmt.Errorf("properties[%d]: value is required", i)
		}
		f.Properties[i].Name = name
		initial[name] = p.Value.V
	}

	if f.Defaults.Curve != "" {
		if _, ok := curve.Lookup(f.Defaults.Curve); !ok {
			return fmt.Errorf("defaults: unknown curve %q", f.Defaults.Curve)
		}
	}
	if f.Defaults.Duration < 0 {
		return fmt.Errorf("defaults: negative duration")
	}

	var errs []error
	var walk func(path string, nodes []Node)
	walk = func(path string, nodes []Node) {
		for i := range nodes {
			at := fmt.Sprintf("%s[%d]", path, i)
			n := &nodes[i]
			if n.Group != nil {
				if n.Property != "" {
					errs = append(errs, fmt.Errorf("%s: group and property are exclusive", at))
					continue
				}
				walk(at+".group.animations", n.Group.Animations)
				continue
			}
			if err := validateNode(n, initial); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", at, err))
			}
		}
	}
	walk("animations", f.Animations)
	return stderrors.Join(errs...)
}

func validateNode(n *Node, initial map[string]any) error {
	start, ok := initial[n.Property]
	switch {
	case n.Property == "":
		return fmt.Errorf("property is required")
	case !ok:
		return fmt.Errorf("unknown property %q", n.Property)
	case n.To == nil || n.To.V == nil:
		return fmt.Errorf("to is required (quote colors: \"#rrggbb\")")
	case n.Duration != nil && *n.Duration < 0:
		return fmt.Errorf("negative duration")
	case n.Delay < 0:
		return fmt.Errorf("negative delay")
	}
	if n.From != nil {
		start = n.From.V
	}
	if err := interp.Dynamic.Validate(start, n.To.V); err != nil {
		return err
	}
	if _, err := resolveCurve(n, Defaults{}); err != nil {
		return err
	}
	if _, err := blendFor(n.Space); err != nil {
		return err
	}
	return nil
}

func resolveCurve(n *Node, d Defaults) (curve.Curve, error) {
	if len(n.Bezier) > 0 {
		if len(n.Bezier) != 4 {
			return nil, fmt.Errorf("bezier needs 4 control values, got %d", len(n.Bezier))
		}
		b := n.Bezier
		return curve.CubicBezier(b[0], b[1], b[2], b[3]), nil
	}
	name := n.Curve
	if name == "" {
		name = d.Curve
	}
	if name == "" {
		return curve.Linear, nil
	}
	c, ok := curve.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown curve %q", name)
	}
	return c, nil
}
