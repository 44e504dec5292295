package curve

import "slices"

var (
	registry = make(map[string]*named)
	order    []string
)

// Lookup returns the built-in curve registered under name, such as
// "easeInOutQuad". Names are case-sensitive camelCase.
func Lookup(name string) (Curve, bool) {
	c, ok := registry[name]
	if !ok {
		return nil, false
	}
	return c, true
}

// Names returns the names of every built-in curve in declaration order.
func Names() []string {
	return slices.Clone(order)
}

// Name returns the registered name of c, or "" if c is not a built-in curve.
func Name(c Curve) string {
	if n, ok := c.(*named); ok {
		return n.name
	}
	return ""
}
