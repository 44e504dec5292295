package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/interp"
	"github.com/go-drift/motion/pkg/scene"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0A0"))
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3C3C3C")).Faint(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#73D216"))
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	name := m.scene.Name
	if name == "" {
		name = "scene"
	}
	b.WriteString(titleStyle.Render(name))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  t=%s  frame %d  %s", m.sched.Now().Round(1e6), m.frames, m.root.State())))
	b.WriteString("\n\n")

	names := m.store.Names()
	labelWidth := 0
	for _, n := range names {
		labelWidth = max(labelWidth, lipgloss.Width(n))
	}
	barWidth := max(10, min(40, m.width-labelWidth-30))

	for _, n := range names {
		v, _ := m.store.Get(n)
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, n)))
		b.WriteString("  ")
		b.WriteString(m.renderValue(n, v, barWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	case m.done && m.finished:
		b.WriteString(okStyle.Render("finished"))
		b.WriteString("\n")
	case m.done && m.root.State() == animation.Cancelled:
		b.WriteString(errStyle.Render("cancelled"))
		b.WriteString("\n")
	case m.done:
		b.WriteString(errStyle.Render("completed, some animations cancelled"))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("r restart · c cancel · q quit"))
	return b.String()
}

func (m Model) renderValue(name string, v any, width int) string {
	switch x := v.(type) {
	case float64:
		r, ok := m.ranges[name]
		if !ok {
			return scene.Format(x)
		}
		return renderBar(r.fraction(x), width) + " " + scene.Format(round(x))
	case interp.Color:
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(x.Hex()[:7])).Render(strings.Repeat(" ", 6))
		return swatch + " " + x.Hex()
	case interp.Point:
		return scene.Format(interp.Point{X: round(x.X), Y: round(x.Y)})
	case interp.Size:
		return scene.Format(interp.Size{Width: round(x.Width), Height: round(x.Height)})
	}
	return scene.Format(v)
}

func renderBar(frac float64, width int) string {
	filled := int(math.Round(frac * float64(width)))
	filled = max(0, min(width, filled))
	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}

func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// span is the range of values a scalar property takes over a scene.
type span struct {
	lo, hi float64
}

func (s span) fraction(v float64) float64 {
	if s.hi == s.lo {
		return 1
	}
	return (v - s.lo) / (s.hi - s.lo)
}

// scalarRanges collects the initial, from and to values of every scalar
// property so bars share a stable scale for the whole run.
func scalarRanges(sc *scene.Scene) map[string]span {
	out := make(map[string]span)
	add := func(name string, v any) {
		f, ok := v.(float64)
		if !ok {
			return
		}
		r, seen := out[name]
		if !seen {
			out[name] = span{f, f}
			return
		}
		out[name] = span{math.Min(r.lo, f), math.Max(r.hi, f)}
	}
	for _, p := range sc.Properties {
		add(p.Name, p.Value.V)
	}
	var walk func([]scene.Node)
	walk = func(nodes []scene.Node) {
		for _, n := range nodes {
			if n.Group != nil {
				walk(n.Group.Animations)
				continue
			}
			if n.From != nil {
				add(n.Property, n.From.V)
			}
			if n.To != nil {
				add(n.Property, n.To.V)
			}
		}
	}
	walk(sc.Animations)
	return out
}
