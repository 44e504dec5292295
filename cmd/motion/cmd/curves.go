package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/curve"
)

var (
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	sparkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0A0"))
	plotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
)

func curvesCmd() *cobra.Command {
	var samples, height int
	cmd := &cobra.Command{
		Use:   "curves [name]",
		Short: "List the built-in curves or plot one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				listCurves(cmd.OutOrStdout(), samples)
				return nil
			}
			c, ok := curve.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown curve %q (run \"motion curves\" for the list)", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), plotCurve(c, samples, height))
			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 40, "number of samples across the curve")
	cmd.Flags().IntVar(&height, "height", 12, "plot height in rows")
	return cmd
}

func listCurves(w io.Writer, samples int) {
	names := curve.Names()
	width := 0
	for _, n := range names {
		width = max(width, len(n))
	}
	for _, n := range names {
		c, _ := curve.Lookup(n)
		fmt.Fprintf(w, "%s  %s\n", nameStyle.Render(fmt.Sprintf("%-*s", width, n)), sparkStyle.Render(sparkline(curve.Sample(c, min(samples, 24)))))
	}
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

func sparkline(values []float64) string {
	lo, hi := bounds(values)
	var b strings.Builder
	for _, v := range values {
		i := int(math.Round((v - lo) / (hi - lo) * float64(len(sparkRunes)-1)))
		b.WriteRune(sparkRunes[max(0, min(len(sparkRunes)-1, i))])
	}
	return b.String()
}

// bounds returns the plotted range: [0, 1] widened to fit any overshoot.
func bounds(values []float64) (lo, hi float64) {
	lo, hi = 0, 1
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	return lo, hi
}

// plotCurve draws c as a scatter of rows over time, y growing upwards.
func plotCurve(c curve.Curve, samples, height int) string {
	samples = max(samples, 2)
	height = max(height, 2)
	values := animation.TweenFloat64(0, 1, c).Sample(samples - 1)
	lo, hi := bounds(values)
	rows := animation.TweenFloat64(0, float64(height-1), nil)

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", samples))
	}
	for x, v := range values {
		y := int(math.Round(rows.Evaluate((v - lo) / (hi - lo))))
		grid[height-1-y][x] = '●'
	}

	var b strings.Builder
	b.WriteString(nameStyle.Render(curve.Name(c)))
	b.WriteString("\n")
	for i, row := range grid {
		label := "      "
		switch i {
		case 0:
			label = fmt.Sprintf("%6.2f", hi)
		case height - 1:
			label = fmt.Sprintf("%6.2f", lo)
		}
		b.WriteString(axisStyle.Render(label + " │"))
		b.WriteString(plotStyle.Render(string(row)))
		b.WriteString("\n")
	}
	b.WriteString(axisStyle.Render("       └" + strings.Repeat("─", samples)))
	return b.String()
}
