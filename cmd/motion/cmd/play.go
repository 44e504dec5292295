package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/go-drift/motion/pkg/animation"
	motionerrors "github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/scene"
)

type playOptions struct {
	fps   float64
	every int
	limit time.Duration
}

func playCmd() *cobra.Command {
	opts := playOptions{}
	cmd := &cobra.Command{
		Use:   "play <scene.yaml>",
		Short: "Run a scene headlessly and print property values",
		Long: `Run a scene on a fixed frame rate without a display and print the value
of every property as a table. The run is deterministic: the same scene
and frame rate always produce the same output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			return play(cmd.OutOrStdout(), sc, opts)
		},
	}
	cmd.Flags().Float64Var(&opts.fps, "fps", 60, "frames per second")
	cmd.Flags().IntVar(&opts.every, "every", 1, "print every Nth frame")
	cmd.Flags().DurationVar(&opts.limit, "limit", 10*time.Minute, "stop after this much scene time")
	return cmd
}

func play(w io.Writer, sc *scene.Scene, opts playOptions) error {
	frame := time.Duration(math.Round(float64(time.Second) / opts.fps))
	if !(opts.fps > 0) || frame <= 0 {
		return fmt.Errorf("--fps must be positive and at most 1e9, got %v", opts.fps)
	}
	if opts.every < 1 {
		opts.every = 1
	}

	s := animation.NewScheduler()
	var result *bool
	root, store, err := sc.Build(s, func(finished bool) { result = &finished })
	if err != nil {
		return err
	}

	names := store.Names()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(append([]string{"frame", "time"}, names...)...)
	addRow := func(i int) {
		snap := store.Snapshot()
		row := []string{strconv.Itoa(i), s.Now().String()}
		for _, n := range names {
			row = append(row, scene.Format(snap[n]))
		}
		t.Row(row...)
	}

	if err := root.Start(); err != nil {
		motionerrors.ReportErr("play.Start", err)
	}
	addRow(0)

	n := 0
	for root.State().IsActive() {
		if s.Now() >= opts.limit {
			return fmt.Errorf("scene still running after %s", opts.limit)
		}
		if err := s.Tick(frame); err != nil {
			motionerrors.ReportErr("play.Tick", err)
		}
		n++
		if n%opts.every == 0 || !root.State().IsActive() {
			addRow(n)
		}
	}

	fmt.Fprintln(w, t.Render())
	switch {
	case result == nil:
		fmt.Fprintf(w, "%s after %d frames (%s)\n", root.State(), n, s.Now())
	default:
		fmt.Fprintf(w, "%s: finished=%v after %d frames (%s)\n", root.State(), *result, n, s.Now())
	}
	return nil
}
