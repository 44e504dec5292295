package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/go-drift/motion/internal/preview"
	"github.com/go-drift/motion/pkg/scene"
)

func previewCmd() *cobra.Command {
	var fps float64
	cmd := &cobra.Command{
		Use:   "preview <scene.yaml>",
		Short: "Run a scene live in the terminal",
		Long: `Run a scene in real time, redrawing every property on each frame.

Keys:
  r   restart the scene
  c   cancel every running animation
  q   quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			m, err := preview.New(sc, fps)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().Float64Var(&fps, "fps", 60, "frames per second")
	return cmd
}
