// Package cmd implements the motion CLI commands.
//
// Commands
//
//   - play      Run a scene headlessly on a fixed frame rate and print values
//   - preview   Run a scene live in the terminal
//   - curves    List the built-in curves or plot one
package cmd

import (
	"github.com/spf13/cobra"

	motionerrors "github.com/go-drift/motion/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var verbose bool

// NewRootCommand returns the motion command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "motion",
		Short: "Property animation scenes from the command line",
		Long: `motion runs animation scenes described in YAML.

A scene declares named properties and a tree of animations over them.
Use "motion play" for a deterministic, frame-by-frame dump and
"motion preview" to watch it in the terminal.

Use "motion <command> --help" for more information about a command.`,
		Version:       Version + " (built " + BuildTime + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			motionerrors.SetHandler(&motionerrors.LogHandler{Verbose: verbose})
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report errors with timestamps and stack traces")

	root.AddCommand(playCmd(), previewCmd(), curvesCmd())
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}
