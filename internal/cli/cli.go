// Package cli implements the zoomer command-line interface.
//
// # Commands
//
//   - view: open an interactive window (ebiten)
//   - term: explore in the terminal with half-block cells (tcell)
//   - render: run a session headless and write a PNG
//   - presets: list the built-in fractals
//
// All commands accept --verbose (-v) for debug logging and --config for a
// TOML settings file. The charm logger travels in the command context and
// is installed as the engine's slog handler.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the zoomer CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "zoomer",
		Short:        "Zoomer explores escape-time fractals in real time",
		Long:         `Zoomer is an incremental fractal zoomer: each frame reuses the rows and columns of the previous one and only computes what moved into view.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			installEngineLogger(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("zoomer %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newViewCmd())
	root.AddCommand(newTermCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newPresetsCmd())

	return root
}
