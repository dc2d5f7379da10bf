package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/zoomer"
	"github.com/phanxgames/zoomer/termview"
)

func newTermCmd() *cobra.Command {
	s := defaultSession()
	var logFile string

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Explore a fractal in the terminal",
		Long: `Draw the fractal with half-block characters, two pixels per cell.
Arrows pan, + and - zoom, mouse buttons zoom and the wheel zooms.
Keys: r reset, s symmetry, g solid guessing, i incremental, q or Esc quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.resolve(cmd); err != nil {
				return err
			}
			// Log output would tear the screen; send it to a file or drop it.
			if logFile == "" {
				zoomer.SetLogger(nil)
			} else {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				level := loggerFromContext(cmd.Context()).GetLevel()
				zoomer.SetLogger(slog.New(newLogger(f, level)))
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("terminal: %w", err)
			}
			defer screen.Fini()

			z, err := s.build()
			if err != nil {
				return err
			}
			v, err := termview.New(z, screen)
			if err != nil {
				return err
			}
			if err := v.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	s.bind(cmd)
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the terminal is in use")
	return cmd
}
