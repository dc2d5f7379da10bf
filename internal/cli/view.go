package cli

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/zoomer/ebitenview"
)

func newViewCmd() *cobra.Command {
	s := defaultSession()
	var (
		scale   int
		showFPS bool
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Explore a fractal in a window",
		Long: `Open a resizable window. Left button zooms in, right button zooms out,
middle button (or left and right together) drags, the wheel zooms.
Keys: r reset, s symmetry, g solid guessing, i incremental, p screenshot,
f FPS overlay, q or Esc quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.resolve(cmd); err != nil {
				return err
			}
			// The window is sized to the session; the canvas follows it.
			winW, winH := s.width, s.height
			s.width, s.height = max(winW/max(scale, 1), 1), max(winH/max(scale, 1), 1)
			z, err := s.build()
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("starting view", "preset", s.preset, "scale", scale)
			return ebitenview.Run(z, ebitenview.RunConfig{
				Title:   "zoomer: " + s.preset,
				Width:   winW,
				Height:  winH,
				Scale:   scale,
				ShowFPS: showFPS,
			})
		},
	}

	s.bind(cmd)
	cmd.Flags().IntVar(&scale, "scale", 1, "window pixels per canvas pixel")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show the FPS overlay")
	return cmd
}
