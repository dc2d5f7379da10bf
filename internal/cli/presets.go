package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phanxgames/zoomer"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in fractals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := presetRows()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Preset", "Max iter", "Center", "Radius", "Mirrors"}, rows))
			return nil
		},
	}
}

func presetRows() ([][]string, error) {
	names := zoomer.Presets()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		p, err := zoomer.Preset(name)
		if err != nil {
			return nil, err
		}
		c := p.Region.Center
		rows = append(rows, []string{
			name,
			strconv.Itoa(p.MaxIter),
			fmt.Sprintf("%g, %g", c.X, c.Y),
			strconv.FormatFloat(p.Region.Radius.X, 'g', -1, 64),
			mirrors(p.Symmetry),
		})
	}
	return rows, nil
}

func mirrors(s zoomer.Symmetry) string {
	switch {
	case s.HasX && s.HasY:
		return fmt.Sprintf("re=%g, im=%g", s.X, s.Y)
	case s.HasX:
		return fmt.Sprintf("re=%g", s.X)
	case s.HasY:
		return fmt.Sprintf("im=%g", s.Y)
	}
	return "none"
}
