package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/ZanzyTHEbar/layout-search/cosearch/indexing"

	"github.com/spf13/cobra"
)

func newMapCmd(a *app) *cobra.Command {
	var spaceSize int

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Print where each sorted position lands in the breadth-first layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if spaceSize < 2 || !indexing.IsPow2(spaceSize) {
				return fmt.Errorf("space size %d: %w", spaceSize, indexing.ErrNotPowerOfTwo)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "linear\tbreadth\tlevel")
			for pos := 0; pos < spaceSize-1; pos++ {
				b := indexing.BreadthFromLinear(spaceSize, pos)
				fmt.Fprintf(w, "%d\t%d\t%d\n", pos, b, indexing.BreadthLevel(b))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			a.logger.Debug().Int("spaceSize", spaceSize).Msg("mapping printed")
			return nil
		},
	}

	cmd.Flags().IntVar(&spaceSize, "space-size", 16, "power-of-two space size")
	return cmd
}
