package main

import (
	"fmt"

	"github.com/ZanzyTHEbar/layout-search/cosearch/alloc"
	"github.com/ZanzyTHEbar/layout-search/cosearch/sample"
	"github.com/ZanzyTHEbar/layout-search/cosearch/verify"

	"github.com/spf13/cobra"
)

func newVerifyCmd(a *app) *cobra.Command {
	var (
		algs      []string
		minSize   int
		maxSize   int
		spaceSize int
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every algorithm finds every item over a range of space sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("min") {
				a.cfg.Verify.MinSize = minSize
			}
			if cmd.Flags().Changed("max") {
				a.cfg.Verify.MaxSize = maxSize
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Verify.Workers = workers
			}

			selected, err := parseAlgorithms(algs, "all")
			if err != nil {
				return err
			}

			v := verify.New(a.geometry(),
				verify.WithWorkers(a.cfg.Verify.Workers),
				verify.WithAllocator(alloc.Allocator[sample.Item](a.cfg.Layout.Alignment)),
				verify.WithLogger(a.logger),
			)

			for _, alg := range selected {
				if _, err := v.Range(cmd.Context(), alg, a.cfg.Verify.MinSize, a.cfg.Verify.MaxSize); err != nil {
					return err
				}
				if spaceSize > 0 {
					r, err := v.Size(alg, spaceSize)
					if err != nil {
						return err
					}
					if !r.OK() {
						return fmt.Errorf("%v at size %d: %w", alg, spaceSize, verify.ErrInconsistent)
					}
				}
			}

			a.logger.Info().Int("algorithms", len(selected)).Msg("verification passed")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&algs, "alg", nil, "algorithms to verify by name or alt number, or \"all\" (default all)")
	cmd.Flags().IntVar(&minSize, "min", 0, "smallest space size to verify (default from config)")
	cmd.Flags().IntVar(&maxSize, "max", 0, "largest space size to verify (default from config)")
	cmd.Flags().IntVar(&spaceSize, "space-size", 0, "additionally verify this single space size")
	cmd.Flags().IntVar(&workers, "workers", 0, "sizes verified in parallel, 0 for one per CPU")
	return cmd
}
