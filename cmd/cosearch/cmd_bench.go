package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/layout-search/cosearch/alloc"
	"github.com/ZanzyTHEbar/layout-search/cosearch/bench"
	"github.com/ZanzyTHEbar/layout-search/cosearch/sample"
	"github.com/ZanzyTHEbar/layout-search/cosearch/verify"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		algs        []string
		spaceSize   int
		reps        int
		seed        uint64
		batches     int
		reportPath  string
		metricsAddr string
		skipVerify  bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time random lookups against a prepared search space",
		Long: `bench generates a sorted space of the configured size, lays it out for
the selected algorithm, verifies it and then times the configured number of
searches for uniformly random keys.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bc := &a.cfg.Bench
			if cmd.Flags().Changed("space-size") {
				bc.SpaceSize = spaceSize
			}
			if cmd.Flags().Changed("reps") {
				bc.Repetitions = reps
			}
			if cmd.Flags().Changed("seed") {
				bc.Seed = seed
			}
			if cmd.Flags().Changed("report") {
				bc.ReportPath = reportPath
			}
			if cmd.Flags().Changed("metrics-addr") {
				bc.MetricsAddr = metricsAddr
			}
			if cmd.Flags().Changed("skip-verify") {
				a.cfg.Verify.Skip = skipVerify
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			selected, err := parseAlgorithms(algs, bc.Algorithm)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			metrics, err := bench.NewMetrics(reg)
			if err != nil {
				return err
			}

			var srv *http.Server
			if bc.MetricsAddr != "" {
				srv = serveMetrics(a, reg, bc.MetricsAddr)
				defer shutdown(srv)
			}

			v := verify.New(a.geometry(),
				verify.WithWorkers(a.cfg.Verify.Workers),
				verify.WithAllocator(alloc.Allocator[sample.Item](a.cfg.Layout.Alignment)),
				verify.WithLogger(a.logger),
			)
			runner := bench.NewRunner(v, metrics, a.logger)

			results := make([]*bench.Result, 0, len(selected))
			for _, alg := range selected {
				res, err := runner.Run(cmd.Context(), bench.Options{
					Algorithm:   alg,
					SpaceSize:   bc.SpaceSize,
					Repetitions: bc.Repetitions,
					Seed:        bc.Seed,
					Geometry:    a.geometry(),
					Alignment:   a.cfg.Layout.Alignment,
					Batches:     batches,
					VerifyMin:   a.cfg.Verify.MinSize,
					VerifyMax:   a.cfg.Verify.MaxSize,
					SkipVerify:  a.cfg.Verify.Skip,
				})
				if err != nil {
					return err
				}
				results = append(results, res)
			}

			if bc.ReportPath != "" {
				if err := bench.WriteReport(bc.ReportPath, results...); err != nil {
					return err
				}
				a.logger.Info().Str("path", bc.ReportPath).Msg("report written")
			}

			if srv != nil {
				a.logger.Info().Str("addr", bc.MetricsAddr).Msg("serving metrics until interrupted")
				<-cmd.Context().Done()
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&algs, "alg", nil, "algorithms by name or alt number, or \"all\" (default from config)")
	cmd.Flags().IntVar(&spaceSize, "space-size", 0, "number of items in the search space (default from config)")
	cmd.Flags().IntVar(&reps, "reps", 0, "number of timed searches (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed of the random key sample (default from config)")
	cmd.Flags().IntVar(&batches, "batches", bench.DefaultBatches, "timed slices used for the latency statistics")
	cmd.Flags().StringVar(&reportPath, "report", "", "write a YAML report to this path")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address, e.g. :9090")
	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "skip the size range verification before timing")
	return cmd
}

func serveMetrics(a *app, reg *prometheus.Registry, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
		}
	}()
	return srv
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
