package main

import (
	internal "github.com/ZanzyTHEbar/layout-search/cosearch"
	"github.com/ZanzyTHEbar/layout-search/cosearch/config"
	"github.com/ZanzyTHEbar/layout-search/cosearch/indexing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries the state shared by the subcommands once the root command
// has loaded the configuration.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger zerolog.Logger
}

func (a *app) geometry() indexing.Geometry {
	return indexing.Geometry{
		LeadinSize:  a.cfg.Layout.LeadinSize,
		Log2Subsize: a.cfg.Layout.Log2Subsize,
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   internal.DefaultAppName,
		Short: "Search sorted arrays through cache-friendly memory layouts",
		Long: `cosearch verifies and benchmarks binary and linear searches over
standard, lead-in binned, breadth-first and Van Emde Boas layouts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			level := cfg.Log.Level
			if cmd.Flags().Changed("log-level") {
				level = a.logLevel
			}
			internal.SetLogLevel(level)
			a.logger = internal.GetLogger()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default searches ./config.yaml and "+internal.DefaultGlobalConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", internal.DefaultLogLevel, "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(
		newVerifyCmd(a),
		newBenchCmd(a),
		newMapCmd(a),
	)
	return rootCmd
}

// parseAlgorithms resolves names or alt numbers, falling back to def.
func parseAlgorithms(names []string, def string) ([]indexing.Algorithm, error) {
	if len(names) == 0 {
		names = []string{def}
	}
	if len(names) == 1 && names[0] == "all" {
		return indexing.Algorithms(), nil
	}
	out := make([]indexing.Algorithm, 0, len(names))
	for _, n := range names {
		alg, err := indexing.ParseAlgorithm(n)
		if err != nil {
			return nil, err
		}
		out = append(out, alg)
	}
	return out, nil
}
