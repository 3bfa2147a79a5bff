package config

import (
	"fmt"
	"path/filepath"
	"strings"

	internal "github.com/ZanzyTHEbar/layout-search/cosearch"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Bench  BenchConfig  `mapstructure:"bench"`
	Layout LayoutConfig `mapstructure:"layout"`
	Verify VerifyConfig `mapstructure:"verify"`
	Log    LogConfig    `mapstructure:"log"`
}

// BenchConfig stores the benchmark run settings.
type BenchConfig struct {
	SpaceSize   int    `mapstructure:"spaceSize"`
	Repetitions int    `mapstructure:"repetitions"`
	Algorithm   string `mapstructure:"algorithm"`
	Seed        uint64 `mapstructure:"seed"`
	ReportPath  string `mapstructure:"reportPath"`
	MetricsAddr string `mapstructure:"metricsAddr"`
}

// LayoutConfig stores the geometry baked into prepared search spaces.
type LayoutConfig struct {
	LeadinSize  int `mapstructure:"leadinSize"`
	Log2Subsize int `mapstructure:"log2Subsize"`
	Alignment   int `mapstructure:"alignment"`
}

// VerifyConfig stores the consistency verification range.
type VerifyConfig struct {
	MinSize int  `mapstructure:"minSize"`
	MaxSize int  `mapstructure:"maxSize"`
	Workers int  `mapstructure:"workers"` // 0 selects the number of CPUs
	Skip    bool `mapstructure:"skip"`
}

// LogConfig stores logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads configuration from file or environment variables.
// Every call uses a fresh viper instance so repeated loads do not leak state.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("..")
		v.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		v.AddConfigPath(internal.DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("bench.spaceSize", internal.DefaultSpaceSize)
	v.SetDefault("bench.repetitions", internal.DefaultRepetitions)
	v.SetDefault("bench.algorithm", internal.DefaultAlgorithm)
	v.SetDefault("bench.seed", internal.DefaultSeed)
	v.SetDefault("bench.reportPath", "")
	v.SetDefault("bench.metricsAddr", "")

	v.SetDefault("layout.leadinSize", internal.DefaultLeadinSize)
	v.SetDefault("layout.log2Subsize", internal.DefaultLog2Subsize)
	v.SetDefault("layout.alignment", internal.DefaultAlignment)

	v.SetDefault("verify.minSize", internal.DefaultVerifyMinSize)
	v.SetDefault("verify.maxSize", internal.DefaultVerifyMaxSize)
	v.SetDefault("verify.workers", 0)
	v.SetDefault("verify.skip", false)

	v.SetDefault("log.level", internal.DefaultLogLevel)

	v.SetEnvPrefix(strings.ToUpper(internal.DefaultAppName))
	v.AutomaticEnv()                                   // Read in environment variables that match
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // layout.leadinSize becomes COSEARCH_LAYOUT_LEADINSIZE

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; defaults will be used.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that cannot be fixed up later by the driver.
func (c *Config) Validate() error {
	if c.Bench.SpaceSize <= 0 {
		return fmt.Errorf("bench.spaceSize must be positive, got %d", c.Bench.SpaceSize)
	}
	if c.Bench.Repetitions <= 0 {
		return fmt.Errorf("bench.repetitions must be positive, got %d", c.Bench.Repetitions)
	}
	if c.Layout.LeadinSize < 2 {
		return fmt.Errorf("layout.leadinSize must be at least 2, got %d", c.Layout.LeadinSize)
	}
	if c.Layout.Log2Subsize < 1 {
		return fmt.Errorf("layout.log2Subsize must be at least 1, got %d", c.Layout.Log2Subsize)
	}
	if c.Layout.Alignment <= 0 || c.Layout.Alignment&(c.Layout.Alignment-1) != 0 {
		return fmt.Errorf("layout.alignment must be a power of two, got %d", c.Layout.Alignment)
	}
	if c.Verify.MinSize > c.Verify.MaxSize {
		return fmt.Errorf("verify.minSize %d exceeds verify.maxSize %d", c.Verify.MinSize, c.Verify.MaxSize)
	}
	return nil
}
