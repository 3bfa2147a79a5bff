package internal

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// DefaultAppName is used for the config directory and the CLI name
	DefaultAppName          = "cosearch"
	DefaultConfigPath       = filepath.Join(getHomeDir(), ".config", DefaultAppName)
	DefaultGlobalConfigFile = filepath.Join(DefaultConfigPath, "config.yaml")

	// Default benchmark settings
	DefaultSpaceSize   = 2000
	DefaultRepetitions = 10_000_000
	DefaultAlgorithm   = "bsearch_standard"
	DefaultSeed        = uint64(1)

	// Default layout geometry
	DefaultLeadinSize  = 16   // bins used by the binned searches
	DefaultLog2Subsize = 4    // depth of a single tree in the VEB forest
	DefaultAlignment   = 4096 // search space address alignment

	// Default verification range
	DefaultVerifyMinSize = 64
	DefaultVerifyMaxSize = 2048

	DefaultLogLevel = "info"
)

func getHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current working directory if home directory is unavailable
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			log.Printf("Unable to get home or working directory, using /tmp: %v", err)
			return "/tmp"
		}
		log.Printf("Unable to get home directory, using current working directory: %v", err)
		return cwd
	}
	return homeDir
}

// GetLogger returns a properly configured zerolog logger instance
func GetLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// SetLogLevel sets the global zerolog level from its textual name.
// Unknown names fall back to info.
func SetLogLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return lvl
}
