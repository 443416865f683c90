package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile    string
	logLevel   string
	logFormat  string
	randomSeed int64
)

var rootCmd = &cobra.Command{
	Use:   "goanonym",
	Short: "Privacy-preserving transformations for a MySQL patient table",
	Long: `A CLI tool demonstrating textbook privacy-preserving transformations
against a MySQL table of synthetic patient records.

Transformations:
  - Pseudonymization via a deterministic one-way hash token
  - Threshold suppression with a sentinel value
  - Bounded uniform perturbation of numeric columns
  - K-anonymity generalization with separate k-anonymity / l-diversity checks
  - Social graph edge perturbation
  - Location dummy generation`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "goanonym.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Random source
	rootCmd.PersistentFlags().Int64Var(&randomSeed, "seed", 0,
		"Seed for random transforms (0 uses the current time)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// GetRandomSeed returns the seed for random transforms. When the flag is
// unset, a time-based seed is used so repeated runs differ.
func GetRandomSeed() int64 {
	if randomSeed != 0 {
		return randomSeed
	}
	return time.Now().UnixNano()
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}
}
