/*
PURPOSE:
  Defines the root Cobra command for the Forest Bench CLI.
  Handles global flags and shared config loading.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Both subcommands need the same config and log level, so loading lives here.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/forest-bench/main.go
  - Calls: Child commands (run, list)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init() and apply them in loadConfig().

RELATED FILES:
  - cmd/forest-bench/main.go
  - internal/config/config.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/forest-bench/internal/config"
	"github.com/daryltucker/forest-bench/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string
	// logLevel overrides log_level from the config file
	logLevel string

	rootCmd = &cobra.Command{
		Use:           "forest-bench",
		Short:         "Benchmark solvers and print a results table",
		Long:          `Runs each built-in solver row once, times it, and prints a box-drawn table of solutions and times. Use 'run --help' for options.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./forest_bench.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}

// loadConfig loads the config file and applies the log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	lvl, err := output.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	output.SetLevel(lvl)
	return cfg, nil
}
