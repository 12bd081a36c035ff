/*
PURPOSE:
  Defines the 'run' subcommand.
  Benchmarks the built-in solvers and prints the results table.

REQUIREMENTS:
  User-specified:
  - Run the benchmarks.
  - Flags to narrow which solvers run.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: table.Run, table.Fprint
  - Uses: internal/config, internal/solvers

ERROR HANDLING:
  - Returns error if config load fails or the table cannot be written.

IMPLEMENTATION RULES:
  - Logic: Load Config -> Override -> table.Run -> table.Fprint.
  - The table goes to the command's output stream; logs go to stderr.

USAGE:
  forest-bench run --exclude recursive

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go
  - table/runner.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/forest-bench/internal/output"
	"github.com/daryltucker/forest-bench/internal/solvers"
	"github.com/daryltucker/forest-bench/table"
)

var (
	includeOverride []string
	excludeOverride []string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the solvers and print the results table",
	Long: `Executes every row of every selected solver exactly once, in order,
and prints one table with a row per solver variant. Times are wall-clock
milliseconds measured around the computation only.

Solvers are selected by name: --include keeps only matching solvers,
--exclude drops matching ones. Both match case-insensitive substrings.`,
	Example: `  # Run with defaults (uses forest_bench.yaml if present)
  forest-bench run

  # Only the Fibonacci solvers
  forest-bench run --include fibonacci

  # Everything but the exponential solver
  forest-bench run --exclude recursive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// 2. Overrides
		if len(includeOverride) > 0 {
			cfg.Include = includeOverride
		}
		if len(excludeOverride) > 0 {
			cfg.Exclude = excludeOverride
		}

		// 3. Execution
		all := solvers.Default(cfg)
		keep := func(s solvers.Named) bool {
			ok := cfg.Keep(s.Name())
			if !ok {
				output.Logger.Info("Skipping solver (filtered)", "solver", s.Name())
			}
			return ok
		}
		output.Logger.Info("Running solvers", "count", len(all))
		rows, widths := table.Run(solvers.Headers, all, keep)
		output.Logger.Info("Run complete", "rows", len(rows))

		return table.Fprint(cmd.OutOrStdout(), solvers.Headers, rows, widths)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringSliceVar(&includeOverride, "include", nil, "Comma-separated list of substrings; only matching solvers run")
	runCmd.Flags().StringSliceVar(&excludeOverride, "exclude", nil, "Comma-separated list of substrings to exclude from solver names")
}
