/*
PURPOSE:
  Defines the 'list' subcommand.
  Shows which solvers exist and how many rows each would run.

REQUIREMENTS:
  User-specified:
  - List available solvers.

  Implementation-discovered:
  - Useful for picking --include/--exclude values before a full run.

ARCHITECTURE INTEGRATION:
  - Calls: internal/solvers.Default()

ERROR HANDLING:
  - Returns config load errors.

IMPLEMENTATION RULES:
  - Simple output to the command's output stream.
  - Mark filtered solvers with [x] so --include/--exclude can be checked.

USAGE:
  forest-bench list

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/solvers/solvers.go
  - internal/config/config.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/forest-bench/internal/solvers"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in solvers and their row counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, s := range solvers.Default(cfg) {
			mark := " "
			if !cfg.Keep(s.Name()) {
				mark = "x"
			}
			fmt.Fprintf(out, "[%s] %s (%d rows)\n", mark, s.Name(), s.RowCount())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
