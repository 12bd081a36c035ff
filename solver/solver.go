/*
PURPOSE:
  Defines the Solver contract every benchmarked unit implements and the
  Result record one row execution produces.

REQUIREMENTS:
  User-specified:
  - A solver reports its row count, labels per row, and executes a row.
  - The reported time covers the computation only.

  Implementation-discovered:
  - Most solvers time themselves the same way, so Measure wraps it.

ARCHITECTURE INTEGRATION:
  - Implemented by: internal/solvers, library callers
  - Consumed by: table.Run

ERROR HANDLING:
  - None. Execute is trusted to return; label counts are checked by table.Run.

IMPLEMENTATION RULES:
  - No shared mutable state between solver instances.
  - Build labels outside the timed function.

USAGE:
  func (s *MySolver) Execute(row int) solver.Result {
      return solver.Measure(func() solver.Solution { return solver.U32(s.solve(row)) })
  }

SELF-HEALING INSTRUCTIONS:
  - If times look inflated, check that Labels work is not inside Measure.

RELATED FILES:
  - solver/solution.go
  - table/runner.go

MAINTENANCE:
  - Update table.Run together with any change to the Solver methods.
*/

package solver

import (
	"time"
)

// Solver is a unit under benchmark. Each of its rows is an independent
// variant with its own labels and timed solution.
type Solver interface {
	// RowCount returns the number of executable rows.
	RowCount() int
	// Labels returns the display labels for row. The table runner requires
	// exactly one label per configured header.
	Labels(row int) []string
	// Execute computes row and reports the time spent on the computation only.
	Execute(row int) Result
}

// Result is the outcome of executing one solver row.
type Result struct {
	Solution Solution
	Duration time.Duration
}

// Measure runs compute and times it. Work done before or after compute,
// such as building labels, is not included.
func Measure(compute func() Solution) Result {
	start := time.Now()
	s := compute()
	return Result{Solution: s, Duration: time.Since(start)}
}
