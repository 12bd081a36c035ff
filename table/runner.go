/*
PURPOSE:
  Runs every selected solver row once and collects display-ready rows plus
  the column widths needed to align them.

REQUIREMENTS:
  User-specified:
  - Skip solvers rejected by the caller's predicate.
  - Blank row between solvers, never before the first one.
  - Times shown in milliseconds with three fractional digits.

  Implementation-discovered:
  - Widths are code point counts, seeded from the header titles.

ARCHITECTURE INTEGRATION:
  - Called by: CreateResultsTable, internal/cli
  - Uses: solver, internal/output

ERROR HANDLING:
  - A solver returning the wrong number of labels is a wiring bug, not a
    data condition: Run panics with *LabelCountError before anything is
    printed.

IMPLEMENTATION RULES:
  - Strictly sequential, input order, row by row.
  - Each row executed exactly once.

USAGE:
  rows, widths := table.Run(headers, solvers, keep)
  table.Print(headers, rows, widths)

SELF-HEALING INSTRUCTIONS:
  - If columns drift out of alignment, check that every width update uses
    utf8.RuneCountInString, not len().
  - If rows show the wrong labels, check that Run still clones each label slice.

RELATED FILES:
  - table/render.go
  - solver/solver.go

MAINTENANCE:
  - Update FormatDuration if the time column unit changes.
*/

package table

import (
	"fmt"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/daryltucker/forest-bench/internal/output"
	"github.com/daryltucker/forest-bench/solver"
)

const (
	SolutionTitle = "Solution"
	TimeTitle     = "Time (ms)"
)

// RowFormat is one display-ready table row. A spacer row has every field empty.
type RowFormat struct {
	Labels   []string
	Solution string
	Time     string
}

// IsSpacer reports whether r is a blank separator row.
func (r RowFormat) IsSpacer() bool {
	if r.Solution != "" || r.Time != "" {
		return false
	}
	for _, l := range r.Labels {
		if l != "" {
			return false
		}
	}
	return true
}

// MaxLength holds the widest value seen in each column.
type MaxLength struct {
	Labels   []int
	Solution int
	Time     int
}

// LabelCountError reports a solver row whose labels do not line up with the
// table headers.
type LabelCountError struct {
	Row      int
	Expected int
	Actual   int
}

func (e *LabelCountError) Error() string {
	return fmt.Sprintf("solver row %d returned %d labels, but the table has %d label headers: solvers must provide exactly one label per header",
		e.Row, e.Actual, e.Expected)
}

// Run executes every row of each solver accepted by keep and returns the
// formatted rows with the final column widths. A nil keep accepts all solvers.
//
// Run panics with *LabelCountError if a solver's labels do not match headers.
func Run[T solver.Solver](headers []string, solvers []T, keep func(T) bool) ([]RowFormat, MaxLength) {
	rows := make([]RowFormat, 0, len(solvers)*3)
	widths := MaxLength{
		Labels:   make([]int, len(headers)),
		Solution: utf8.RuneCountInString(SolutionTitle),
		Time:     utf8.RuneCountInString(TimeTitle),
	}
	for i, h := range headers {
		widths.Labels[i] = utf8.RuneCountInString(h)
	}

	first := true
	for i, s := range solvers {
		if keep != nil && !keep(s) {
			output.Logger.Debug("Skipping solver (filtered)", "index", i)
			continue
		}

		if first {
			first = false
		} else {
			rows = append(rows, RowFormat{Labels: make([]string, len(headers))})
		}

		for row, n := 0, s.RowCount(); row < n; row++ {
			// Solvers may reuse their label buffer between calls.
			labels := slices.Clone(s.Labels(row))
			if len(labels) != len(headers) {
				panic(&LabelCountError{Row: row, Expected: len(headers), Actual: len(labels)})
			}
			for col, label := range labels {
				widths.Labels[col] = max(widths.Labels[col], utf8.RuneCountInString(label))
			}

			res := s.Execute(row)
			sol := solver.Display(res.Solution)
			elapsed := FormatDuration(res.Duration)

			widths.Solution = max(widths.Solution, utf8.RuneCountInString(sol))
			widths.Time = max(widths.Time, utf8.RuneCountInString(elapsed))

			output.Logger.Debug("Executed row",
				"index", i,
				"row", row,
				"labels", labels,
				"solution", sol,
				"duration", res.Duration,
			)

			rows = append(rows, RowFormat{Labels: labels, Solution: sol, Time: elapsed})
		}
	}

	return rows, widths
}

// FormatDuration renders d as milliseconds with exactly three fractional
// digits, truncated to whole microseconds: 7µs is "0.007", 123456µs is
// "123.456". Negative durations render as "0.000".
func FormatDuration(d time.Duration) string {
	us := max(d.Microseconds(), 0)
	s := fmt.Sprintf("%04d", us)
	return s[:len(s)-3] + "." + s[len(s)-3:]
}
