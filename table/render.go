/*
PURPOSE:
  Prints collected rows as a box-drawn, column-aligned results table.

REQUIREMENTS:
  User-specified:
  - Fixed Unicode box glyphs for borders and separators.
  - Digit-only labels right-aligned, other labels left-aligned.
  - Solution and time columns always right-aligned.

  Implementation-discovered:
  - Writing through an io.Writer keeps the CLI and tests off os.Stdout.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli, library callers
  - Consumes: table.Run output

ERROR HANDLING:
  - Returns the first write error, reported by bufio.Writer on Flush.
  - Missing or too-small widths mean no padding, never a panic.

IMPLEMENTATION RULES:
  - One writeRow routine for borders, header and data lines.
  - Pure, single pass; no state kept between calls.

USAGE:
  err := table.CreateResultsTable(headers, solvers, keep)

SELF-HEALING INSTRUCTIONS:
  - If borders and rows differ in length, compare the pad glyph widths with
    the separator pieces in the border sets.

RELATED FILES:
  - table/runner.go

MAINTENANCE:
  - The glyph sets are fixed; change all four together if ever needed.
*/

package table

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/daryltucker/forest-bench/solver"
)

// border is one set of box-drawing pieces used by writeRow.
type border struct {
	start, sep, end, pad string
}

var (
	topBorder     = border{"╔═", "═╤═", "═╗", "═"}
	contentBorder = border{"║ ", " │ ", " ║", " "}
	dividerBorder = border{"╟─", "─┼─", "─╢", "─"}
	bottomBorder  = border{"╚═", "═╧═", "═╝", "═"}
)

// CreateResultsTable benchmarks the solvers accepted by keep and prints the
// results table to standard output. Nothing is printed if a solver violates
// the label contract; see Run.
func CreateResultsTable[T solver.Solver](headers []string, solvers []T, keep func(T) bool) error {
	rows, widths := Run(headers, solvers, keep)
	return Print(headers, rows, widths)
}

// Print writes the results table to standard output.
func Print(headers []string, rows []RowFormat, widths MaxLength) error {
	return Fprint(os.Stdout, headers, rows, widths)
}

// Fprint writes the results table to w: top border, header, divider, one
// line per row and the bottom border.
func Fprint(w io.Writer, headers []string, rows []RowFormat, widths MaxLength) error {
	bw := bufio.NewWriter(w)
	empty := make([]string, len(headers))

	writeRow(bw, empty, "", "", widths, topBorder)
	writeRow(bw, headers, SolutionTitle, TimeTitle, widths, contentBorder)
	writeRow(bw, empty, "", "", widths, dividerBorder)
	for _, r := range rows {
		writeRow(bw, r.Labels, r.Solution, r.Time, widths, contentBorder)
	}
	writeRow(bw, empty, "", "", widths, bottomBorder)

	return bw.Flush()
}

func writeRow(w *bufio.Writer, labels []string, sol, elapsed string, widths MaxLength, b border) {
	var sb strings.Builder
	sb.WriteString(b.start)
	for i, label := range labels {
		padding := fill(b.pad, widths.label(i), label)
		// Numeric labels are right-aligned, everything else left-aligned.
		if isDigits(label) {
			sb.WriteString(padding)
			sb.WriteString(label)
		} else {
			sb.WriteString(label)
			sb.WriteString(padding)
		}
		sb.WriteString(b.sep)
	}
	sb.WriteString(fill(b.pad, widths.Solution, sol))
	sb.WriteString(sol)
	sb.WriteString(b.sep)
	sb.WriteString(fill(b.pad, widths.Time, elapsed))
	sb.WriteString(elapsed)
	sb.WriteString(b.end)
	sb.WriteByte('\n')

	// bufio.Writer keeps the first error and reports it from Flush.
	_, _ = w.WriteString(sb.String())
}

// label returns the width of label column i, or 0 for a column widths does
// not cover.
func (m MaxLength) label(i int) int {
	if i < len(m.Labels) {
		return m.Labels[i]
	}
	return 0
}

// fill returns the padding that widens value to width. Values already wider
// than width get none.
func fill(pad string, width int, value string) string {
	return strings.Repeat(pad, max(width-utf8.RuneCountInString(value), 0))
}

// isDigits reports whether s contains only ASCII digits. The empty string
// qualifies.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
