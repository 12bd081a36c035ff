package table

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/forest-bench/solver"
)

func TestFprint_TwoSolverScenario(t *testing.T) {
	first := &fakeSolver{rows: []fakeRow{{labels: []string{"1"}, solution: solver.I32(42), duration: 7000 * time.Microsecond}}}
	second := &fakeSolver{rows: []fakeRow{{labels: []string{"A"}, solution: solver.Text("done"), duration: 500000 * time.Microsecond}}}
	headers := []string{"Case"}

	rows, widths := Run(headers, []*fakeSolver{first, second}, keepAll)
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, headers, rows, widths))

	h := func(n int) string { return strings.Repeat("═", n) }
	d := func(n int) string { return strings.Repeat("─", n) }
	sp := func(n int) string { return strings.Repeat(" ", n) }
	want := strings.Join([]string{
		"╔═" + h(4) + "═╤═" + h(8) + "═╤═" + h(9) + "═╗",
		"║ Case │ Solution │ Time (ms) ║",
		"╟─" + d(4) + "─┼─" + d(8) + "─┼─" + d(9) + "─╢",
		"║ " + sp(3) + "1 │ " + sp(6) + "42 │ " + sp(4) + "7.000 ║",
		"║ " + sp(4) + " │ " + sp(8) + " │ " + sp(9) + " ║",
		"║ A" + sp(3) + " │ " + sp(4) + "done │ " + sp(2) + "500.000 ║",
		"╚═" + h(4) + "═╧═" + h(8) + "═╧═" + h(9) + "═╝",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestFprint_AlignmentRules(t *testing.T) {
	widths := MaxLength{Labels: []int{6, 6}, Solution: 8, Time: 9}
	rows := []RowFormat{{Labels: []string{"42", "Case A"}, Solution: "x", Time: "1.000"}}

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, []string{"Num", "Name"}, rows, widths))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "║ Num    │ Name   │ Solution │ Time (ms) ║", lines[1])
	assert.Equal(t, "║     42 │ Case A │        x │     1.000 ║", lines[3])
}

func TestFprint_MixedLabelsAreNotNumeric(t *testing.T) {
	widths := MaxLength{Labels: []int{4}, Solution: 8, Time: 9}
	rows := []RowFormat{
		{Labels: []string{"12a"}, Solution: "1", Time: "0.001"},
		{Labels: []string{"-1"}, Solution: "1", Time: "0.001"},
		{Labels: []string{"١٢"}, Solution: "1", Time: "0.001"},
	}

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, []string{"Case"}, rows, widths))

	lines := strings.Split(buf.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[3], "║ 12a  │"))
	assert.True(t, strings.HasPrefix(lines[4], "║ -1   │"))
	assert.True(t, strings.HasPrefix(lines[5], "║ ١٢   │"), "non-ASCII digits are text")
}

func TestFprint_DataRowsRoundTrip(t *testing.T) {
	s := &fakeSolver{rows: []fakeRow{
		{labels: []string{"2023", "Day one"}, solution: solver.U64(18446744073709551615), duration: time.Millisecond},
		{labels: []string{"7", "ß"}, solution: solver.Text("0042"), duration: 3 * time.Microsecond},
	}}
	headers := []string{"Year", "Puzzle"}
	rows, widths := Run(headers, []*fakeSolver{s}, keepAll)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, headers, rows, widths))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	data := lines[3 : len(lines)-1]
	require.Len(t, data, len(rows))
	for i, line := range data {
		line = strings.TrimSuffix(strings.TrimPrefix(line, "║"), "║")
		cells := strings.Split(line, "│")
		require.Len(t, cells, len(headers)+2)
		for j := range headers {
			assert.Equal(t, rows[i].Labels[j], strings.TrimSpace(cells[j]))
		}
		assert.Equal(t, rows[i].Solution, strings.TrimSpace(cells[len(headers)]))
		assert.Equal(t, rows[i].Time, strings.TrimSpace(cells[len(headers)+1]))
	}
}

func TestFprint_NoRows(t *testing.T) {
	rows, widths := Run([]string{"Case"}, []*fakeSolver{}, keepAll)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, []string{"Case"}, rows, widths))

	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFprint_ReturnsWriteError(t *testing.T) {
	rows, widths := Run([]string{"Case"}, []*fakeSolver{}, keepAll)

	err := Fprint(failingWriter{}, []string{"Case"}, rows, widths)

	assert.EqualError(t, err, "disk full")
}

// captureStdout runs fn with os.Stdout redirected and returns what was
// written along with any value fn panicked with.
func captureStdout(t *testing.T, fn func()) (string, any) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = orig })

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	os.Stdout = orig
	require.NoError(t, w.Close())
	written, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return string(written), recovered
}

func TestCreateResultsTable_PrintsToStdout(t *testing.T) {
	s := &fakeSolver{rows: []fakeRow{{labels: []string{"1"}, solution: solver.Text("done"), duration: time.Millisecond}}}

	out, recovered := captureStdout(t, func() {
		require.NoError(t, CreateResultsTable([]string{"Case"}, []*fakeSolver{s}, keepAll))
	})

	require.Nil(t, recovered)
	assert.Contains(t, out, "║    1 │     done │     1.000 ║\n")
	assert.Equal(t, 5, strings.Count(out, "\n"))
}

func TestCreateResultsTable_PanicsBeforeOutput(t *testing.T) {
	good := &fakeSolver{rows: []fakeRow{{labels: []string{"1"}, solution: solver.U8(1)}}}
	bad := &fakeSolver{rows: []fakeRow{{labels: []string{"1", "2"}, solution: solver.U8(1)}}}

	out, recovered := captureStdout(t, func() {
		_ = CreateResultsTable([]string{"Case"}, []*fakeSolver{good, bad}, keepAll)
	})

	require.IsType(t, &LabelCountError{}, recovered)
	assert.Equal(t, &LabelCountError{Row: 0, Expected: 1, Actual: 2}, recovered)
	assert.Empty(t, out, "nothing is printed when a solver breaks the label contract")
	assert.Equal(t, []int{0}, good.executed)
	assert.Empty(t, bad.executed)
}

func TestFprint_WidthsMissingColumns(t *testing.T) {
	widths := MaxLength{Labels: []int{4}, Solution: 8, Time: 9}
	rows := []RowFormat{{Labels: []string{"7", "extra"}, Solution: "1", Time: "0.001"}}

	var buf bytes.Buffer
	require.NotPanics(t, func() {
		require.NoError(t, Fprint(&buf, []string{"Case", "Note"}, rows, widths))
	})

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "║ Case │ Note │ Solution │ Time (ms) ║", lines[1])
	assert.Equal(t, "║    7 │ extra │        1 │     0.001 ║", lines[3])
}
