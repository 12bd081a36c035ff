package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cfgFile, logLevel = "", ""
		includeOverride, excludeOverride = nil, nil
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forest_bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_PrintsTableForSelectedSolvers(t *testing.T) {
	path := writeConfig(t, "fibonacci: [10, 90]\nrecursive: [5]\nprimes: [100]\ncollatz: [10]\n")

	out, err := execute(t, "run", "--config", path, "--exclude", "recursive,collatz")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// top, header, divider, 2 fib rows, spacer, 1 sieve row, bottom
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "╔═"))
	assert.Contains(t, lines[1], "Solver")
	assert.Contains(t, lines[1], "Time (ms)")
	assert.Contains(t, lines[3], "Fibonacci (iterative)")
	assert.Contains(t, lines[4], "2880067194370816120")
	assert.Contains(t, lines[6], "Prime sieve")
	assert.Contains(t, lines[6], " 25 │")
	assert.NotContains(t, out, "recursive")
	assert.NotContains(t, out, "Collatz")
}

func TestRun_InvalidLogLevel(t *testing.T) {
	path := writeConfig(t, "primes: [10]\n")

	_, err := execute(t, "run", "--config", path, "--log-level", "chatty")

	assert.ErrorContains(t, err, "unknown log level")
}

func TestList(t *testing.T) {
	path := writeConfig(t, "exclude: [sieve]\nrecursive: []\n")

	out, err := execute(t, "list", "--config", path)

	require.NoError(t, err)
	assert.Equal(t, "[ ] Fibonacci (iterative) (3 rows)\n[x] Prime sieve (3 rows)\n[ ] Collatz (2 rows)\n", out)
}
