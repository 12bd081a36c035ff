/*
PURPOSE:
  Built-in solvers benchmarked by the forest-bench CLI.

REQUIREMENTS:
  User-specified:
  - Something real to time out of the box.

  Implementation-discovered:
  - Every solver labels its rows with its name and numeric input, matching
    Headers.
  - Solvers need a Name() so the include/exclude filters can select them.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: solver, internal/config

ERROR HANDLING:
  - None. Inputs are range-checked by config.Validate.

IMPLEMENTATION RULES:
  - Only the computation goes inside solver.Measure.
  - Solvers with no inputs are left out of Default.

USAGE:
  rows, widths := table.Run(solvers.Headers, solvers.Default(cfg), keep)

SELF-HEALING INSTRUCTIONS:
  - If the recursive Fibonacci row hangs, lower config.MaxRecursive.

RELATED FILES:
  - internal/config/config.go
  - internal/cli/run.go

MAINTENANCE:
  - Add new solvers to Default and give them config inputs.
*/

package solvers

import (
	"fmt"
	"strconv"

	"github.com/daryltucker/forest-bench/internal/config"
	"github.com/daryltucker/forest-bench/solver"
)

// Headers are the label columns shared by every built-in solver.
var Headers = []string{"Solver", "N"}

// Named is a solver that can be selected by name.
type Named interface {
	solver.Solver
	Name() string
}

// Default builds the built-in solvers from cfg, in display order. Solvers
// with no inputs are left out.
func Default(cfg *config.Config) []Named {
	all := []Named{
		&Fibonacci{Method: Iterative, Inputs: cfg.Fibonacci},
		&Fibonacci{Method: Recursive, Inputs: cfg.Recursive},
		&PrimeSieve{Inputs: cfg.Primes},
		&Collatz{Inputs: cfg.Collatz},
	}
	out := all[:0]
	for _, s := range all {
		if s.RowCount() > 0 {
			out = append(out, s)
		}
	}
	return out
}

func labels(name string, n int) []string {
	return []string{name, strconv.Itoa(n)}
}

// Method selects a Fibonacci algorithm.
type Method int

const (
	Iterative Method = iota
	Recursive
)

func (m Method) String() string {
	switch m {
	case Iterative:
		return "iterative"
	case Recursive:
		return "recursive"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Fibonacci computes F(n) for each input, with F(0) = 0 and F(1) = 1.
type Fibonacci struct {
	Method Method
	Inputs []int
}

func (f *Fibonacci) Name() string { return "Fibonacci (" + f.Method.String() + ")" }

func (f *Fibonacci) RowCount() int { return len(f.Inputs) }

func (f *Fibonacci) Labels(row int) []string { return labels(f.Name(), f.Inputs[row]) }

func (f *Fibonacci) Execute(row int) solver.Result {
	n := f.Inputs[row]
	if f.Method == Recursive {
		return solver.Measure(func() solver.Solution { return solver.U64(fibRecursive(n)) })
	}
	return solver.Measure(func() solver.Solution { return solver.U64(fibIterative(n)) })
}

func fibIterative(n int) uint64 {
	var a, b uint64 = 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}

func fibRecursive(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}
	return fibRecursive(n-1) + fibRecursive(n-2)
}

// PrimeSieve counts the primes <= n with the sieve of Eratosthenes.
type PrimeSieve struct {
	Inputs []int
}

func (p *PrimeSieve) Name() string { return "Prime sieve" }

func (p *PrimeSieve) RowCount() int { return len(p.Inputs) }

func (p *PrimeSieve) Labels(row int) []string { return labels(p.Name(), p.Inputs[row]) }

func (p *PrimeSieve) Execute(row int) solver.Result {
	n := p.Inputs[row]
	return solver.Measure(func() solver.Solution { return solver.U32(countPrimes(n)) })
}

func countPrimes(n int) uint32 {
	if n < 2 {
		return 0
	}
	composite := make([]bool, n+1)
	var count uint32
	for i := 2; i <= n; i++ {
		if composite[i] {
			continue
		}
		count++
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}
	return count
}

// Collatz finds the start below n with the longest Collatz chain. The
// solution reads "<start> (<steps>)".
type Collatz struct {
	Inputs []int
}

func (c *Collatz) Name() string { return "Collatz" }

func (c *Collatz) RowCount() int { return len(c.Inputs) }

func (c *Collatz) Labels(row int) []string { return labels(c.Name(), c.Inputs[row]) }

func (c *Collatz) Execute(row int) solver.Result {
	n := c.Inputs[row]
	return solver.Measure(func() solver.Solution {
		start, steps := longestCollatz(n)
		if start == 0 {
			return solver.Text("none")
		}
		return solver.Text(fmt.Sprintf("%d (%d)", start, steps))
	})
}

// longestCollatz returns the start in [1, n) with the most steps to reach 1.
// Ties go to the smallest start. start is 0 when the range is empty.
func longestCollatz(n int) (start, steps int) {
	if n <= 1 {
		return 0, 0
	}
	cache := make([]int, n)
	for i := 1; i < n; i++ {
		v, s := uint64(i), 0
		for v != 1 && v >= uint64(i) {
			if v%2 == 0 {
				v /= 2
			} else {
				v = 3*v + 1
			}
			s++
		}
		if v != 1 {
			s += cache[v]
		}
		cache[i] = s
		if s > steps || start == 0 {
			start, steps = i, s
		}
	}
	return start, steps
}
