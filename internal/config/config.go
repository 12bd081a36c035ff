/*
PURPOSE:
  Defines the configuration structure and loading logic for Forest Bench.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Choose which solvers run (include/exclude by name).
  - Choose the inputs each built-in solver benchmarks.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Inputs must be bounded: the recursive Fibonacci solver is exponential.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/solvers
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default files fall back to DefaultConfig().

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should finish in well under a second.

USAGE:
  cfg, err := config.Load("forest_bench.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig()
    and Validate().

RELATED FILES:
  - internal/cli/run.go
  - internal/solvers/solvers.go

MAINTENANCE:
  - Update when adding new built-in solvers or tuning parameters.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Upper bounds for the built-in solver inputs.
const (
	MaxFibonacci = 93 // F(94) overflows uint64
	MaxRecursive = 40
	MaxSieve     = 100_000_000
	MaxCollatz   = 10_000_000
)

// DefaultFiles are searched, in order, when no config path is given.
var DefaultFiles = []string{"forest_bench.yaml", "bench.yaml"}

// Config represents the full configuration for Forest Bench.
type Config struct {
	// Include keeps only solvers whose name contains one of these substrings.
	Include []string `yaml:"include"`
	// Exclude drops solvers whose name contains one of these substrings.
	Exclude  []string `yaml:"exclude"`
	LogLevel string   `yaml:"log_level"`

	Fibonacci []int `yaml:"fibonacci"`
	Recursive []int `yaml:"recursive"`
	Primes    []int `yaml:"primes"`
	Collatz   []int `yaml:"collatz"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "warn",
		Fibonacci: []int{10, 50, 90},
		Recursive: []int{10, 20, 30},
		Primes:    []int{1_000, 100_000, 1_000_000},
		Collatz:   []int{1_000, 100_000},
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every solver input is within its supported range.
func (c *Config) Validate() error {
	var errs []error
	check := func(field string, inputs []int, lo, hi int) {
		for _, n := range inputs {
			if n < lo || n > hi {
				errs = append(errs, fmt.Errorf("%s: input %d out of range [%d, %d]", field, n, lo, hi))
			}
		}
	}
	check("fibonacci", c.Fibonacci, 0, MaxFibonacci)
	check("recursive", c.Recursive, 0, MaxRecursive)
	check("primes", c.Primes, 0, MaxSieve)
	check("collatz", c.Collatz, 1, MaxCollatz)
	return errors.Join(errs...)
}

// Keep reports whether a solver named name passes the include and exclude
// filters. Matching is a case-insensitive substring test.
func (c *Config) Keep(name string) bool {
	name = strings.ToLower(name)
	contains := func(filters []string) bool {
		for _, f := range filters {
			if strings.Contains(name, strings.ToLower(f)) {
				return true
			}
		}
		return false
	}
	if len(c.Include) > 0 && !contains(c.Include) {
		return false
	}
	return !contains(c.Exclude)
}
