/*
PURPOSE:
  Provides a structured logger for Forest Bench.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy.

  Implementation-discovered:
  - The results table owns stdout, so log records go to stderr.
  - Per-row progress is only interesting at debug level.

ARCHITECTURE INTEGRATION:
  - Used by: table, internal/cli, internal/config.

ERROR HANDLING:
  - ParseLevel returns an error for unknown level names.

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).
  - Keep the level in a LevelVar so the CLI can change it after init.

USAGE:
  output.Logger.Info("message", "key", "value")
  output.SetLevel(slog.LevelDebug)

SELF-HEALING INSTRUCTIONS:
  - Ensure Go 1.21+ is used.
  - If log lines show up inside the table, check the handler still writes to stderr.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Add a JSON handler here if a machine-readable log is ever needed.
*/

package output

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var (
	Logger *slog.Logger
	level  = new(slog.LevelVar)
)

func init() {
	level.Set(slog.LevelWarn)
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// SetLevel changes the minimum level of the default logger.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel maps a config or flag value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
}
