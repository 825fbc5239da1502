// Package logging builds the program's diagnostic logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "TOYPOLL_LOG_LEVEL"

// DefaultLevel keeps diagnostics quiet so stdout stays readable.
const DefaultLevel = slog.LevelWarn

// New returns a tint-backed logger writing to w at the given level. Colors
// are only used when w is a terminal.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: !isTerminal(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				a.Value = slog.StringValue(formatRFC3339Millis(a.Value.Time()))
			}
			if s, ok := a.Value.Any().(string); ok && s == "" {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// ParseLevel maps debug, info, warn and error (any case) to a slog level.
// An empty string yields DefaultLevel.
func ParseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLevel, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return level, nil
}

// LevelFromEnv reads LevelEnv, falling back to DefaultLevel when it is unset.
func LevelFromEnv() (slog.Level, error) {
	return ParseLevel(os.Getenv(LevelEnv))
}

func formatRFC3339Millis(t time.Time) string {
	t = t.UTC()
	base := t.Format("2006-01-02T15:04:05")
	ms := t.Nanosecond() / 1_000_000
	return fmt.Sprintf("%s.%03dZ", base, ms)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
