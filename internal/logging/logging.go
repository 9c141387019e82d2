// Package logging builds the zerolog logger shared by all commands.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLevel is consulted when no level is given on the command line or in config.
const EnvLevel = "EVOSOTA_LOG_LEVEL"

// ParseLevel maps debug|info|warn|error to a zerolog level. Unknown values
// fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// LevelFromEnv returns EVOSOTA_LOG_LEVEL when set, otherwise def.
func LevelFromEnv(def string) string {
	if v := os.Getenv(EnvLevel); v != "" {
		return v
	}
	return def
}

// New returns a logger writing to w. format "json" emits structured lines;
// anything else uses the human console writer.
func New(w io.Writer, level, format string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	out := w
	if !strings.EqualFold(format, "json") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !isTerminal(w)}
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
