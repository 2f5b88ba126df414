package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLevel maps a config level name to a charm log level.
// The empty string means info.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// NewLogger returns a timestamped stderr logger at the given level.
func NewLogger(level string) *log.Logger {
	return NewLoggerTo(os.Stderr, level)
}

// NewLoggerTo is NewLogger writing to w. Unknown levels fall back to info.
func NewLoggerTo(w io.Writer, level string) *log.Logger {
	lvl, _ := ParseLevel(level)
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilemerge",
		Level:           lvl,
	})
}
