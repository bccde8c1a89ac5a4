package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds a timestamped logger at the configured level.
// Unknown levels fall back to info.
func (c LogConfig) NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}
