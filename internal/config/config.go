// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings.
// Tracing implies debug logging as trace lines are logged at debug level.
func CreateLogger(flags options.Flags) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case flags.Debug, flags.Trace:
		cfg.Level = log.DebugLevel
	case flags.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
