// Package logger holds the process wide zap logger
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Logger is the global logger, set by Init
var Logger = zap.NewNop()

// Init builds a production JSON logger at the given level ("debug", "info", "warn", "error")
func Init(level string) error {
	atomicLevel, err := zap.ParseAtomicLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = atomicLevel

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	Logger = l
	return nil
}

// Sync flushes any buffered log entries
func Sync() {
	_ = Logger.Sync()
}
