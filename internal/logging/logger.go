// Package logging provides config-driven categorized logging for salesrace.
// The board owns the terminal, so logs go to a file and only when
// logging.debug_mode is on; otherwise every category gets a no-op logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"salesrace/internal/config"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot    Category = "boot"    // startup and config
	CategoryRace    Category = "race"    // store mutations, winner changes
	CategoryUI      Category = "ui"      // key handling, edit commits
	CategoryMetrics Category = "metrics" // prometheus endpoint
)

var (
	mu   sync.RWMutex
	root = zap.NewNop()
	cfg  config.LoggingConfig
)

// Initialize builds the root logger from cfg. verbose forces debug level.
// Call Sync before exit.
func Initialize(c config.LoggingConfig, verbose bool) error {
	l, err := Build(c, verbose)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	_ = root.Sync()
	root = l
	cfg = c
	return nil
}

// Build returns a JSON file logger for c, or a no-op logger when debug mode is off.
func Build(c config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	if !c.DebugMode {
		return zap.NewNop(), nil
	}
	if c.File == "" {
		return nil, fmt.Errorf("logging.file is required when debug_mode is on")
	}
	if err := os.MkdirAll(filepath.Dir(c.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	level := ParseLevel(c.Level)
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{c.File}
	zc.ErrorOutputPaths = []string{c.File}
	zc.Sampling = nil

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// ParseLevel maps a config level name to a zap level. Unknown names mean info.
func ParseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Get returns the logger for a category. Disabled categories get a no-op logger.
func Get(cat Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !cfg.IsCategoryEnabled(string(cat)) {
		return zap.NewNop()
	}
	return root.Named(string(cat))
}

// Sync flushes the root logger.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}

// Reset restores the no-op logger. Tests use it between cases.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	_ = root.Sync()
	root = zap.NewNop()
	cfg = config.LoggingConfig{}
}
