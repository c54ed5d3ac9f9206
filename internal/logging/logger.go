// Package logging provides config-driven categorized logging on top of zap.
// Each subsystem asks for a named child logger; categories switched off in
// the config get a no-op logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"oodesign/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot       Category = "boot"       // Startup, config loading
	CategoryGeometry   Category = "geometry"   // Shape areas
	CategoryQuadrature Category = "quadrature" // Integrator and strategies
	CategoryIntegrand  Category = "integrand"  // Integrand resolution and compilation
	CategoryReport     Category = "report"     // Console output
)

// Logger hands out per-category zap loggers.
type Logger struct {
	base *zap.Logger
	cfg  config.LoggingConfig
}

// Wrap builds a Logger around an existing zap logger.
func Wrap(base *zap.Logger, cfg config.LoggingConfig) *Logger {
	if base == nil {
		base = zap.NewNop()
	}
	return &Logger{base: base, cfg: cfg}
}

// New builds a zap logger writing to stderr according to cfg.
func New(cfg config.LoggingConfig) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if cfg.DebugMode {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.Format != "" {
		zc.Encoding = cfg.Format
	}
	if zc.Encoding == "console" {
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	base, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return Wrap(base, cfg), nil
}

// For returns the logger for a category, or a no-op logger when the category
// is disabled.
func (l *Logger) For(category Category) *zap.Logger {
	if !l.cfg.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return l.base.Named(string(category))
}

// With returns a Logger whose loggers all carry fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{base: l.base.With(fields...), cfg: l.cfg}
}

// Base returns the uncategorized logger.
func (l *Logger) Base() *zap.Logger {
	return l.base
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
