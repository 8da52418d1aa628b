// Package logging builds the zap logger used by the gobox commands
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // "console" or "json"
	OutputPath  string // stderr when empty
	Development bool
}

// New creates a logger. An unknown level falls back to info.
func New(config Config) (*zap.Logger, error) {
	var zapConfig zap.Config

	if config.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	if config.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if config.OutputPath != "" {
		zapConfig.OutputPaths = []string{config.OutputPath}
	}

	return zapConfig.Build()
}

// NewOrNop is New with a no-op logger when construction fails
func NewOrNop(config Config) *zap.Logger {
	logger, err := New(config)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
