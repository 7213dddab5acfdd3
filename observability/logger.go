package observability

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger atomic.Pointer[zap.Logger]

func init() {
	globalLogger.Store(zap.NewNop())
}

// LoggerConfig selects the logger's verbosity and format.
type LoggerConfig struct {
	Level       string // "debug", "info", "warn", "error"
	Development bool   // console encoder with caller info
}

// Initialize builds the global logger. Until it is called, L returns a no-op
// logger.
func Initialize(cfg LoggerConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = level
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	SetLogger(logger)
	return logger, nil
}

// SetLogger replaces the global logger; a nil logger restores the no-op one.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	globalLogger.Store(l)
}

// L returns the global logger.
func L() *zap.Logger {
	return globalLogger.Load()
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = L().Sync()
}
