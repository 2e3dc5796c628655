package logger

import (
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewNoopLogger returns a logger that discards every entry.
// The level is still tracked so callers relying on GetLevel behave the same.
func NewNoopLogger() core.Logger {
	return &ZapLogger{
		logger: zap.NewNop(),
		level:  zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}
}
