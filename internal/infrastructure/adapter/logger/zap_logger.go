package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"syscall"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects how the zap logger encodes and where it writes
type Options struct {
	Level      string
	Format     string // json or console
	Output     string // stdout, stderr or a file path
	CallerInfo bool
}

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger creates a new zap-based logger instance
func NewZapLogger(opts Options) (core.Logger, error) {
	var cfg zap.Config

	if strings.EqualFold(opts.Format, "console") {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.DisableCaller = !opts.CallerInfo
	cfg.Level = zap.NewAtomicLevelAt(toZapLevel(core.ParseLogLevel(opts.Level)))

	if opts.Output != "" {
		cfg.OutputPaths = []string{opts.Output}
	}

	zapLogger, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &ZapLogger{
		logger: zapLogger,
		level:  cfg.Level,
	}, nil
}

// NewZapLoggerWithCore wraps an existing zap core, used to capture output in tests
func NewZapLoggerWithCore(zapCore zapcore.Core, level core.LogLevel) core.Logger {
	atomicLevel := zap.NewAtomicLevelAt(toZapLevel(level))
	filtered, err := zapcore.NewIncreaseLevelCore(zapCore, atomicLevel)
	if err != nil {
		filtered = zapCore
	}

	return &ZapLogger{
		logger: zap.New(filtered),
		level:  atomicLevel,
	}
}

// NewDefaultLogger creates a console logger at info level for tools and early startup
func NewDefaultLogger() core.Logger {
	logger, err := NewZapLogger(Options{Level: "info", Format: "console", Output: "stderr"})
	if err != nil {
		return NewNoopLogger()
	}
	return logger
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	switch l.level.Level() {
	case zapcore.DebugLevel:
		return core.LogLevelDebug
	case zapcore.WarnLevel:
		return core.LogLevelWarn
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

func toZapLevel(level core.LogLevel) zapcore.Level {
	switch level {
	case core.LogLevelDebug:
		return zapcore.DebugLevel
	case core.LogLevelWarn:
		return zapcore.WarnLevel
	case core.LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// write builds fields only for entries that pass the level check
func (l *ZapLogger) write(level zapcore.Level, message string, fields map[string]any) {
	entry := l.logger.Check(level, message)
	if entry == nil {
		return
	}
	entry.Write(toZapFields(fields)...)
}

// toZapFields sorts keys so entries read the same on every run
func toZapFields(fields map[string]any) []zap.Field {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		if err, ok := fields[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}

func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.write(zapcore.DebugLevel, message, fields)
}

func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.write(zapcore.InfoLevel, message, fields)
}

func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.write(zapcore.WarnLevel, message, fields)
}

func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.write(zapcore.ErrorLevel, message, fields)
}

// Flush syncs the underlying writer. Terminals and pipes reject fsync, that error is dropped.
func (l *ZapLogger) Flush() error {
	err := l.logger.Sync()
	if err != nil && (errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)) {
		return nil
	}
	return err
}
