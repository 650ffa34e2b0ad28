package obslog

import (
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trueform/compiler/ir"
)

// Logger is a thin facade over *zap.Logger. It exists so callers depend
// on this package's narrow surface rather than zap directly, and so
// CoreError can be logged with one call instead of the caller manually
// unpacking Code/Message/Context every time.
type Logger struct {
	z *zap.Logger
}

// New builds a Logger. dev selects zap's human-readable development
// encoder (console, colorized level, stack traces on warn+); the
// production default is JSON, suitable for shipping to a log pipeline.
func New(dev bool) (*Logger, error) {
	var cfg zap.Config
	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

// Noop returns a Logger that discards everything, for callers (tests,
// library consumers) that don't want build/evaluator logging anywhere.
func Noop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// Sync flushes any buffered log entries. Callers should defer this at
// process exit.
func (l *Logger) Sync() error { return l.z.Sync() }

// With returns a child Logger with the given structured fields
// attached to every subsequent entry.
func (l *Logger) With(fields ...zapcore.Field) *Logger {
	return &Logger{z: l.z.With(fields...)}
}

// Info logs msg at info level with the given fields.
func (l *Logger) Info(msg string, fields ...zapcore.Field) { l.z.Info(msg, fields...) }

// Warn logs msg at warn level with the given fields.
func (l *Logger) Warn(msg string, fields ...zapcore.Field) { l.z.Warn(msg, fields...) }

// Error logs err at error level, expanding *ir.CoreError into
// structured code/message/context fields rather than a flat string.
func (l *Logger) Error(msg string, err error, fields ...zapcore.Field) {
	all := append([]zapcore.Field{}, fields...)
	var ce *ir.CoreError
	if errors.As(err, &ce) {
		all = append(all, zap.String("errorCode", string(ce.Code)), zap.String("errorMessage", ce.Message))
		for k, v := range ce.Context {
			all = append(all, zap.String(k, v))
		}
	} else if err != nil {
		all = append(all, zap.Error(err))
	}
	l.z.Error(msg, all...)
}
