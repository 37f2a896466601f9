package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger is the structured logging interface used throughout chain-utils.
// It is a reduced sugared-logger surface so callers are not tied to zap
// directly. Implementations must be safe for concurrent use.
//
// Loggers should be injected (and usually Named): e.g. lggr.Named("registry").
// Tests should use [Test] so output is routed through the testing harness;
// [New] is reserved for actual runtime.
type Logger interface {
	// Name returns the fully qualified name of the logger.
	Name() string
	// Named returns a child logger with the given name segment appended.
	Named(name string) Logger

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// Sync flushes any buffered log entries.
	Sync() error
}

type logger struct {
	*zap.SugaredLogger
	name string
}

// New returns a Logger backed by a production zap core writing JSON to
// stderr.
func New() Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return &logger{SugaredLogger: l.Sugar()}
}

// Test returns a Logger that routes output through tb.
func Test(tb testing.TB) Logger {
	return &logger{SugaredLogger: zaptest.NewLogger(tb).Sugar()}
}

// Nop returns a Logger that discards all log entries.
func Nop() Logger {
	return &logger{SugaredLogger: zap.NewNop().Sugar()}
}

func (l *logger) Name() string {
	return l.name
}

func (l *logger) Named(name string) Logger {
	qualified := name
	if l.name != "" {
		qualified = l.name + "." + name
	}

	return &logger{
		SugaredLogger: l.SugaredLogger.Named(name),
		name:          qualified,
	}
}
