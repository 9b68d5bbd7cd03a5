// Package logger is a thin wrapper around zap so feature packages can log
// structured fields without importing zap everywhere.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

// Fields carries structured context for a log line
type Fields map[string]interface{}

// WithError wraps an error as a Fields value
func WithError(err error) Fields {
	if err == nil {
		return Fields{}
	}
	return Fields{"error": err.Error()}
}

var (
	mu   sync.Mutex
	base *zap.Logger
)

// Init configures the global logger. Production env gets JSON output,
// everything else gets the development console encoder.
func Init(appEnv string) error {
	mu.Lock()
	defer mu.Unlock()

	var (
		l   *zap.Logger
		err error
	)
	if appEnv == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	base = l
	return nil
}

// Sync flushes buffered log entries; call on shutdown.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	if base != nil {
		_ = base.Sync()
	}
}

func get() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if base == nil {
		base, _ = zap.NewDevelopment()
	}
	return base
}

func toZap(fields []Fields) []zap.Field {
	var out []zap.Field
	for _, f := range fields {
		for k, v := range f {
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}

func Debug(msg string, fields ...Fields) { get().Debug(msg, toZap(fields)...) }
func Info(msg string, fields ...Fields)  { get().Info(msg, toZap(fields)...) }
func Warn(msg string, fields ...Fields)  { get().Warn(msg, toZap(fields)...) }
func Error(msg string, fields ...Fields) { get().Error(msg, toZap(fields)...) }
