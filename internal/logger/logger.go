// Package logger provides verbose logging for the CoffeeHunt CLI.
// Nothing is written unless verbose mode is enabled with --verbose; the TUI
// sends its logs to a file so they never draw over the screen.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	verbose atomic.Bool
	base    = newLogger(os.Stderr)
)

// newLogger builds a console logger that writes "[LEVEL] message" lines to w.
func newLogger(w io.Writer) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      bracketLevel,
		ConsoleSeparator: " ",
	})
	enabled := zap.LevelEnablerFunc(func(zapcore.Level) bool {
		return verbose.Load()
	})
	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), enabled))
}

func bracketLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	return verbose.Load()
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	l := newLogger(w)
	mu.Lock()
	defer mu.Unlock()
	base = l
}

// L returns the underlying structured logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Sync flushes buffered log entries.
func Sync() error {
	return L().Sync()
}

// Debug logs a formatted message at debug level.
func Debug(format string, args ...any) {
	if IsVerbose() {
		L().Debug(fmt.Sprintf(format, args...))
	}
}

// Section logs a section header.
func Section(name string) {
	if IsVerbose() {
		L().Info("=== " + name + " ===")
	}
}

// Info logs a formatted informational message.
func Info(format string, args ...any) {
	if IsVerbose() {
		L().Info(fmt.Sprintf(format, args...))
	}
}

// Warn logs a formatted warning.
func Warn(format string, args ...any) {
	if IsVerbose() {
		L().Warn(fmt.Sprintf(format, args...))
	}
}
