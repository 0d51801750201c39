// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	logLevel      = new(slog.LevelVar)
	debugFilter   bool
)

// Init configures the package logger. Until it is called, logging is discarded.
func Init(cfg Config, output io.Writer) {
	if output == nil {
		output = io.Discard
	}
	cfg.process()

	mu.Lock()
	defer mu.Unlock()

	logLevel.Set(cfg.level.Level())
	opts := slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	handler := newFilteringHandler(slog.NewTextHandler(output, &opts), &cfg)
	defaultLogger = slog.New(handler)

	// PC=0 keeps the init message out of package/file filtering
	r := slog.NewRecord(time.Now(), slog.LevelInfo, "Logger initialized", 0)
	r.AddAttrs(slog.String("level", cfg.level.Level().String()))
	_ = handler.baseHandler.Handle(context.Background(), r)
}

// OpenOutput opens the log destination named by path. An empty path selects the
// default file under the user config dir and "-" selects stderr.
func OpenOutput(path, appName string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stderr}, nil
	}
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve default log directory: %w", err)
		}
		dir = filepath.Join(dir, appName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory '%s': %w", dir, err)
		}
		path = filepath.Join(dir, appName+".log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// SetDebugFilter toggles diagnostics of the filtering handler on stderr.
func SetDebugFilter(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugFilter = enabled
}

// logAtLevel creates and logs a record, capturing the caller of the wrapper.
func logAtLevel(level slog.Level, tag string, format string, args ...interface{}) {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()

	if !l.Enabled(context.Background(), level) {
		return
	}

	// Skip runtime.Callers, logAtLevel and the exported wrapper
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// DebugTagf logs a debug message carrying a filter tag.
func DebugTagf(tag string, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// InfoTagf logs an info message carrying a filter tag.
func InfoTagf(tag string, format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, tag, format, args...)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}
