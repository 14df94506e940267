// Package logging provides the slog-backed logger shared by the CLI and
// the retrieval adapters.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// LogLevel represents the severity threshold for emitted messages.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

const (
	defaultMaxFileSize = 10 * 1024 * 1024
	defaultMaxBackups  = 3
)

// Config holds logger configuration.
type Config struct {
	Level      LogLevel
	OutputFile string // empty = stdout only
	MaxSize    int64  // bytes before the log file is rotated
	MaxBackups int    // rotated files kept before the oldest is dropped
	JSONFormat bool
	AddSource  bool
}

// Logger wraps a slog.Logger together with its optional file sink.
type Logger struct {
	slog *slog.Logger
	file *os.File
}

// NewLogger builds a logger writing to stdout and, when configured, a
// rotated log file.
func NewLogger(cfg Config) (*Logger, error) {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultMaxFileSize
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = defaultMaxBackups
	}

	writers := []io.Writer{os.Stdout}
	var file *os.File
	if cfg.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		if err := rotateIfNeeded(cfg.OutputFile, cfg.MaxSize, cfg.MaxBackups); err != nil {
			return nil, fmt.Errorf("rotate logs: %w", err)
		}
		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", cfg.OutputFile, err)
		}
		file = f
		writers = append(writers, f)
	}

	opts := &slog.HandlerOptions{
		Level:     slogLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}
	out := io.MultiWriter(writers...)
	var handler slog.Handler
	if cfg.JSONFormat {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{slog: slog.New(handler), file: file}, nil
}

// rotateIfNeeded shifts path -> path.1 -> path.2 ... once path grows past
// maxSize, discarding anything beyond maxBackups.
func rotateIfNeeded(path string, maxSize int64, maxBackups int) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() < maxSize {
		return nil
	}

	os.Remove(fmt.Sprintf("%s.%d", path, maxBackups))
	for i := maxBackups - 1; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", path, i), fmt.Sprintf("%s.%d", path, i+1))
	}
	return os.Rename(path, path+".1")
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// With returns a logger carrying additional fixed attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...), file: l.file}
}

// Slog exposes the underlying slog.Logger for packages that take one
// directly.
func (l *Logger) Slog() *slog.Logger { return l.slog }

// Close releases the file sink, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
