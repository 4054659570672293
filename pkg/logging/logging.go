// Package logging builds the process logger: a log/slog front end whose
// records are encoded as JSON by zap and written to a size-rotated file.
// The terminal is never written to, since it holds the sheet.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the log file.
type Options struct {
	File       string // path of the active log file
	Level      string // debug, info, warn or error
	MaxSizeMB  int    // size before rotation
	MaxBackups int    // rotated files kept
	MaxAgeDays int    // days rotated files are kept
	Compress   bool   // gzip rotated files
}

// Logger is a slog.Logger that owns its output file.
type Logger struct {
	*slog.Logger
	zap    *zap.Logger
	closer io.Closer
}

// New opens (creating directories as needed) the rotated log file and
// returns a logger writing to it.
func New(opts Options) (*Logger, error) {
	if opts.File == "" {
		return nil, fmt.Errorf("logging: file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("logging: create log dir: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	l := newLogger(zapcore.AddSync(file), ParseLevel(opts.Level))
	l.closer = file
	return l, nil
}

// NewWriter returns a logger writing JSON lines to w.
func NewWriter(w io.Writer, level string) *Logger {
	return newLogger(zapcore.AddSync(w), ParseLevel(level))
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	z := zap.NewNop()
	return &Logger{
		Logger: slog.New(&zapSlogHandler{zap: z, level: zapcore.FatalLevel}),
		zap:    z,
	}
}

func newLogger(ws zapcore.WriteSyncer, level zapcore.Level) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), ws, level)
	z := zap.New(core)
	return &Logger{
		Logger: slog.New(&zapSlogHandler{zap: z, level: level}),
		zap:    z,
	}
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// Close flushes buffered entries and closes the log file.
func (l *Logger) Close() error {
	_ = l.zap.Sync()
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
