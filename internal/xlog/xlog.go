// Package xlog builds the zap logger shared by the CLI and the TUI. The
// terminal belongs to the UI, so records only ever go to a file sink; with
// no file configured the logger is a no-op.
package xlog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ErrUnknownLevel  = errors.New("xlog: unknown log level")
	ErrUnknownFormat = errors.New("xlog: unknown log format")
)

type loggerCfg struct {
	level   zapcore.Level
	path    string
	writer  io.Writer
	console bool
}

type Option func(*loggerCfg) error

// WithLevel accepts debug, info, warn or error, case-insensitive.
func WithLevel(name string) Option {
	return func(cfg *loggerCfg) error {
		lvl, err := ParseLevel(name)
		if err != nil {
			return err
		}
		cfg.level = lvl
		return nil
	}
}

// WithDebug lowers the level to debug when on is set.
func WithDebug(on bool) Option {
	return func(cfg *loggerCfg) error {
		if on {
			cfg.level = zapcore.DebugLevel
		}
		return nil
	}
}

// WithFile appends JSON records to path. An empty path is ignored.
func WithFile(path string) Option {
	return func(cfg *loggerCfg) error {
		cfg.path = strings.TrimSpace(path)
		return nil
	}
}

// WithWriter sends records to w, mostly for tests.
func WithWriter(w io.Writer) Option {
	return func(cfg *loggerCfg) error {
		cfg.writer = w
		return nil
	}
}

// WithFormat picks the encoder: "json" (the default) or "console".
func WithFormat(name string) Option {
	return func(cfg *loggerCfg) error {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "", "json":
			cfg.console = false
		case "console", "text":
			cfg.console = true
		default:
			return fmt.Errorf("%w: %q", ErrUnknownFormat, name)
		}
		return nil
	}
}

func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return zapcore.DebugLevel, nil
	case "", "INFO":
		return zapcore.InfoLevel, nil
	case "WARN", "WARNING":
		return zapcore.WarnLevel, nil
	case "ERROR":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// New returns the logger and a close func that flushes and releases the
// sink. Both are always usable, even on error.
func New(opts ...Option) (*zap.Logger, func() error, error) {
	cfg := &loggerCfg{level: zapcore.InfoLevel}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(cfg); err != nil {
			return zap.NewNop(), noop, err
		}
	}

	var (
		ws      zapcore.WriteSyncer
		closeFn = noop
	)
	switch {
	case cfg.writer != nil:
		ws = zapcore.AddSync(cfg.writer)
	case cfg.path != "":
		f, err := os.OpenFile(cfg.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zap.NewNop(), noop, fmt.Errorf("xlog: open %s: %w", cfg.path, err)
		}
		ws = zapcore.Lock(f)
		closeFn = f.Close
	default:
		return zap.NewNop(), noop, nil
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewJSONEncoder(encCfg)
	if cfg.console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	logger := zap.New(zapcore.NewCore(enc, ws, cfg.level), zap.AddCaller())
	return logger, func() error {
		_ = logger.Sync()
		return closeFn()
	}, nil
}

func noop() error { return nil }
