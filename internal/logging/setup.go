package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	BackendZap  = "zap"
	BackendSlog = "slog"
)

// Options selects the backend and destination of the application logger.
type Options struct {
	Backend string // BackendZap (default) or BackendSlog
	Level   string // debug, info, warn, error
	// File is the log file path. Empty means stderr.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// New builds a Logger from opts. The returned closer flushes and releases
// the destination and must be called on shutdown.
func New(opts Options) (Logger, func() error) {
	w := writer(opts)

	if strings.EqualFold(opts.Backend, BackendSlog) {
		return newSlogBackend(w, opts.Level), closerOf(w)
	}

	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(opts.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	zl := NewZapLogger(zap.New(core))

	closeW := closerOf(w)
	return zl, func() error {
		_ = zl.Sync()
		return closeW()
	}
}

func writer(opts Options) io.Writer {
	if opts.File == "" {
		return os.Stderr
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	maxBackups := opts.MaxBackups
	if maxBackups <= 0 {
		maxBackups = 3
	}

	return &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     7,
	}
}

func closerOf(w io.Writer) func() error {
	if c, ok := w.(io.Closer); ok && w != os.Stderr {
		return c.Close
	}
	return func() error { return nil }
}
