package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const DefaultLogDir = "logs"

type options struct {
	level   string
	dir     string
	console io.Writer
	file    bool
}

type Option func(*options)

// WithLevel overrides LOG_LEVEL.
func WithLevel(level string) Option {
	return func(o *options) {
		o.level = level
	}
}

func WithLogDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithConsole sends a copy of every entry to w. Pass nil to disable it.
func WithConsole(w io.Writer) Option {
	return func(o *options) {
		o.console = w
	}
}

// WithoutFile keeps the logger off disk, for one-shot commands.
func WithoutFile() Option {
	return func(o *options) {
		o.file = false
	}
}

func NewFormatter() logrus.Formatter {
	return &logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	}
}

// ParseLevel maps a configured level name to logrus, defaulting to info.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// NewLogger builds the service logger: JSON entries written asynchronously to
// <dir>/<name>.log, plus a console copy.
func NewLogger(name string, opts ...Option) (*logrus.Logger, error) {
	o := options{
		level:   os.Getenv("LOG_LEVEL"),
		dir:     DefaultLogDir,
		console: os.Stdout,
		file:    true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := logrus.New()
	logger.SetFormatter(NewFormatter())
	logger.SetLevel(ParseLevel(o.level))
	logger.SetOutput(io.Discard)

	if o.file {
		logFile := filepath.Join(o.dir, filepath.Base(filepath.Clean(name))+".log")
		if err := os.MkdirAll(o.dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize async log writer: %w", err)
		}
		logger.SetOutput(asyncWriter)
	}

	if o.console != nil {
		logger.AddHook(NewConsoleHook(o.console))
	}

	return logger, nil
}

// Close flushes the async file writer behind logger, if it has one.
func Close(logger *logrus.Logger) {
	if w, ok := logger.Out.(*AsyncFileWriter); ok {
		w.Close()
	}
}
