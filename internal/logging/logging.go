// Package logging configures the process-wide logger.
//
// The preferred sink is a local append-only file written in
// "timestamp | level | source:line | message" form and rotated by size. When
// the file cannot be created (read-only filesystem, permissions) the package
// degrades to console-only output with [INFO]/[WARN]/[ERROR] prefixes; the
// degraded mode is reported once at warning level and is never an error.
package logging

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Defaults for [Options] fields left at their zero value.
const (
	defaultPath      = "project.log"
	defaultMaxSizeMB = 1
	defaultBackups   = 3
)

// Options controls where and how verbosely the logger writes.
type Options struct {
	// Path is the log file location. Empty means "project.log" in the
	// working directory.
	Path string

	// Level is the minimum level emitted. The zero value is slog.LevelInfo.
	Level slog.Level

	// MaxSizeMB is the rotation threshold in megabytes. Values <= 0 use the
	// default of 1 MB.
	MaxSizeMB int
}

// Setup builds a logger per opts and installs it as the slog default.
// It never fails: when the file sink is unavailable the returned logger
// writes to stderr instead.
func Setup(opts Options) *slog.Logger {
	if opts.Path == "" {
		opts.Path = defaultPath
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = defaultMaxSizeMB
	}

	logger, fileOK := newFileLogger(opts)
	if !fileOK {
		logger = slog.New(newConsoleHandler(os.Stderr, opts.Level))
	}
	slog.SetDefault(logger)

	if fileOK {
		logger.Info("logger ready", "sink", opts.Path)
	} else {
		logger.Warn("log file unavailable; using console output", "path", opts.Path)
	}
	return logger
}

// newFileLogger probes the file sink and, when writable, returns a logger
// backed by a size-rotating writer. The probe is needed because the rotating
// writer only opens the file lazily on first write.
func newFileLogger(opts Options) (*slog.Logger, bool) {
	f, err := os.OpenFile(opts.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, false
	}
	f.Close()

	sink := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: defaultBackups,
	}
	return slog.New(newPipeHandler(sink, opts.Level)), true
}
