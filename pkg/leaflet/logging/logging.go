// Package logging owns the process-wide JSON logger of the reader binaries.
//
// Records go to a console writer (stderr unless changed) and, when a path
// was set, to an append-only log file. Call SetPath and SetConsole before the
// first call to Logger; later calls have no effect.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string
	console io.Writer = os.Stderr

	setupOnce sync.Once
	output    io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}
)

// SetPath sets the full path for the log file, including filename.
// Parent directories are created on first use.
func SetPath(path string) {
	logPath = path
}

// SetConsole replaces the console writer. Pass io.Discard to log to the file
// only, as the terminal reader does.
func SetConsole(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	console = w
}

func setup() {
	setupOnce.Do(func() {
		output = console
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			// Can't open log file, fall back to console only
			return
		}
		logFile = f

		if console == io.Discard {
			output = logFile
		} else {
			output = io.MultiWriter(console, logFile)
		}
	})
}

// Logger returns the process-wide logger.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		setup()

		handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
			Level: levelVar,
		})
		logger = slog.New(handler)
	})
	return logger
}

// SetLevel sets the minimum level of the process-wide logger.
func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

// SetRawLevel parses and sets the level from a string such as "debug".
func SetRawLevel(raw string) {
	levelVar.Set(ParseLevel(raw))
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to their
// slog level. Anything else is info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Close closes the log file, if one was opened.
func Close() error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}
