// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Options selects level, format and destination
type Options struct {
	Level string
	JSON  bool
	// Dir, when set, receives a dated log file instead of stderr
	Dir string
}

// FileName returns the log file name for the given day
func FileName(day time.Time) string {
	return fmt.Sprintf("%s.log", day.Format("2006-01-02"))
}

// Setup applies opts to logger and returns the opened log file, if any, for the
// caller to close.
func Setup(logger *logrus.Logger, fs afero.Fs, opts Options) (io.Closer, error) {
	if opts.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if opts.Dir == "" {
		logger.SetOutput(os.Stderr)
		return nil, nil
	}

	if err := fs.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(opts.Dir, FileName(time.Now()))
	f, err := fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return f, nil
}
