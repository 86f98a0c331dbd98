// Package logging sets up the zerolog logger shared by all services:
// console plus a session log file, with optional Graylog shipping.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	Level          string // debug, info, warn, error
	LogsDir        string // session log file directory; empty disables the file
	AppName        string // log file name prefix
	GraylogEnabled bool
	GraylogAddress string
	SessionStart   time.Time
}

// LogFilePath builds a log file path using OS-appropriate path separators.
func LogFilePath(logsDir, appName string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("%s.%s.log", appName, sessionStart.Format("20060102_150405")),
	)
}

// New constructs the logger. The returned closer owns the log file handle,
// if any; callers should close it on shutdown.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339},
	}

	var file *os.File
	if cfg.LogsDir != "" {
		if err := os.MkdirAll(cfg.LogsDir, 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to create logs dir: %w", err)
		}
		file, err = os.OpenFile(
			LogFilePath(cfg.LogsDir, cfg.AppName, cfg.SessionStart),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0o644,
		)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, file)
	}

	if cfg.GraylogEnabled {
		gelfWriter, err := gelf.NewWriter(cfg.GraylogAddress)
		if err != nil {
			// Graylog is best-effort; keep the local writers.
			fmt.Fprintf(os.Stderr, "graylog unavailable: %v\n", err)
		} else {
			writers = append(writers, gelfWriter)
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if file != nil {
		return logger, file, nil
	}
	return logger, io.NopCloser(nil), nil
}
