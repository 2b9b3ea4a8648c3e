package adapter

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds a logger for cfg. When cfg.File is set the log is appended
// to that file; otherwise it goes to fallback. The returned closer releases
// the file and is never nil.
func NewLogger(cfg LogConfig, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel

	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}

		level = parsed
	}

	out := fallback
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, closer, fmt.Errorf("failed to open log file: %w", err)
		}

		out = file
		closer = file
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "bloch",
		ReportTimestamp: cfg.File != "",
	})

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
