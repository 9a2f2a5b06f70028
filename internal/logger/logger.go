// Package logger builds the application's zerolog logger from configuration.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"finai/internal/config"

	"github.com/rs/zerolog"
)

// Component names used with WithComponent.
const (
	ComponentApp          = "app"
	ComponentHTTP         = "http"
	ComponentAuth         = "auth"
	ComponentTransaction  = "transaction"
	ComponentBudget       = "budget"
	ComponentGoal         = "goal"
	ComponentNotification = "notification"
	ComponentChat         = "chat"
	ComponentReceipt      = "receipt"
	ComponentEvents       = "events"
	ComponentAudit        = "audit"
)

// New creates the root logger. When cfg.File is set, output goes to stdout and the file.
// The returned closer releases the file handle and is never nil.
func New(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
		}
		// the file always receives JSON lines
		out = zerolog.MultiLevelWriter(out, f)
		closer = f
	}

	l := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return l, closer, nil
}

// WithComponent tags a logger with a component name.
func WithComponent(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
