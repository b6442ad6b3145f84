// Package config resolves runtime settings for folio from the environment
// and command-line overrides.
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"folio/internal/content"
)

const (
	// ContentEnv points at a YAML content file replacing the built-in set.
	ContentEnv = "FOLIO_CONTENT"
	// LogFileEnv is the path debug logs are appended to. Empty disables logging.
	LogFileEnv = "FOLIO_LOG_FILE"
	// LogLevelEnv is one of debug, info, warn, error.
	LogLevelEnv = "FOLIO_LOG_LEVEL"
	// WatchEnv reloads the content file on change when set to a non-empty value.
	WatchEnv = "FOLIO_WATCH"
	// NoMouseEnv disables mouse capture when set to a non-empty value.
	NoMouseEnv = "FOLIO_NO_MOUSE"
	// OTLPEndpointEnv enables trace export when set.
	OTLPEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the exported service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	// DefaultServiceName is used when ServiceNameEnv is unset.
	DefaultServiceName = "folio"
)

// Config holds resolved settings.
type Config struct {
	ContentPath  string
	LogFile      string
	LogLevel     slog.Level
	Mouse        bool
	OTLPEndpoint string
	ServiceName  string
	Watch        bool

	// SessionID tags this run's logs and trace spans.
	SessionID string
}

// FromEnv reads settings from the environment, filling defaults.
func FromEnv() Config {
	cfg := Config{
		ContentPath:  os.Getenv(ContentEnv),
		LogFile:      os.Getenv(LogFileEnv),
		LogLevel:     ParseLevel(os.Getenv(LogLevelEnv)),
		Mouse:        os.Getenv(NoMouseEnv) == "",
		OTLPEndpoint: os.Getenv(OTLPEndpointEnv),
		ServiceName:  os.Getenv(ServiceNameEnv),
		Watch:        os.Getenv(WatchEnv) != "",
		SessionID:    uuid.NewString(),
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	return cfg
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	if c.Watch && c.ContentPath == "" {
		return errors.Errorf("watch mode needs a content file (--content or %s)", ContentEnv)
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level. Unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// LoadPortfolio returns the content file's portfolio, or the built-in one
// when no content path is configured.
func (c Config) LoadPortfolio() (*content.Portfolio, error) {
	if c.ContentPath == "" {
		return content.Default(), nil
	}
	path, err := c.ResolveContentPath()
	if err != nil {
		return nil, err
	}
	return content.Load(path)
}

// ResolveContentPath expands a leading ~/ in ContentPath.
func (c Config) ResolveContentPath() (string, error) {
	path := c.ContentPath
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolving home directory")
	}
	return filepath.Join(home, path[2:]), nil
}

// OpenLogger returns a text logger writing to LogFile, and the closer for
// that file. With no log file the logger discards everything; stdout and
// stderr belong to the terminal UI.
func (c Config) OpenLogger() (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), io.NopCloser(nil), nil
	}
	if dir := filepath.Dir(c.LogFile); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, errors.Wrapf(err, "creating log directory %s", dir)
		}
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening log file %s", c.LogFile)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}
