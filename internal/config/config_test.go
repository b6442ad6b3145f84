package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{ContentEnv, LogFileEnv, LogLevelEnv, NoMouseEnv, WatchEnv, OTLPEndpointEnv, ServiceNameEnv} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	assert.Empty(t, cfg.ContentPath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.Mouse)
	assert.Equal(t, DefaultServiceName, cfg.ServiceName)
	assert.False(t, cfg.Watch)
	_, err := uuid.Parse(cfg.SessionID)
	assert.NoError(t, err)
}

func TestFromEnv_SessionIDPerRun(t *testing.T) {
	assert.NotEqual(t, FromEnv().SessionID, FromEnv().SessionID)
}

func TestResolveContentPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Config{ContentPath: "~/folio.yaml"}.ResolveContentPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "folio.yaml"), got)

	got, err = Config{ContentPath: "/etc/folio.yaml"}.ResolveContentPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/folio.yaml", got)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(ContentEnv, "/tmp/content.yaml")
	t.Setenv(LogLevelEnv, "DEBUG")
	t.Setenv(NoMouseEnv, "1")
	t.Setenv(ServiceNameEnv, "folio-test")

	cfg := FromEnv()
	assert.Equal(t, "/tmp/content.yaml", cfg.ContentPath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, "folio-test", cfg.ServiceName)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestLoadPortfolio_DefaultWhenUnset(t *testing.T) {
	p, err := Config{}.LoadPortfolio()
	require.NoError(t, err)
	assert.Equal(t, "Muskan Sharma", p.Profile.Name)
}

func TestLoadPortfolio_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Ada\n"), 0o644))

	p, err := Config{ContentPath: path}.LoadPortfolio()
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Profile.Name)
	assert.NotEmpty(t, p.Sections)
}

func TestLoadPortfolio_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: \"\"\n"), 0o644))

	_, err := Config{ContentPath: path}.LoadPortfolio()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile.name is required")
}

func TestOpenLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "folio.log")
	logger, closer, err := Config{LogFile: path, LogLevel: slog.LevelInfo}.OpenLogger()
	require.NoError(t, err)

	logger.Info("overlay opened", "project", "P1")
	logger.Debug("filtered out")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "overlay opened")
	assert.Contains(t, string(data), "project=P1")
	assert.NotContains(t, string(data), "filtered out")
}

func TestOpenLogger_DiscardsWithoutFile(t *testing.T) {
	logger, closer, err := Config{}.OpenLogger()
	require.NoError(t, err)
	logger.Info("nowhere")
	assert.NoError(t, closer.Close())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{}, false},
		{"watch with content", Config{Watch: true, ContentPath: "folio.yaml"}, false},
		{"watch without content", Config{Watch: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), ContentEnv)
				return
			}
			require.NoError(t, err)
		})
	}
}
