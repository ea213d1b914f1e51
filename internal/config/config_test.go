package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, name := range []string{"LOG_LEVEL", "LOG_FILE", "EXPORT_DIR", "EXPORT_SCALE", "CARD_FONT"} {
		t.Setenv(EnvPrefix+name, "")
		os.Unsetenv(EnvPrefix + name)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, ".", cfg.ExportDir)
	assert.Equal(t, 2, cfg.ExportScale)
	assert.Empty(t, cfg.CardFont)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ARCHETYPE_LOG_LEVEL", "debug")
	t.Setenv("ARCHETYPE_LOG_FILE", "/tmp/archetype.log")
	t.Setenv("ARCHETYPE_EXPORT_DIR", "/tmp/cards")
	t.Setenv("ARCHETYPE_EXPORT_SCALE", "3")
	t.Setenv("ARCHETYPE_CARD_FONT", "/fonts/NotoSansTC.otf")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/archetype.log", cfg.LogFile)
	assert.Equal(t, "/tmp/cards", cfg.ExportDir)
	assert.Equal(t, 3, cfg.ExportScale)
	assert.Equal(t, "/fonts/NotoSansTC.otf", cfg.CardFont)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{"bad level", "ARCHETYPE_LOG_LEVEL", "loud", "parsing environment"},
		{"scale not a number", "ARCHETYPE_EXPORT_SCALE", "two", "parsing environment"},
		{"scale too big", "ARCHETYPE_EXPORT_SCALE", "5", "EXPORT_SCALE must be between 1 and 4"},
		{"scale zero", "ARCHETYPE_EXPORT_SCALE", "0", "EXPORT_SCALE must be between 1 and 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_EmptyExportDir(t *testing.T) {
	cfg := &Config{ExportScale: 2}
	assert.ErrorContains(t, cfg.Validate(), "EXPORT_DIR must not be empty")
}

func TestOpenLogger_Fallback(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: slog.LevelWarn}

	logger, closer, err := cfg.OpenLogger(&buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown","k":"v"`)
}

func TestOpenLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archetype.log")
	var buf bytes.Buffer
	cfg := &Config{LogFile: path}

	logger, closer, err := cfg.OpenLogger(&buf)
	require.NoError(t, err)
	logger.Info("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
	assert.Empty(t, buf.String())
}

func TestOpenLogger_BadPath(t *testing.T) {
	cfg := &Config{LogFile: filepath.Join(t.TempDir(), "missing", "x.log")}
	_, _, err := cfg.OpenLogger(&bytes.Buffer{})
	assert.ErrorContains(t, err, "open log file")
}
