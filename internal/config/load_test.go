package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	for _, key := range []string{"GEMINI_API_KEY", "API_KEY", "QUOTESMITH_LLM_API_KEY", "QUOTESMITH_LLM_MODEL", "QUOTESMITH_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	return root
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	root := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "config", "quotesmith", "config.toml"))
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 2.0, cfg.Export.PixelRatio)
	assert.Equal(t, "quote.png", cfg.Export.FileName)
	assert.Equal(t, filepath.Join(root, "data", "quotesmith", "data.db"), cfg.Storage.DBPath)

	// Reloading the written file yields the same values.
	again, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadFileValues(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"

[llm]
model = "gemini-2.0-flash"
timeout = "15s"

[export]
dir = "~/cards"
pixel_ratio = 3
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	assert.Equal(t, 15*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3.0, cfg.Export.PixelRatio)
	assert.Equal(t, filepath.Join(root, "cards"), cfg.Export.Dir)
	assert.Equal(t, "quote.png", cfg.Export.FileName, "unset keys keep defaults")
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("QUOTESMITH_LLM_MODEL", "gemini-env")
	t.Setenv("QUOTESMITH_LOG_LEVEL", "WARN")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini-env", cfg.LLM.Model)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadAPIKeyAliases(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{"prefixed", "QUOTESMITH_LLM_API_KEY"},
		{"gemini", "GEMINI_API_KEY"},
		{"plain", "API_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.env, "secret-"+tt.name)

			cfg, err := Load("")
			require.NoError(t, err)
			assert.Equal(t, "secret-"+tt.name, cfg.LLM.APIKey)
		})
	}
}

func TestDefaultFileOmitsAPIKey(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "out", "config.toml")

	require.NoError(t, WriteDefault(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "api_key")
	assert.Contains(t, string(data), `timeout = "1m0s"`)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	root := isolate(t)
	_, err := Load(filepath.Join(root, "nope.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "loud"

[export]
file_name = "card.jpg"
`), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid configuration")
}
