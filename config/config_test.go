package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsEnvOnly(t *testing.T) {
	t.Setenv("AT_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	cfg, err := Load("", true)
	require.NoError(t, err)

	assert.Equal(t, ":8090", cfg.Server.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "file::memory:", cfg.DB.DSN)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, "@every 5m", cfg.Digest.Spec)
	assert.Empty(t, cfg.Gemini.APIKey)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("AT_SERVER_HTTP_ADDR", ":9999")
	t.Setenv("AT_GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("AT_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "from-gemini-env")
	t.Setenv("API_KEY", "")

	cfg, err := Load("", true)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.HTTPAddr)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, "from-gemini-env", cfg.Gemini.APIKey)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("AT_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("log:\n  level: debug\n  encoding: json\ndigest:\n  spec: \"\"\ngemini:\n  timeout: 5s\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Empty(t, cfg.Digest.Spec)
	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
	assert.Error(t, err)
}
