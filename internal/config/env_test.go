package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no stray .env is read.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Host:           "0.0.0.0",
		Port:           8080,
		LogLevel:       "info",
		LogFormat:      "json",
		DefaultCountry: "auto",
		MetricsEnabled: true,
	}, cfg)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoad_Environment(t *testing.T) {
	inTempDir(t)
	t.Setenv("POSTLINE_PORT", "9090")
	t.Setenv("POSTLINE_DEFAULT_COUNTRY", "ca")
	t.Setenv("POSTLINE_STRICT", "true")
	t.Setenv("POSTLINE_LOG_FORMAT", "Console")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "CA", cfg.DefaultCountry)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("POSTLINE_HOST=127.0.0.1\nPOSTLINE_METRICS_ENABLED=false\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("POSTLINE_HOST")
		os.Unsetenv("POSTLINE_METRICS_ENABLED")
	})

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoad_Invalid(t *testing.T) {
	inTempDir(t)
	t.Setenv("POSTLINE_DEFAULT_COUNTRY", "MX")

	_, err := Load(New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("POSTLINE_TEST_STRING", "value")
	t.Setenv("POSTLINE_TEST_BOOL", "yes")
	t.Setenv("POSTLINE_TEST_BAD_BOOL", "maybe")

	assert.Equal(t, "value", GetEnv("POSTLINE_TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnv("POSTLINE_TEST_MISSING", "default"))
	assert.True(t, GetEnvBool("POSTLINE_TEST_BOOL", false))
	assert.True(t, GetEnvBool("POSTLINE_TEST_BAD_BOOL", true))
	assert.False(t, GetEnvBool("POSTLINE_TEST_MISSING", false))
}
