package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel())
	assert.Equal(t, "console", cfg.LogFormat())
	assert.Equal(t, "2017", cfg.Edition())
	assert.Equal(t, "fine", cfg.Mesh())
	assert.True(t, cfg.Cache())
	assert.Equal(t, 0.0, cfg.Window())
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvMesh, "coarse")
	t.Setenv(EnvCache, "false")
	t.Setenv(EnvWindow, "0.05")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel())
	assert.Equal(t, "coarse", cfg.Mesh())
	assert.False(t, cfg.Cache())
	assert.Equal(t, 0.05, cfg.Window())
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvEdition, "2004")
	// unset so the file can supply it; t.Setenv restores it afterwards
	require.NoError(t, os.Unsetenv(EnvLogFormat))

	path := filepath.Join(t.TempDir(), ".env")
	data := "GOBOX_LOG_FORMAT=json\nGOBOX_EDITION=2017\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat())
	assert.Equal(t, "2004", cfg.Edition(), "environment wins over the file")
}

func TestGetters_BadValuesFallBack(t *testing.T) {
	cfg := &Config{values: map[string]string{
		EnvWindow: "wide",
		EnvCache:  "sometimes",
	}}
	assert.Equal(t, 0.0, cfg.Window())
	assert.True(t, cfg.Cache())
	assert.Equal(t, "x", cfg.GetString("UNSET", "x"))
}
