package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("QUOTECALC_CONFIG", "")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, ":8080", s.Server.Address)
	assert.Equal(t, []string{"*"}, s.Server.AllowedOrigins)
	assert.Equal(t, "console", s.Output.Format)
	assert.Equal(t, "info", s.Log.Level)
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	path := writeTempFile(t, "quotecalc.yaml", "server:\n"+
		"  address: \"127.0.0.1:9000\"\n"+
		"  allowed_origins:\n"+
		"    - \"https://quotes.example.com\"\n"+
		"output:\n"+
		"  format: text\n")
	t.Setenv("QUOTECALC_CONFIG", path)
	t.Setenv("QUOTECALC_LOG_LEVEL", "debug")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", s.Server.Address)
	assert.Equal(t, []string{"https://quotes.example.com"}, s.Server.AllowedOrigins)
	assert.Equal(t, "text", s.Output.Format)
	assert.Equal(t, "debug", s.Log.Level)
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	t.Setenv("QUOTECALC_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadSettings()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
