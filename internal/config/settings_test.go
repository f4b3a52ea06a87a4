package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "speaker", s.Audio)
	assert.Equal(t, 960, s.View.Width)
	assert.Equal(t, 540, s.View.Height)
	assert.Equal(t, "2222", s.SSH.Port)
	assert.Equal(t, ".ssh/id_ed25519", s.SSH.HostKeyPath)
	assert.Equal(t, "8080", s.Web.Port)
}

func TestLoad_WithYAMLFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `
logLevel: debug
view:
  width: 1280
  height: 720
ssh:
  port: "23234"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cyberjet.yaml"), []byte(cfg), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 1280, s.View.Width)
	assert.Equal(t, 720, s.View.Height)
	assert.Equal(t, "23234", s.SSH.Port)
	assert.Equal(t, "0.0.0.0", s.SSH.Host, "unset keys keep defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("CYBERJET_SSH_PORT", "4000")
	t.Setenv("CYBERJET_AUDIO", "bell")

	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "4000", s.SSH.Port)
	assert.Equal(t, "bell", s.Audio)
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cyberjet.json"), []byte(`{not json`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidViewport(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("CYBERJET_VIEW_WIDTH", "0")

	_, err := Load(t.TempDir())
	require.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CYBERJET_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("CYBERJET_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CYBERJET_TEST_MISSING", "fallback"))
}

func TestAddr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:2222", Addr("0.0.0.0", "2222"))
	assert.Equal(t, "[::]:2222", Addr("::", "2222"))
}
