package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(newFlags(t, "--data-dir", dir))
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "specialchars.log"), cfg.Log.File)
	assert.Equal(t, 2*time.Second, cfg.UI.ToastDuration)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoad_ConfigFileInDataDir(t *testing.T) {
	dir := t.TempDir()
	content := `
store:
  backend: sqlite
log:
  level: debug
  file: /tmp/chars.log
ui:
  toast_duration: 500ms
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := Load(newFlags(t, "--data-dir", dir))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/chars.log", cfg.Log.File)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.ToastDuration)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigFile)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("store:\n  backend: sqlite\nlog:\n  level: warn\n"), 0644))
	t.Setenv("SPECIALCHARS_STORE_BACKEND", "memory")
	t.Setenv("SPECIALCHARS_LOG_LEVEL", "error")

	// env beats file
	cfg, err := Load(newFlags(t, "--data-dir", dir))
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "error", cfg.Log.Level)

	// flag beats env
	cfg, err = Load(newFlags(t, "--data-dir", dir, "--store", "file", "--log-level", "DEBUG"))
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DataDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPECIALCHARS_DATA_DIR", dir)

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  toast_duration: 3s\n"), 0644))

	cfg, err := Load(newFlags(t, "--config", path, "--data-dir", t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.UI.ToastDuration)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"backend", []string{"--store", "redis"}},
		{"log level", []string{"--log-level", "loud"}},
		{"toast", []string{"--toast=-1s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--data-dir", t.TempDir()}, tt.args...)
			_, err := Load(newFlags(t, args...))
			assert.Error(t, err)
		})
	}
}

func TestLoad_NilFlags(t *testing.T) {
	t.Setenv("SPECIALCHARS_DATA_DIR", t.TempDir())
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Store.Backend)
}
