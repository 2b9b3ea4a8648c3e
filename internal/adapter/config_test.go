package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfig_Overrides(t *testing.T) {
	content := []byte(`
seed: 42
fps: 30
log:
  level: debug
  file: bloch.log
camera:
  yaw: 1.5
`)

	cfg, err := ParseConfig(content)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "bloch.log", cfg.Log.File)
	assert.InDelta(t, 1.5, cfg.Camera.Yaw, 1e-12)
	assert.InDelta(t, DefaultConfig().Camera.Pitch, cfg.Camera.Pitch, 1e-12)
}

func TestParseConfig_UnknownField(t *testing.T) {
	_, err := ParseConfig([]byte("colour: red\n"))
	require.Error(t, err)
}

func TestParseConfig_InvalidFPS(t *testing.T) {
	for _, content := range []string{"fps: 0\n", "fps: -5\n", "fps: 1000\n"} {
		_, err := ParseConfig([]byte(content))
		require.Error(t, err, content)
		assert.Contains(t, err.Error(), "fps")
	}
}

func TestConfigLoader_EmptyPath(t *testing.T) {
	cfg, err := NewConfigLoader().Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFPS, cfg.FPS)
}

func TestConfigLoader_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\nfps: 24\n"), 0o600))

	cfg, err := NewConfigLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 24, cfg.FPS)
}

func TestConfigLoader_MissingFile(t *testing.T) {
	_, err := NewConfigLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestConfigLoader_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: [1, 2\n"), 0o600))

	_, err := NewConfigLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
