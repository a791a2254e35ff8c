package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingDefaultFile(t *testing.T) {
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hedge.yaml")
	content := `
generate:
  width: 41
  height: 31
  algorithm: recursive
display:
  theme: neon
  unicode: true
serve:
  address: ":9090"
  redis_url: "redis://localhost:6379/0"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 41, cfg.Generate.Width)
	assert.Equal(t, 31, cfg.Generate.Height)
	assert.Equal(t, "recursive", cfg.Generate.Algorithm)
	assert.Equal(t, "neon", cfg.Display.Theme)
	assert.True(t, cfg.Display.Unicode)
	assert.Equal(t, ":9090", cfg.Serve.Address)
	// Untouched sections keep their defaults.
	assert.Equal(t, "bfs", cfg.Solve.Algorithm)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generate: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
