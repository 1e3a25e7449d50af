package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "stub", cfg.Oracle.Provider)
	assert.Equal(t, 6, cfg.MaxSelection)
	assert.Equal(t, 60.0, cfg.Ranges.SmileNeutral)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PHOTOCOACH_ADDR", ":9090")
	t.Setenv("PHOTOCOACH_MAX_PHOTOS", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 4, cfg.MaxPhotos)
}

func TestLoadFileLayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7070\"\nmax_selection: 3\n"), 0o600))
	t.Setenv("PHOTOCOACH_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 3, cfg.MaxSelection)
	// Untouched keys keep their defaults.
	assert.Equal(t, "stub", cfg.Oracle.Provider)
}

func TestLoadRejectsBadProvider(t *testing.T) {
	t.Setenv("PHOTOCOACH_ORACLE.PROVIDER", "psychic")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresKeyForRealProviders(t *testing.T) {
	t.Setenv("PHOTOCOACH_ORACLE.PROVIDER", "openai")

	_, err := Load()
	assert.Error(t, err)
}
