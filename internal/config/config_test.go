package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "./site", cfg.OutputDir)
	require.Equal(t, 8080, cfg.Preview.Port)
	require.Equal(t, 500, cfg.Preview.DebounceMS)
	require.Equal(t, ".webineer-history.db", cfg.HistoryDB)
	require.Equal(t, "", cfg.TemplateDir)
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webineer.yaml")
	content := `
template_dir: ./templates
output_dir: ./public
preview:
  port: 9000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "./templates", cfg.TemplateDir)
	require.Equal(t, "./public", cfg.OutputDir)
	require.Equal(t, 9000, cfg.Preview.Port)
	// Unspecified fields keep their defaults.
	require.Equal(t, 500, cfg.Preview.DebounceMS)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("SITE_OUTPUT", "/srv/www")
	path := filepath.Join(t.TempDir(), "webineer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: ${SITE_OUTPUT}\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/www", cfg.OutputDir)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webineer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [unclosed\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadCanDisableHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webineer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`history_db: ""`+"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "", cfg.HistoryDB)
}
