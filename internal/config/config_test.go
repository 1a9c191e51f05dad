package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("WORKITEMS_UNDER_API", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://localhost:7006", cfg.APIBaseURL)
	assert.False(t, cfg.WorkItemsUnderAPI)
	assert.False(t, cfg.LegacyWorkItemWhitespace)
	assert.Equal(t, ":7006", cfg.ServerAddr)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("API_BASE_URL", "http://api.internal:9000")
	t.Setenv("WORKITEMS_UNDER_API", "true")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://api.internal:9000", cfg.APIBaseURL)
	assert.True(t, cfg.WorkItemsUnderAPI)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoad_FileOverridesEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_base_url: http://from-file\ndb_driver: postgres\nworkitem_legacy_whitespace: true\n"), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("API_BASE_URL", "http://from-env")
	t.Setenv("DB_DRIVER", "mysql")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://from-file", cfg.APIBaseURL)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.True(t, cfg.LegacyWorkItemWhitespace)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
