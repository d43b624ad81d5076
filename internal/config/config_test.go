package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "PET_SERVICE_URL", "PET_SERVICE_TIMEOUT", "CORS_ALLOWED_ORIGINS", "DOCS_ENABLED", "ALLOW_ALL_CAPABILITIES", "PLANS_BASE_URL", "PLANS_API_KEY"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.PetServiceTimeout)
	assert.True(t, cfg.DocsEnabled)
	assert.False(t, cfg.PlansEnabled())
	assert.Nil(t, cfg.CORSAllowedOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PET_SERVICE_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("DOCS_ENABLED", "false")
	t.Setenv("ALLOW_ALL_CAPABILITIES", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 3*time.Second, cfg.PetServiceTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.DocsEnabled)
	assert.True(t, cfg.PlansEnabled())
}

func TestFromEnv_InvalidTimeout(t *testing.T) {
	t.Setenv("PET_SERVICE_TIMEOUT", "soon")
	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PET_SERVICE_URL=http://pets.local\n"), 0o600))

	t.Setenv("PET_SERVICE_URL", "")
	require.NoError(t, os.Unsetenv("PET_SERVICE_URL"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://pets.local", cfg.PetServiceURL)

	// archivo inexistente no es error
	_, err = Load(filepath.Join(dir, "missing.env"))
	assert.NoError(t, err)
}
