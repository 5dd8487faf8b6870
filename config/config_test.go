package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Store)
	assert.False(t, cfg.Store.AtomicSave)
	assert.Equal(t, "oldest", cfg.Resolver.NameMatch)
	assert.Equal(t, "Profile Card", cfg.Public.SiteName)
	assert.Equal(t, "profile-images", cfg.Storage.Bucket)
	assert.Equal(t, int64(defaultMaxImageSize), cfg.Upload.MaxImageSize)
	assert.Equal(t, 12*time.Hour, cfg.Auth.AccessTTL)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Resolver: &ResolverConfig{NameMatch: "reject"},
		Public:   &PublicConfig{BaseURL: "https://cards.example.com/", SiteName: "Cards"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "reject", cfg.Resolver.NameMatch)
	assert.Equal(t, "https://cards.example.com", cfg.Public.BaseURL)
	assert.Equal(t, "Cards", cfg.Public.SiteName)
}

func TestLoadWithEnv_EnvOverridesYaml(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
http:
  port: 8080
  timeouts:
    readTimeout: 5s
resolver:
  nameMatch: oldest
storage:
  provider: blob
  cloudinaryUrl: ""
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))

	t.Setenv("RESOLVER_NAMEMATCH", "newest")
	t.Setenv("STORAGE_PROVIDER", "cloudinary")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Resolver)
	assert.Equal(t, "newest", cfg.Resolver.NameMatch)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "cloudinary", cfg.Storage.Provider)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
