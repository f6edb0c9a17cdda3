package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/AiYo-Studio/emod-cli.git", cfg.RepoURL)
	assert.Equal(t, filepath.Join(os.TempDir(), "emod-cli"), cfg.CacheDir)
	assert.Equal(t, DefaultTemplateMaxAge, cfg.TemplateMaxAge)
	assert.Equal(t, path, cfg.Path())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "repo_url: https://example.com/templates.git\ncache_dir: /var/cache/emod\ntemplate_max_age: 1h\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/templates.git", cfg.RepoURL)
	assert.Equal(t, "/var/cache/emod", cfg.CacheDir)
	assert.Equal(t, time.Hour, cfg.TemplateMaxAge)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repo_url: https://example.com/file.git\n"), 0644))
	t.Setenv("EMOD_REPO_URL", "https://example.com/env.git")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/env.git", cfg.RepoURL)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_dir: /tmp/custom\n"), 0644))
	t.Setenv("EMOD_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, "/tmp/custom", cfg.CacheDir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "repo_url: [unterminated\n"},
		{"bad duration", "template_max_age: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrConfig))
		})
	}
}

func TestSetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, cfg.Set(KeyRepoURL, "https://example.com/mine.git"))
	require.NoError(t, cfg.Set(KeyTemplateMaxAge, "30m"))
	assert.Equal(t, "https://example.com/mine.git", cfg.RepoURL)
	assert.Equal(t, 30*time.Minute, cfg.TemplateMaxAge)

	got, err := cfg.Get(KeyRepoURL)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/mine.git", got)

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/mine.git", reloaded.RepoURL)
	assert.Equal(t, 30*time.Minute, reloaded.TemplateMaxAge)
}

func TestSetAndGet_Errors(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	_, err = cfg.Get("mirror")
	assert.True(t, errors.Is(err, oerrors.ErrConfig))

	err = cfg.Set("mirror", "x")
	assert.True(t, errors.Is(err, oerrors.ErrConfig))

	err = cfg.Set(KeyTemplateMaxAge, "forever")
	assert.True(t, errors.Is(err, oerrors.ErrConfig))
	assert.Equal(t, DefaultTemplateMaxAge, cfg.TemplateMaxAge)
}
