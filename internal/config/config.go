package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/viper"

	"github.com/AiYo-Studio/emod-cli/internal/branding"
	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyRepoURL        = "repo_url"
	KeyCacheDir       = "cache_dir"
	KeyTemplateMaxAge = "template_max_age"
)

// DefaultTemplateMaxAge is how long a fetched template repository is used
// before it is refreshed.
const DefaultTemplateMaxAge = 7 * 24 * time.Hour

// Config holds resolved user settings.
type Config struct {
	// RepoURL is the git URL of the template repository.
	RepoURL string
	// CacheDir holds the local clone of the template repository.
	CacheDir string
	// TemplateMaxAge is the age after which the clone is refreshed.
	TemplateMaxAge time.Duration

	path string
	v    *viper.Viper
}

// Dir returns the path to the config directory (~/.emod-cli/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the default config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Keys returns the supported configuration keys.
func Keys() []string {
	return []string{KeyCacheDir, KeyRepoURL, KeyTemplateMaxAge}
}

// Load reads the config file at path and overlays EMOD_* environment
// variables. An empty path selects $EMOD_CONFIG, then FilePath(). A
// missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(branding.EnvVar("config"))
	}
	if path == "" {
		path = FilePath()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyRepoURL, branding.TemplateRepoURL())
	v.SetDefault(KeyCacheDir, filepath.Join(os.TempDir(), branding.CLIName()+"-cli"))
	v.SetDefault(KeyTemplateMaxAge, DefaultTemplateMaxAge.String())

	if err := v.ReadInConfig(); err != nil && !notExist(err) {
		return nil, oerrors.NewConfigError("reading config file", path, err)
	}

	maxAge, err := time.ParseDuration(v.GetString(KeyTemplateMaxAge))
	if err != nil {
		return nil, oerrors.NewConfigError(
			fmt.Sprintf("%s must be a duration such as 24h", KeyTemplateMaxAge), path, err)
	}

	return &Config{
		RepoURL:        v.GetString(KeyRepoURL),
		CacheDir:       v.GetString(KeyCacheDir),
		TemplateMaxAge: maxAge,
		path:           path,
		v:              v,
	}, nil
}

func notExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

// Path returns the config file the Config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Get returns the effective value of key.
func (c *Config) Get(key string) (string, error) {
	if !slices.Contains(Keys(), key) {
		return "", unknownKey(key)
	}
	return c.v.GetString(key), nil
}

// Set writes key=value to the config file and updates c.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyRepoURL:
		c.RepoURL = value
	case KeyCacheDir:
		c.CacheDir = value
	case KeyTemplateMaxAge:
		d, err := time.ParseDuration(value)
		if err != nil {
			return oerrors.NewConfigError(
				fmt.Sprintf("%s must be a duration such as 24h", key), c.path, err)
		}
		c.TemplateMaxAge = d
	default:
		return unknownKey(key)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", filepath.Dir(c.path), err)
	}

	c.v.Set(key, value)
	if err := c.v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func unknownKey(key string) error {
	return &oerrors.DetailError{
		Type:    "config error",
		Message: fmt.Sprintf("unknown key %q", key),
		Hint:    fmt.Sprintf("valid keys: %v", Keys()),
		Cause:   oerrors.ErrConfig,
	}
}
