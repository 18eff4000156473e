package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: FOODEE_PREVIEW__BACKEND sets preview.backend.
const EnvPrefix = "FOODEE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOODEE_*). A .env file next to the config
// file is loaded into the environment first; variables already set win.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: FOODEE_SERVER__PORT -> server.port, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validBackends is the set of recognized preview backends.
var validBackends = map[PreviewBackend]bool{
	PreviewSQLite: true,
	PreviewRedis:  true,
	PreviewMemory: true,
	PreviewNone:   true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.SiteDir == "" {
		return fmt.Errorf("site_dir is required")
	}

	if c.Content.URL == "" {
		return fmt.Errorf("content.url is required")
	}
	if c.Content.Timeout < 0 {
		return fmt.Errorf("content.timeout must be non-negative")
	}

	if !validBackends[c.Preview.Backend] {
		return fmt.Errorf("invalid preview.backend %q: must be one of sqlite, redis, memory, none", c.Preview.Backend)
	}
	if c.Preview.Backend == PreviewRedis && c.Preview.RedisURL == "" {
		return fmt.Errorf("preview.redis_url is required for the redis backend")
	}

	if c.Render.RichText != "html" && c.Render.RichText != "markdown" {
		return fmt.Errorf("invalid render.rich_text %q: must be html or markdown", c.Render.RichText)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	for _, pattern := range c.Server.Static {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid server.static pattern %q", pattern)
		}
	}

	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// RemoteContent reports whether content.url is fetched over HTTP.
func (c *Config) RemoteContent() bool {
	u := strings.ToLower(c.Content.URL)
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

// ContentPath returns the local content file, resolved against the site dir.
func (c *Config) ContentPath() string {
	if filepath.IsAbs(c.Content.URL) {
		return c.Content.URL
	}
	return filepath.Join(c.SiteDir, filepath.FromSlash(c.Content.URL))
}

// PreviewDatabase returns the SQLite file used for previews and the render log.
func (c *Config) PreviewDatabase() string {
	if c.Preview.Database != "" {
		return c.Preview.Database
	}
	return filepath.Join(c.DataDir, "foodee.db")
}
