package config

import "time"

// PreviewBackend selects where preview overrides are stored.
type PreviewBackend string

const (
	PreviewSQLite PreviewBackend = "sqlite"
	PreviewRedis  PreviewBackend = "redis"
	PreviewMemory PreviewBackend = "memory"
	PreviewNone   PreviewBackend = "none"
)

// Config is the top-level foodee configuration, corresponding to .foodee.yml.
type Config struct {
	SiteDir  string        `yaml:"site_dir" koanf:"site_dir"`
	Origin   string        `yaml:"origin" koanf:"origin"`
	DataDir  string        `yaml:"data_dir" koanf:"data_dir"`
	LogLevel string        `yaml:"log_level" koanf:"log_level"`
	Content  ContentConfig `yaml:"content" koanf:"content"`
	Preview  PreviewConfig `yaml:"preview" koanf:"preview"`
	Theme    ThemeConfig   `yaml:"theme" koanf:"theme"`
	Render   RenderConfig  `yaml:"render" koanf:"render"`
	Server   ServerConfig  `yaml:"server" koanf:"server"`
}

// ContentConfig locates the published content document.
type ContentConfig struct {
	// URL is an http(s) URL or a path relative to the site directory.
	URL     string        `yaml:"url" koanf:"url"`
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
}

// PreviewConfig holds preview store settings.
type PreviewConfig struct {
	Backend  PreviewBackend `yaml:"backend" koanf:"backend"`
	Database string         `yaml:"database" koanf:"database"`
	RedisURL string         `yaml:"redis_url" koanf:"redis_url"`
}

// ThemeConfig holds the deferred theme script settings.
type ThemeConfig struct {
	Script string `yaml:"script" koanf:"script"`
}

// RenderConfig toggles optional rendering capabilities.
type RenderConfig struct {
	RichText string `yaml:"rich_text" koanf:"rich_text"`
	Carousel bool   `yaml:"carousel" koanf:"carousel"`
	Modal    bool   `yaml:"modal" koanf:"modal"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int      `yaml:"port" koanf:"port"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Static          []string `yaml:"static" koanf:"static"`
}
