package config

import "time"

// DefaultConfigFile is the configuration file looked up in the working directory.
const DefaultConfigFile = ".foodee.yml"

// DefaultStatic are the site asset globs served next to the rendered page.
var DefaultStatic = []string{
	"css/**",
	"js/**",
	"images/**",
	"fonts/**",
	"data/**",
	"*.html",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteDir:  ".",
		Origin:   "http://localhost:8080",
		DataDir:  ".foodee",
		LogLevel: "info",
		Content: ContentConfig{
			URL:     "data/content.json",
			Timeout: 10 * time.Second,
		},
		Preview: PreviewConfig{
			Backend: PreviewSQLite,
		},
		Theme: ThemeConfig{
			Script: "js/main.js",
		},
		Render: RenderConfig{
			RichText: "html",
			Carousel: true,
			Modal:    true,
		},
		Server: ServerConfig{
			Port:   8080,
			Static: append([]string(nil), DefaultStatic...),
		},
	}
}
