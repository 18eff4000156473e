package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectSiteDir looks for a page shell in well-known places.
func detectSiteDir() string {
	for _, dir := range []string{".", "site", "public", "www"} {
		if _, err := os.Stat(filepath.Join(dir, "index.html")); err == nil {
			return dir
		}
	}
	return "."
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to foodee! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site directory.
	sitePrompt := promptui.Prompt{
		Label:   "Site directory (holds index.html, css/, js/)",
		Default: detectSiteDir(),
	}
	siteDir, err := sitePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site dir: %w", err)
	}
	cfg.SiteDir = siteDir

	// 2. Content location.
	contentPrompt := promptui.Prompt{
		Label:   "Content document (URL or path inside the site directory)",
		Default: cfg.Content.URL,
	}
	contentURL, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content url: %w", err)
	}
	cfg.Content.URL = contentURL

	// 3. Preview store.
	backendPrompt := promptui.Select{
		Label: "Preview store",
		Items: []string{
			"sqlite: local database file",
			"redis:  shared between servers",
			"memory: lost on restart",
			"none:   previews disabled",
		},
	}
	backendIdx, _, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("preview store selection: %w", err)
	}
	backends := []PreviewBackend{PreviewSQLite, PreviewRedis, PreviewMemory, PreviewNone}
	cfg.Preview.Backend = backends[backendIdx]

	if cfg.Preview.Backend == PreviewRedis {
		redisPrompt := promptui.Prompt{
			Label:   "Redis URL",
			Default: "redis://localhost:6379/0",
		}
		if cfg.Preview.RedisURL, err = redisPrompt.Run(); err != nil {
			return nil, fmt.Errorf("redis url: %w", err)
		}
	}

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)
	cfg.Origin = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	// 5. Extra static globs.
	staticPrompt := promptui.Prompt{
		Label:   "Extra static asset globs (comma-separated, leave blank for defaults)",
		Default: "",
	}
	staticStr, err := staticPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("static globs: %w", err)
	}
	cfg.Server.Static = append(cfg.Server.Static, splitAndTrim(staticStr)...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
