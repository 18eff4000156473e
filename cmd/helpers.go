package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ziadkadry99/foodee/internal/config"
	"github.com/ziadkadry99/foodee/internal/db"
	"github.com/ziadkadry99/foodee/internal/metrics"
	"github.com/ziadkadry99/foodee/internal/preview"
	"github.com/ziadkadry99/foodee/internal/render"
	"github.com/ziadkadry99/foodee/internal/renderlog"
	"github.com/ziadkadry99/foodee/internal/resolver"
	"github.com/ziadkadry99/foodee/internal/richtext"
	"github.com/ziadkadry99/foodee/internal/site"
	"github.com/ziadkadry99/foodee/internal/theme"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `foodee init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the stderr logger. --verbose forces debug level.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// pipeline is everything a command needs to render pages.
type pipeline struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *db.DB
	store    preview.Store
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	site     *site.Site
	shell    *site.Shell
	closers  []func() error
}

// Close releases the preview store and database.
func (p *pipeline) Close() error {
	var errs []error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// openDatabase opens the SQLite file shared by the preview store and the
// render log.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	database, err := db.Open(cfg.PreviewDatabase())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return database, nil
}

// openPreviewStore returns the configured preview store. The returned closer
// is never nil.
func openPreviewStore(ctx context.Context, cfg *config.Config, database *db.DB) (preview.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Preview.Backend {
	case config.PreviewNone:
		return nil, noop, nil
	case config.PreviewMemory:
		return preview.NewMemoryStore(), noop, nil
	case config.PreviewRedis:
		client, err := preview.NewRedisClient(ctx, cfg.Preview.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		return preview.NewRedisStore(client, cfg.Origin), client.Close, nil
	default:
		return preview.NewSQLiteStore(database, cfg.Origin), noop, nil
	}
}

// newFetcher picks the published content source.
func newFetcher(cfg *config.Config) resolver.Fetcher {
	if cfg.RemoteContent() {
		return resolver.NewHTTPFetcher(cfg.Content.URL, cfg.Content.Timeout)
	}
	return resolver.FileFetcher{Path: cfg.ContentPath()}
}

// newAssetChecker checks the theme script against its origin: a HEAD request
// for absolute URLs, the site directory otherwise.
func newAssetChecker(cfg *config.Config) theme.AssetChecker {
	script := strings.ToLower(cfg.Theme.Script)
	if strings.HasPrefix(script, "http://") || strings.HasPrefix(script, "https://") {
		return theme.HTTPChecker{BaseURL: cfg.Theme.Script}
	}
	return theme.DirChecker{Root: cfg.SiteDir}
}

// newRenderer applies the render.* toggles.
func newRenderer(cfg *config.Config, logger *slog.Logger) (*render.Renderer, error) {
	rt, err := richtext.New(richtext.Mode(cfg.Render.RichText))
	if err != nil {
		return nil, err
	}
	opts := []render.Option{render.WithRichText(rt), render.WithLogger(logger)}
	if cfg.Render.Carousel {
		opts = append(opts, render.WithCarousel(render.SwiperCarousel{}))
	}
	if cfg.Render.Modal {
		opts = append(opts, render.WithModalHost(render.BootstrapModal{}))
	}
	return render.New(opts...), nil
}

// buildPipeline wires config into a ready-to-run site.
func buildPipeline(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pipeline, error) {
	p := &pipeline{cfg: cfg, logger: logger, registry: prometheus.NewRegistry()}
	p.metrics = metrics.New(p.registry)

	database, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}
	p.db = database
	p.closers = append(p.closers, database.Close)

	store, closeStore, err := openPreviewStore(ctx, cfg, database)
	if err != nil {
		p.Close()
		return nil, err
	}
	p.store = store
	p.closers = append(p.closers, closeStore)

	resolverOpts := []resolver.Option{
		resolver.WithLogger(logger),
		resolver.WithMetrics(p.metrics),
	}
	if store != nil {
		resolverOpts = append(resolverOpts, resolver.WithStore(store))
	}
	res := resolver.New(newFetcher(cfg), resolverOpts...)

	renderer, err := newRenderer(cfg, logger)
	if err != nil {
		p.Close()
		return nil, err
	}

	loader := theme.NewLoader(cfg.Theme.Script, newAssetChecker(cfg), logger)

	p.site = site.New(res, renderer, loader,
		site.WithLogger(logger),
		site.WithMetrics(p.metrics),
		site.WithRecorder(renderlog.NewRecorder(renderlog.NewStore(database), logger)),
	)
	p.shell = site.NewShell(cfg.SiteDir, logger)
	return p, nil
}
