package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/foodee/internal/config"
	"github.com/ziadkadry99/foodee/internal/preview"
	"github.com/ziadkadry99/foodee/internal/resolver"
	"github.com/ziadkadry99/foodee/internal/theme"
)

func writeSite(t *testing.T, withTheme bool) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		t.Fatal(err)
	}
	doc := `{"site": {"brand": "Test Bistro"}, "about": {"heading": "About us"}}`
	if err := os.WriteFile(filepath.Join(dir, "data", "content.json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if withTheme {
		if err := os.MkdirAll(filepath.Join(dir, "js"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "js", "main.js"), []byte("// theme"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func testConfig(dir string, backend config.PreviewBackend) *config.Config {
	cfg := config.DefaultConfig()
	cfg.SiteDir = dir
	cfg.DataDir = filepath.Join(dir, ".foodee")
	cfg.Preview.Backend = backend
	return cfg
}

func TestBuildPipelineRendersPublishedContent(t *testing.T) {
	dir := writeSite(t, true)
	ctx := context.Background()

	p, err := buildPipeline(ctx, testConfig(dir, config.PreviewSQLite), slog.Default())
	if err != nil {
		t.Fatalf("buildPipeline: %v", err)
	}
	defer p.Close()

	page, err := p.shell.Page()
	if err != nil {
		t.Fatal(err)
	}
	out := p.site.Run(ctx, page)
	if !out.Rendered() {
		t.Fatalf("expected content to render, got error %v", out.ContentErr)
	}
	if out.Result.Source != "file" {
		t.Errorf("source: got %q, want file", out.Result.Source)
	}
	if out.ThemeErr != nil {
		t.Errorf("unexpected theme error: %v", out.ThemeErr)
	}
	if !page.BodyFlag(theme.LoadedFlag) {
		t.Error("theme flag not set")
	}

	if _, err := os.Stat(filepath.Join(dir, ".foodee", "foodee.db")); err != nil {
		t.Errorf("database not created: %v", err)
	}
}

func TestBuildPipelinePrefersPreview(t *testing.T) {
	dir := writeSite(t, true)
	ctx := context.Background()

	p, err := buildPipeline(ctx, testConfig(dir, config.PreviewMemory), slog.Default())
	if err != nil {
		t.Fatalf("buildPipeline: %v", err)
	}
	defer p.Close()

	if err := p.store.Set(ctx, preview.Key, `{"site": {"brand": "Draft"}}`); err != nil {
		t.Fatal(err)
	}
	page, err := p.shell.Page()
	if err != nil {
		t.Fatal(err)
	}
	out := p.site.Run(ctx, page)
	if !out.Rendered() {
		t.Fatalf("expected content to render, got error %v", out.ContentErr)
	}
	if !out.Result.Preview || out.Result.Source != resolver.SourcePreview {
		t.Errorf("expected preview result, got %+v", out.Result)
	}
}

func TestBuildPipelineWithoutPreviewStore(t *testing.T) {
	dir := writeSite(t, false)
	ctx := context.Background()

	p, err := buildPipeline(ctx, testConfig(dir, config.PreviewNone), slog.Default())
	if err != nil {
		t.Fatalf("buildPipeline: %v", err)
	}
	defer p.Close()

	if p.store != nil {
		t.Errorf("expected no preview store, got %T", p.store)
	}
	page, err := p.shell.Page()
	if err != nil {
		t.Fatal(err)
	}
	out := p.site.Run(ctx, page)
	if !out.Rendered() {
		t.Fatalf("expected content to render, got error %v", out.ContentErr)
	}
	if out.ThemeErr == nil {
		t.Error("expected a theme error for a missing script")
	}
}

func TestNewRendererRejectsUnknownRichText(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Render.RichText = "rst"
	if _, err := newRenderer(cfg, slog.Default()); err == nil {
		t.Fatal("expected an error for an unknown rich text mode")
	}
}

func TestNewAssetChecker(t *testing.T) {
	cfg := config.DefaultConfig()
	if _, ok := newAssetChecker(cfg).(theme.DirChecker); !ok {
		t.Errorf("relative script should use DirChecker, got %T", newAssetChecker(cfg))
	}
	cfg.Theme.Script = "https://cdn.example.com/main.js"
	if _, ok := newAssetChecker(cfg).(theme.HTTPChecker); !ok {
		t.Errorf("absolute script should use HTTPChecker, got %T", newAssetChecker(cfg))
	}
}
