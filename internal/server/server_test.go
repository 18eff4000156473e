package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ziadkadry99/foodee/internal/config"
	"github.com/ziadkadry99/foodee/internal/db"
	"github.com/ziadkadry99/foodee/internal/metrics"
	"github.com/ziadkadry99/foodee/internal/render"
	"github.com/ziadkadry99/foodee/internal/renderlog"
	"github.com/ziadkadry99/foodee/internal/resolver"
	"github.com/ziadkadry99/foodee/internal/site"
	"github.com/ziadkadry99/foodee/internal/theme"
)

const contentJSON = `{
	"site": {"brand": "Foodee Test"},
	"announcements": {"items": [
		{"title": "Older", "date": "2024-01-01"},
		{"title": "Newest", "date": "2024-05-01", "body": "<p>Open late</p>"}
	]}
}`

type fixture struct {
	dir      string
	server   *Server
	registry *prometheus.Registry
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func setup(t *testing.T, content string) fixture {
	t.Helper()
	dir := t.TempDir()
	if content != "" {
		writeFile(t, filepath.Join(dir, "data", "content.json"), content)
	}
	writeFile(t, filepath.Join(dir, "js", "main.js"), "// theme")
	writeFile(t, filepath.Join(dir, "css", "style.css"), "body {}")
	writeFile(t, filepath.Join(dir, "secret.txt"), "nope")
	writeFile(t, filepath.Join(dir, ".env"), "TOKEN=x")

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	reg := prometheus.NewRegistry()
	runner := site.New(
		resolver.New(resolver.FileFetcher{Path: filepath.Join(dir, "data", "content.json")}),
		render.New(render.WithModalHost(render.BootstrapModal{})),
		theme.NewLoader("js/main.js", theme.DirChecker{Root: dir}, nil),
		site.WithMetrics(metrics.New(reg)),
		site.WithRecorder(renderlog.NewRecorder(renderlog.NewStore(database), nil)),
	)

	srv := New(Config{SiteDir: dir, Static: config.DefaultStatic},
		site.NewShell(dir, nil), runner,
		WithDatabase(database), WithGatherer(reg))
	return fixture{dir: dir, server: srv, registry: reg}
}

func (f fixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	f.server.Router().ServeHTTP(w, req)
	return w
}

func parse(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	return doc
}

func TestHealthCheck(t *testing.T) {
	f := setup(t, contentJSON)
	w := f.get(t, "/healthz")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	f := setup(t, contentJSON)
	srv := New(Config{AllowAll: true}, f.server.shell, f.server.runner)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestPageRendersContent(t *testing.T) {
	f := setup(t, contentJSON)
	w := f.get(t, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Cache-Control"); got != "no-cache" {
		t.Errorf("Cache-Control = %q, want no-cache", got)
	}
	if w.Header().Get(ContentStatusHeader) != "" {
		t.Errorf("unexpected %s header", ContentStatusHeader)
	}

	doc := parse(t, w)
	if got := doc.Find("[data-brand]").Text(); got != "Foodee Test" {
		t.Errorf("brand = %q, want %q", got, "Foodee Test")
	}
	titles := doc.Find("#announcement-list h3")
	if titles.Length() != 2 || titles.First().Text() != "Newest" {
		t.Errorf("unexpected announcement order: %q", titles.Text())
	}
	if doc.Find(`body script[src="js/main.js"]`).Length() != 1 {
		t.Error("expected theme script to be loaded once")
	}
	if doc.Find("#announcementModal.in").Length() != 0 {
		t.Error("modal should be closed without ?announcement")
	}
}

func TestPageOpensAnnouncement(t *testing.T) {
	f := setup(t, contentJSON)
	doc := parse(t, f.get(t, "/?announcement=0"))

	if doc.Find("#announcementModal.in").Length() != 1 {
		t.Fatal("expected the announcement modal to be open")
	}
	if got := doc.Find("#announcementModalLabel").Text(); got != "Newest" {
		t.Errorf("modal title = %q, want %q", got, "Newest")
	}
	if got := doc.Find("#announcementModalBody p").Text(); got != "Open late" {
		t.Errorf("modal body = %q, want %q", got, "Open late")
	}

	for _, q := range []string{"/?announcement=7", "/?announcement=-1", "/?announcement=x"} {
		if parse(t, f.get(t, q)).Find("#announcementModal.in").Length() != 0 {
			t.Errorf("%s: modal should stay closed", q)
		}
	}
}

func TestPageWithoutContentKeepsShell(t *testing.T) {
	f := setup(t, "")
	w := f.get(t, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get(ContentStatusHeader); got != "unavailable" {
		t.Errorf("%s = %q, want unavailable", ContentStatusHeader, got)
	}
	doc := parse(t, w)
	if got := doc.Find("#hero-title").Text(); got != "Foodee" {
		t.Errorf("hero title = %q, want the shell default", got)
	}
	if doc.Find(`script[src="js/main.js"]`).Length() != 1 {
		t.Error("theme script should load even without content")
	}
}

func TestStaticAllowlist(t *testing.T) {
	f := setup(t, contentJSON)

	w := f.get(t, "/css/style.css")
	if w.Code != http.StatusOK {
		t.Fatalf("css: expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Cache-Control"); got != "no-cache" {
		t.Errorf("Cache-Control = %q, want no-cache", got)
	}
	if w.Body.String() != "body {}" {
		t.Errorf("unexpected css body %q", w.Body.String())
	}

	for _, target := range []string{"/secret.txt", "/.env", "/css/missing.css", "/css", "/../secret.txt"} {
		if w := f.get(t, target); w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", target, w.Code)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	f := setup(t, contentJSON)
	f.get(t, "/")

	w := f.get(t, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `foodee_renders_total{source="file"} 1`) {
		t.Errorf("render counter missing from metrics output:\n%s", w.Body.String())
	}
}

func TestRenderLogEndpoint(t *testing.T) {
	f := setup(t, contentJSON)
	f.get(t, "/")
	f.get(t, "/")

	w := f.get(t, "/api/renders?outcome=rendered")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var entries []renderlog.Entry
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 render log entries, got %d", len(entries))
	}
	if entries[0].Source != "file" || entries[0].Announcements != 2 {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestShutdownWithoutStart(t *testing.T) {
	f := setup(t, contentJSON)
	if err := f.server.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
