package site

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/foodee/internal/content"
	"github.com/ziadkadry99/foodee/internal/dom"
	"github.com/ziadkadry99/foodee/internal/preview"
	"github.com/ziadkadry99/foodee/internal/render"
	"github.com/ziadkadry99/foodee/internal/resolver"
	"github.com/ziadkadry99/foodee/internal/theme"
)

type countingRenderer struct {
	inner *render.Renderer
	calls int
}

func (c *countingRenderer) All(page *dom.Page, doc *content.Document) render.Result {
	c.calls++
	return c.inner.All(page, doc)
}

type fakeTheme struct {
	err   error
	calls int
}

func (f *fakeTheme) Load(context.Context, *dom.Page) error {
	f.calls++
	return f.err
}

type recorderFunc func(ctx context.Context, out Outcome)

func (f recorderFunc) Record(ctx context.Context, out Outcome) { f(ctx, out) }

func defaultPage(t *testing.T) *dom.Page {
	t.Helper()
	page, err := NewShell("", nil).Page()
	require.NoError(t, err)
	return page
}

func contentServer(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestRunRendersAndNotifies(t *testing.T) {
	url := contentServer(t, http.StatusOK, `{
		"site": {"brand": "Foodee Test"},
		"quotes": [{"text": "Great food", "author": "A"}],
		"announcements": [{"title": "One", "date": "2024-01-01"}]
	}`)
	rend := &countingRenderer{inner: render.New()}
	th := &fakeTheme{}

	var events []ContentReady
	var recorded []Outcome
	s := New(resolver.New(resolver.NewHTTPFetcher(url, time.Second)), rend, th,
		WithListener(ListenerFunc(func(_ context.Context, ev ContentReady) error {
			events = append(events, ev)
			return nil
		})),
		WithRecorder(recorderFunc(func(_ context.Context, out Outcome) {
			recorded = append(recorded, out)
		})),
	)

	page := defaultPage(t)
	out := s.Run(context.Background(), page)

	assert.Equal(t, StateThemeReady, out.State)
	assert.True(t, out.Rendered())
	assert.NoError(t, out.ContentErr)
	assert.NoError(t, out.ThemeErr)
	assert.Len(t, out.Announcements, 1)
	assert.Equal(t, 1, rend.calls)
	assert.Equal(t, 1, th.calls)

	require.Len(t, events, 1)
	assert.Same(t, out.Result.Document, events[0].Document)
	assert.Equal(t, "http", events[0].Source)
	assert.False(t, events[0].Preview)

	require.Len(t, recorded, 1)
	assert.Equal(t, "Foodee Test", page.All("[data-brand]").Text())
	assert.Equal(t, "— A", page.All("#quotes-list .quote-author").Text())
}

func TestRunFetchFailureSkipsRendering(t *testing.T) {
	url := contentServer(t, http.StatusInternalServerError, "")
	rend := &countingRenderer{inner: render.New()}
	th := &fakeTheme{}
	notified := false

	s := New(resolver.New(resolver.NewHTTPFetcher(url, time.Second)), rend, th,
		WithListener(ListenerFunc(func(context.Context, ContentReady) error {
			notified = true
			return nil
		})))

	page := defaultPage(t)
	before, err := page.HTML()
	require.NoError(t, err)

	out := s.Run(context.Background(), page)

	assert.ErrorIs(t, out.ContentErr, content.ErrContentFetch)
	assert.False(t, out.Rendered())
	assert.Equal(t, StateThemeReady, out.State)
	assert.Zero(t, rend.calls, "no renderer may run after a failed load")
	assert.False(t, notified)
	assert.Equal(t, 1, th.calls, "theme loads regardless of content")

	after, err := page.HTML()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRunThemeFailureKeepsRendering(t *testing.T) {
	url := contentServer(t, http.StatusOK, `{"hero": {"title": "Welcome"}}`)
	th := &fakeTheme{err: &theme.LoadError{Script: "js/main.js", Err: errors.New("404")}}

	page := defaultPage(t)
	out := New(resolver.New(resolver.NewHTTPFetcher(url, time.Second)), render.New(), th).Run(context.Background(), page)

	assert.True(t, out.Rendered())
	assert.ErrorIs(t, out.ThemeErr, theme.ErrThemeLoad)
	assert.Equal(t, StateThemeReady, out.State)
	assert.Equal(t, "Welcome", page.ByID("hero-title").Text())
}

func TestRunWithPreviewMarksPage(t *testing.T) {
	store := preview.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), preview.Key, `{"hero": {"title": "Draft"}}`))
	fetcher := resolver.FileFetcher{Path: filepath.Join(t.TempDir(), "missing.json")}

	var got ContentReady
	s := New(resolver.New(fetcher, resolver.WithStore(store)), render.New(), nil,
		WithListener(ListenerFunc(func(_ context.Context, ev ContentReady) error {
			got = ev
			return nil
		})))

	page := defaultPage(t)
	out := s.Run(context.Background(), page)

	require.NoError(t, out.ContentErr)
	assert.True(t, got.Preview)
	assert.Equal(t, resolver.SourcePreview, got.Source)
	assert.True(t, page.BodyFlag("cms-preview"))
	assert.Equal(t, "Draft", page.ByID("hero-title").Text())
}

func TestListenerPanicIsContained(t *testing.T) {
	url := contentServer(t, http.StatusOK, `{}`)
	second := false
	s := New(resolver.New(resolver.NewHTTPFetcher(url, time.Second)), render.New(), nil,
		WithListener(ListenerFunc(func(context.Context, ContentReady) error { panic("boom") })),
		WithListener(ListenerFunc(func(context.Context, ContentReady) error {
			second = true
			return errors.New("ignored")
		})),
	)

	var out Outcome
	require.NotPanics(t, func() { out = s.Run(context.Background(), defaultPage(t)) })
	assert.True(t, out.Rendered())
	assert.True(t, second)
}

func TestRunWithRealThemeLoadsOnce(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "main.js"), nil, 0o644))
	url := contentServer(t, http.StatusOK, `{}`)

	s := New(resolver.New(resolver.NewHTTPFetcher(url, time.Second)), render.New(),
		theme.NewLoader("", theme.DirChecker{Root: dir}, nil))

	page := defaultPage(t)
	s.Run(context.Background(), page)
	s.Run(context.Background(), page)

	assert.Equal(t, 1, page.All(`script[src="js/main.js"]`).Length())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "rendered", StateRendered.String())
	assert.Equal(t, "theme-ready", StateThemeReady.String())
}
