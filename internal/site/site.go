// Package site runs the page pipeline: resolve content, render every
// section, tell listeners, then load the theme script.
package site

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ziadkadry99/foodee/internal/content"
	"github.com/ziadkadry99/foodee/internal/dom"
	"github.com/ziadkadry99/foodee/internal/metrics"
	"github.com/ziadkadry99/foodee/internal/render"
	"github.com/ziadkadry99/foodee/internal/resolver"
)

// State is a step of a page run.
type State int

const (
	StateLoading State = iota
	StateRendered
	StateThemeReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateThemeReady:
		return "theme-ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ContentResolver produces the content document for a page.
type ContentResolver interface {
	Resolve(ctx context.Context, flag resolver.PreviewFlag) (*resolver.Result, error)
}

// PageRenderer projects a document onto a page.
type PageRenderer interface {
	All(page *dom.Page, doc *content.Document) render.Result
}

// ThemeLoader adds the theme behaviour to a page.
type ThemeLoader interface {
	Load(ctx context.Context, page *dom.Page) error
}

// ContentReady is delivered to listeners once every section has rendered.
type ContentReady struct {
	Document   *content.Document
	Preview    bool
	Source     string
	RenderedAt time.Time
}

// Listener receives the completion notification.
type Listener interface {
	ContentReady(ctx context.Context, ev ContentReady) error
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ctx context.Context, ev ContentReady) error

// ContentReady implements Listener.
func (f ListenerFunc) ContentReady(ctx context.Context, ev ContentReady) error { return f(ctx, ev) }

// Recorder is given the outcome of every run, successful or not.
type Recorder interface {
	Record(ctx context.Context, out Outcome)
}

// Outcome reports what one run did.
type Outcome struct {
	State         State
	Result        *resolver.Result
	ContentErr    error
	ThemeErr      error
	Announcements []render.AnnouncementCard
	Started       time.Time
	Duration      time.Duration
}

// Rendered reports whether content was rendered onto the page.
func (o Outcome) Rendered() bool { return o.Result != nil }

// Site sequences one page run.
type Site struct {
	resolver  ContentResolver
	renderer  PageRenderer
	theme     ThemeLoader
	listeners []Listener
	recorders []Recorder
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures a Site.
type Option func(*Site)

// WithListener registers a completion listener.
func WithListener(l Listener) Option {
	return func(s *Site) { s.listeners = append(s.listeners, l) }
}

// WithRecorder registers a run recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Site) { s.recorders = append(s.recorders, r) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Site) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records run counters on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Site) { s.metrics = m }
}

// New creates a Site.
func New(res ContentResolver, renderer PageRenderer, theme ThemeLoader, opts ...Option) *Site {
	s := &Site{resolver: res, renderer: renderer, theme: theme, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run resolves content and renders it onto page, then loads the theme. A
// content failure is logged and skips rendering entirely; the theme is loaded
// either way. Run never fails: errors are reported in the Outcome.
func (s *Site) Run(ctx context.Context, page *dom.Page) Outcome {
	out := Outcome{State: StateLoading, Started: time.Now()}

	res, err := s.resolver.Resolve(ctx, page)
	if err != nil {
		out.ContentErr = err
		s.logger.Error("content could not be loaded", "error", err)
		s.metrics.IncrementContentFailure()
	} else {
		r := s.renderer.All(page, res.Document)
		out.Result = res
		out.Announcements = r.Announcements
		out.State = StateRendered
		s.metrics.IncrementRender(res.Source)
		s.logger.Debug("content rendered", "source", res.Source, "preview", res.Preview,
			"sections", res.Document.Sections())

		s.notify(ctx, ContentReady{
			Document:   res.Document,
			Preview:    res.Preview,
			Source:     res.Source,
			RenderedAt: time.Now(),
		})
	}

	if s.theme != nil {
		if err := s.theme.Load(ctx, page); err != nil {
			out.ThemeErr = err
			s.logger.Warn("theme script failed to load", "error", err)
			s.metrics.IncrementThemeFailure()
		}
	}
	out.State = StateThemeReady
	out.Duration = time.Since(out.Started)
	s.metrics.ObserveRenderDuration(out.Duration)

	for _, r := range s.recorders {
		r.Record(ctx, out)
	}
	return out
}

func (s *Site) notify(ctx context.Context, ev ContentReady) {
	for i, l := range s.listeners {
		if err := s.deliver(ctx, l, ev); err != nil {
			s.logger.Warn("content listener failed", "listener", i, "error", err)
		}
	}
}

func (s *Site) deliver(ctx context.Context, l Listener, ev ContentReady) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener panicked: %v", r)
		}
	}()
	return l.ContentReady(ctx, ev)
}
