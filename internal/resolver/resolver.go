// Package resolver decides where a page's content comes from: a stored
// preview override when one parses, the published content otherwise.
package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ziadkadry99/foodee/internal/content"
	"github.com/ziadkadry99/foodee/internal/metrics"
	"github.com/ziadkadry99/foodee/internal/preview"
)

// SourcePreview is the Result.Source of content taken from the preview store.
const SourcePreview = "preview"

// PreviewFlag is told when preview content is in use.
type PreviewFlag interface {
	MarkPreview()
}

// Fetcher loads the published content document.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
	// Source is the kind of fetcher, "http" or "file".
	Source() string
	// Location is the URL or path being read.
	Location() string
}

// Result is a resolved content document.
type Result struct {
	Document *content.Document
	Preview  bool
	Source   string
}

// Resolver produces the content document for one page load.
type Resolver struct {
	fetcher Fetcher
	store   preview.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithStore enables preview overrides read from store.
func WithStore(store preview.Store) Option {
	return func(r *Resolver) { r.store = store }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records discarded previews on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Resolver) { r.metrics = m }
}

// New creates a Resolver that reads published content through fetcher.
func New(fetcher Fetcher, opts ...Option) *Resolver {
	r := &Resolver{fetcher: fetcher, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the preview document when the store holds a parsable one,
// marking flag, and otherwise fetches the published document once. A preview
// entry that does not parse is deleted from the store before falling back.
// Every failure on the published path matches content.ErrContentFetch.
func (r *Resolver) Resolve(ctx context.Context, flag PreviewFlag) (*Result, error) {
	if doc, ok := r.fromPreview(ctx); ok {
		if flag != nil {
			flag.MarkPreview()
		}
		return &Result{Document: doc, Preview: true, Source: SourcePreview}, nil
	}

	data, err := r.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := content.Parse(data)
	if err != nil {
		return nil, &content.FetchError{Source: r.fetcher.Location(), Err: err}
	}
	for _, issue := range doc.Issues {
		r.logger.Warn("content section skipped", "section", issue.Section, "error", issue.Err)
	}
	return &Result{Document: doc, Source: r.fetcher.Source()}, nil
}

func (r *Resolver) fromPreview(ctx context.Context) (*content.Document, bool) {
	if r.store == nil {
		return nil, false
	}
	raw, ok, err := r.store.Get(ctx, preview.Key)
	if err != nil {
		r.logger.Warn("preview store unavailable", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	doc, err := parsePreview(raw)
	if err == nil {
		return doc, true
	}

	r.logger.Warn("discarding malformed preview content", "error", err)
	r.metrics.IncrementPreviewDiscarded()
	if err := r.store.Delete(ctx, preview.Key); err != nil {
		r.logger.Warn("removing malformed preview content", "error", err)
	}
	return nil, false
}

func parsePreview(raw string) (*content.Document, error) {
	doc, err := content.Parse([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", content.ErrPreviewParse, err)
	}
	return doc, nil
}
