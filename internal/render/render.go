// Package render projects the sections of a content document onto a page
// shell. Each section renderer is independent: it only touches its own
// regions, tolerates a nil section and missing elements, and only overwrites
// a region when the matching field has a value.
package render

import (
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/foodee/internal/content"
	"github.com/ziadkadry99/foodee/internal/dom"
	"github.com/ziadkadry99/foodee/internal/richtext"
)

// Renderer holds the optional capabilities the section renderers use.
type Renderer struct {
	carousel Carousel
	modal    ModalHost
	rich     *richtext.Renderer
	logger   *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCarousel sets the carousel used for the product slides.
func WithCarousel(c Carousel) Option {
	return func(r *Renderer) {
		if c != nil {
			r.carousel = c
		}
	}
}

// WithModalHost sets the mechanism that displays the announcement modal.
func WithModalHost(m ModalHost) Option {
	return func(r *Renderer) {
		if m != nil {
			r.modal = m
		}
	}
}

// WithRichText sets how rich-text fields are converted to HTML.
func WithRichText(rt *richtext.Renderer) Option {
	return func(r *Renderer) { r.rich = rt }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns a Renderer. Without options it has no carousel and no modal
// host, and passes rich text through unchanged.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		carousel: NoCarousel{},
		modal:    NoModal{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result reports what a full render produced.
type Result struct {
	Announcements []AnnouncementCard
}

// All renders every section of doc in page order: site, hero, about,
// announcements, products, quotes, menu, events, contact.
func (r *Renderer) All(page *dom.Page, doc *content.Document) Result {
	r.SiteMeta(page, doc.Site)
	r.Hero(page, doc.Hero)
	r.About(page, doc.About)
	cards := r.Announcements(page, doc.Announcements)
	r.Products(page, doc.Products)
	r.Quotes(page, doc.Quotes)
	r.Menu(page, doc.Menu)
	r.Events(page, doc.Events)
	r.Contact(page, doc.Contact)
	return Result{Announcements: cards}
}

func setText(s *goquery.Selection, v string) {
	if v != "" && s.Length() > 0 {
		dom.SetText(s, v)
	}
}

func (r *Renderer) setRich(s *goquery.Selection, v string) {
	if v != "" && s.Length() > 0 {
		dom.SetHTML(s, r.rich.HTML(v))
	}
}

func setAttr(s *goquery.Selection, name, v string) {
	if v != "" && s.Length() > 0 {
		s.SetAttr(name, v)
	}
}

func setBackground(s *goquery.Selection, url string) {
	if url != "" && s.Length() > 0 {
		dom.SetStyle(s, "background-image", dom.BackgroundImage(url))
	}
}
