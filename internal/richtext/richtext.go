// Package richtext turns the rich-text fields of a content document into the
// HTML that is written into the page.
package richtext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Mode selects how rich-text fields are interpreted.
type Mode string

const (
	// ModeHTML passes the field through untouched. Content is trusted.
	ModeHTML Mode = "html"
	// ModeMarkdown converts Markdown to HTML. Inline and block HTML written by
	// the editor is kept as-is.
	ModeMarkdown Mode = "markdown"
)

// Renderer converts rich-text fields to HTML.
type Renderer struct {
	mode Mode
	md   goldmark.Markdown
}

// New returns a Renderer for the given mode. An empty mode means ModeHTML.
func New(mode Mode) (*Renderer, error) {
	switch mode {
	case "", ModeHTML:
		return &Renderer{mode: ModeHTML}, nil
	case ModeMarkdown:
		md := goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		)
		return &Renderer{mode: mode, md: md}, nil
	default:
		return nil, fmt.Errorf("unknown rich text mode %q", mode)
	}
}

// Mode reports the renderer's mode.
func (r *Renderer) Mode() Mode {
	if r == nil {
		return ModeHTML
	}
	return r.mode
}

// HTML returns the HTML for src. A nil Renderer behaves as ModeHTML. If
// Markdown conversion fails the source is returned unchanged.
func (r *Renderer) HTML(src string) string {
	if r == nil || r.md == nil || src == "" {
		return src
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return src
	}
	return strings.TrimSpace(buf.String())
}
