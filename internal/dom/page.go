// Package dom wraps a parsed HTML page shell and provides the small set of
// mutations the section renderers need.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Page is a parsed page shell. A Page is not safe for concurrent use; each
// render works on its own Page.
type Page struct {
	doc       *goquery.Document
	templates map[string]*Template
}

// Parse reads an HTML document and snapshots every <template> element it
// contains.
func Parse(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	p := &Page{doc: doc, templates: make(map[string]*Template)}
	doc.Find("template[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		if _, dup := p.templates[id]; dup {
			return
		}
		p.templates[id] = newTemplate(id, s)
	})
	return p, nil
}

// ParseString is Parse for an in-memory document.
func ParseString(src string) (*Page, error) {
	return Parse(strings.NewReader(src))
}

// Document exposes the underlying goquery document.
func (p *Page) Document() *goquery.Document { return p.doc }

// ByID returns the first element with the given id outside of template
// content. The selection is empty when no such element exists.
func (p *Page) ByID(id string) *goquery.Selection {
	return p.All("#" + id).First()
}

// All returns every element matching selector, skipping template content the
// way querySelectorAll does in a browser.
func (p *Page) All(selector string) *goquery.Selection {
	return p.doc.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.ParentsFiltered("template").Length() == 0
	})
}

// Template returns the snapshot of the <template> element with the given id.
func (p *Page) Template(id string) (*Template, bool) {
	t, ok := p.templates[id]
	return t, ok
}

// Body returns the body element.
func (p *Page) Body() *goquery.Selection {
	return p.doc.Find("body").First()
}

// MarkPreview flags the page as showing preview content.
func (p *Page) MarkPreview() {
	p.SetBodyFlag("cms-preview")
}

// BodyFlag reports whether data-<name> is set on the body.
func (p *Page) BodyFlag(name string) bool {
	v, ok := p.Body().Attr("data-" + name)
	return ok && v != ""
}

// SetBodyFlag sets data-<name>="true" on the body.
func (p *Page) SetBodyFlag(name string) {
	p.Body().SetAttr("data-"+name, "true")
}

// SetTitle replaces the document title, adding a <title> to the head when the
// shell has none.
func (p *Page) SetTitle(title string) {
	t := p.doc.Find("head title").First()
	if t.Length() == 0 {
		head := p.doc.Find("head").First()
		head.AppendHtml("<title></title>")
		t = head.Find("title").First()
	}
	t.SetText(title)
}

// Title returns the current document title.
func (p *Page) Title() string {
	return p.doc.Find("head title").First().Text()
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	if len(p.doc.Nodes) == 0 {
		return nil
	}
	return html.Render(w, p.doc.Nodes[0])
}

// HTML returns the page as an HTML string.
func (p *Page) HTML() (string, error) {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
