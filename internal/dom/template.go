package dom

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Template is an immutable copy of a <template> element's content taken when
// the page was parsed. Later changes to the page do not affect it.
type Template struct {
	id    string
	proto *goquery.Selection
}

func newTemplate(id string, s *goquery.Selection) *Template {
	host := newHost()
	for _, n := range s.Contents().Clone().Nodes {
		host.AppendChild(n)
	}
	return &Template{id: id, proto: goquery.NewDocumentFromNode(host).Selection}
}

// ID returns the template id.
func (t *Template) ID() string { return t.id }

// Instantiate returns a fresh, detached deep copy of the template content.
func (t *Template) Instantiate() *Fragment {
	host := newHost()
	for _, n := range t.proto.Contents().Clone().Nodes {
		host.AppendChild(n)
	}
	return &Fragment{root: goquery.NewDocumentFromNode(host).Selection}
}

// Fragment is detached markup built from a template or from a snippet, ready
// to be filled in and appended to the page.
type Fragment struct {
	root *goquery.Selection
}

// NewFragment parses an HTML snippet into a detached fragment.
func NewFragment(snippet string) *Fragment {
	host := newHost()
	f := &Fragment{root: goquery.NewDocumentFromNode(host).Selection}
	f.root.AppendHtml(snippet)
	return f
}

// Find searches the fragment content.
func (f *Fragment) Find(selector string) *goquery.Selection {
	return f.root.Find(selector)
}

// First returns the first element matching selector, or an empty selection.
func (f *Fragment) First(selector string) *goquery.Selection {
	return f.root.Find(selector).First()
}

// Nodes returns all top-level nodes of the fragment, text included.
func (f *Fragment) Nodes() *goquery.Selection {
	return f.root.Contents()
}

// AppendTo moves the fragment content to the end of target.
func (f *Fragment) AppendTo(target *goquery.Selection) {
	if target.Length() == 0 {
		return
	}
	target.AppendSelection(f.Nodes())
}

// newHost returns a detached element that parents fragment content. A
// template element is used so that any markup is accepted as its content.
func newHost() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "template", DataAtom: atom.Template}
}
