package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Parse decodes a content document. The input must be a JSON object; each
// known section is decoded on its own so a malformed section is dropped and
// reported in Document.Issues without affecting its siblings.
func Parse(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding content document: %w", err)
	}
	if raw == nil {
		return nil, errors.New("decoding content document: document is null")
	}

	doc := &Document{}
	doc.Site = decodeSection[SiteMeta](doc, raw, "site")
	doc.Hero = decodeSection[Hero](doc, raw, "hero")
	doc.About = decodeSection[About](doc, raw, "about")
	doc.Announcements = decodeSection[Announcements](doc, raw, "announcements")
	doc.Products = decodeSection[Products](doc, raw, "products")
	if q := decodeSection[[]Quote](doc, raw, "quotes"); q != nil {
		doc.Quotes = *q
		if doc.Quotes == nil {
			doc.Quotes = []Quote{}
		}
	}
	doc.Menu = decodeSection[Menu](doc, raw, "menu")
	doc.Events = decodeSection[Events](doc, raw, "events")
	doc.Contact = decodeSection[Contact](doc, raw, "contact")
	return doc, nil
}

func decodeSection[T any](doc *Document, raw map[string]json.RawMessage, name string) *T {
	msg, ok := raw[name]
	if !ok || bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
		return nil
	}
	v := new(T)
	if err := json.Unmarshal(msg, v); err != nil {
		doc.Issues = append(doc.Issues, Issue{Section: name, Err: err})
		return nil
	}
	return v
}

// Sections returns the names of the sections present in the document, in
// rendering order.
func (d *Document) Sections() []string {
	if d == nil {
		return nil
	}
	var out []string
	add := func(present bool, name string) {
		if present {
			out = append(out, name)
		}
	}
	add(d.Site != nil, "site")
	add(d.Hero != nil, "hero")
	add(d.About != nil, "about")
	add(d.Announcements != nil, "announcements")
	add(d.Products != nil, "products")
	add(d.Quotes != nil, "quotes")
	add(d.Menu != nil, "menu")
	add(d.Events != nil, "events")
	add(d.Contact != nil, "contact")
	return out
}
