package render

import (
	"strings"
	"unicode"

	"github.com/ziadkadry99/foodee/internal/content"
	"github.com/ziadkadry99/foodee/internal/dom"
)

// Contact writes the contact details.
func (r *Renderer) Contact(page *dom.Page, contact *content.Contact) {
	if contact == nil {
		contact = &content.Contact{}
	}
	setText(page.ByID("contact-heading"), contact.Title)
	setText(page.ByID("contact-subheading"), contact.Subtitle)
	r.setRich(page.ByID("contact-address"), contact.AddressHTML)

	if phone := page.ByID("contact-phone"); phone.Length() > 0 && contact.Phone != nil {
		label := contact.Phone.Label
		if label == "" {
			label = contact.Phone.Value
		}
		dom.SetText(phone, label)
		if contact.Phone.Value != "" {
			phone.SetAttr("href", "tel:"+stripSpace(contact.Phone.Value))
		}
	}

	if email := page.ByID("contact-email"); email.Length() > 0 && contact.Email != "" {
		dom.SetText(email, contact.Email)
		email.SetAttr("href", "mailto:"+contact.Email)
	}

	if site := page.ByID("contact-website"); site.Length() > 0 && contact.Website != nil {
		label := contact.Website.Label
		if label == "" {
			label = contact.Website.URL
		}
		dom.SetText(site, label)
		setAttr(site, "href", contact.Website.URL)
	}

	setAttr(page.ByID("contact-button"), "value", contact.ButtonLabel)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
