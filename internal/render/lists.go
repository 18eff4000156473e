package render

import (
	"strings"

	"github.com/ziadkadry99/foodee/internal/content"
	"github.com/ziadkadry99/foodee/internal/dom"
)

// Quotes rebuilds the testimonial list. A nil list leaves it untouched; an
// empty list clears it.
func (r *Renderer) Quotes(page *dom.Page, quotes []content.Quote) {
	list := page.ByID("quotes-list")
	tpl, ok := page.Template("quote-template")
	if list.Length() == 0 || !ok || quotes == nil {
		return
	}
	dom.Clear(list)
	for _, q := range quotes {
		frag := tpl.Instantiate()
		setText(frag.First(".quote-text"), q.Text)
		if q.Author != "" {
			setText(frag.First(".quote-author"), "— "+q.Author)
		}
		frag.AppendTo(list)
	}
}

// Menu writes the menu headings, rebuilds the menu sections and their items,
// and updates the call to action.
func (r *Renderer) Menu(page *dom.Page, menu *content.Menu) {
	if menu == nil {
		menu = &content.Menu{}
	}
	setText(page.ByID("menu-heading"), menu.Title)
	setText(page.ByID("menu-subheading"), menu.Subtitle)

	sections := page.ByID("menu-sections")
	sectionTpl, okSection := page.Template("menu-section-template")
	itemTpl, okItem := page.Template("menu-item-template")
	if sections.Length() > 0 && okSection && okItem && menu.Sections != nil {
		dom.Clear(sections)
		for _, section := range menu.Sections {
			frag := sectionTpl.Instantiate()
			if title := frag.First(".menu-section-title"); title.Length() > 0 {
				dom.SetText(title, section.Title)
				title.SetAttr("class", strings.TrimSpace("menu-section-title "+section.Style))
			}
			if items := frag.First(".menu-items"); items.Length() > 0 {
				dom.Clear(items)
				for _, item := range section.Items {
					itemFrag := itemTpl.Instantiate()
					setText(itemFrag.First(".menu-item-title"), item.Title)
					setText(itemFrag.First(".menu-item-description"), item.Description)
					setText(itemFrag.First(".menu-item-price"), item.Price.String())
					if img := itemFrag.First(".menu-item-image"); img.Length() > 0 && item.Image != "" {
						img.SetAttr("src", item.Image)
						alt := item.Title
						if alt == "" {
							alt = "Menu item"
						}
						img.SetAttr("alt", alt)
					}
					itemFrag.AppendTo(items)
				}
			}
			frag.AppendTo(sections)
		}
	}

	if cta := page.ByID("menu-cta"); cta.Length() > 0 && menu.CTA != nil {
		setText(cta, menu.CTA.Label)
		setAttr(cta, "href", menu.CTA.URL)
	}
}

// Events writes the events headings and rebuilds the event cards.
func (r *Renderer) Events(page *dom.Page, events *content.Events) {
	if events == nil {
		events = &content.Events{}
	}
	setText(page.ByID("events-heading"), events.Title)
	setText(page.ByID("events-subheading"), events.Subtitle)

	list := page.ByID("events-list")
	tpl, ok := page.Template("event-card-template")
	if list.Length() == 0 || !ok || events.Items == nil {
		return
	}
	dom.Clear(list)
	for _, ev := range events.Items {
		frag := tpl.Instantiate()
		setText(frag.First(".event-title"), ev.Title)
		setText(frag.First(".event-date"), ev.Date)
		setText(frag.First(".event-description"), ev.Description)
		if link := frag.First(".event-link"); link.Length() > 0 && ev.Link != nil {
			setText(link, ev.Link.Label)
			href := ev.Link.URL
			if href == "" {
				href = "#"
			}
			link.SetAttr("href", href)
		}
		frag.AppendTo(list)
	}
}
