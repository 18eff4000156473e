package render

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/foodee/internal/content"
	"github.com/ziadkadry99/foodee/internal/dom"
)

// SiteMeta writes the brand, the document title and the navigation labels.
func (r *Renderer) SiteMeta(page *dom.Page, site *content.SiteMeta) {
	if site == nil {
		site = &content.SiteMeta{}
	}
	if site.Brand != "" {
		page.All("[data-brand]").Each(func(_ int, s *goquery.Selection) {
			dom.SetText(s, site.Brand)
		})
	}
	if site.Title != "" {
		page.SetTitle(site.Title)
	}
	for _, item := range site.Nav {
		link := page.All(fmt.Sprintf("[data-nav-section=%q][data-nav-label]", item.Section)).First()
		setText(link, item.Label)
	}
}

// Hero writes the hero title, subtitle and rebuilds the slide list.
func (r *Renderer) Hero(page *dom.Page, hero *content.Hero) {
	if hero == nil {
		hero = &content.Hero{}
	}
	setText(page.ByID("hero-title"), hero.Title)
	r.setRich(page.ByID("hero-subtitle"), hero.SubtitleHTML)

	slides := page.ByID("hero-slides")
	tpl, ok := page.Template("hero-slide-template")
	if slides.Length() == 0 || !ok || hero.Slides == nil {
		return
	}
	dom.Clear(slides)
	for _, slide := range hero.Slides {
		frag := tpl.Instantiate()
		li := frag.First("li")
		if li.Length() > 0 && slide.Image != "" {
			setBackground(li, slide.Image)
			setAttr(li, "data-stellar-background-ratio", slide.ParallaxRatio.String())
		}
		frag.AppendTo(slides)
	}
}

// About writes the about section.
func (r *Renderer) About(page *dom.Page, about *content.About) {
	if about == nil {
		about = &content.About{}
	}
	setText(page.ByID("about-heading"), about.Heading)
	r.setRich(page.ByID("about-description"), about.BodyHTML)

	if cta := page.ByID("about-cta"); cta.Length() > 0 && about.CTA != nil {
		setText(cta, about.CTA.Label)
		setAttr(cta, "href", about.CTA.URL)
	}
	setBackground(page.ByID("about-image"), about.Image)
}
