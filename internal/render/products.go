package render

import (
	"net/url"

	"github.com/ziadkadry99/foodee/internal/content"
	"github.com/ziadkadry99/foodee/internal/dom"
)

// ProductCarouselSelector selects the slider container of the product section.
const ProductCarouselSelector = ".product-swiper"

const productSlideHTML = `<div class="swiper-slide"><div class="product-slide">` +
	`<div class="product-slide-image"></div>` +
	`<div class="product-slide-content">` +
	`<h3></h3><div class="product-price"></div><p></p>` +
	`<a class="btn-details">View Details</a>` +
	`</div></div></div>`

// Products writes the product headings, rebuilds the slides and mounts the
// product carousel over them.
func (r *Renderer) Products(page *dom.Page, products *content.Products) {
	if products == nil {
		products = &content.Products{}
	}
	setText(page.ByID("products-heading"), products.Title)
	setText(page.ByID("products-subheading"), products.Subtitle)

	slides := page.ByID("product-slides")
	if slides.Length() == 0 || products.Items == nil {
		return
	}

	r.logger.Debug("rendering products", "items", len(products.Items))
	dom.Clear(slides)
	for _, p := range products.Items {
		frag := dom.NewFragment(productSlideHTML)
		setBackground(frag.First(".product-slide-image"), p.Image)
		setText(frag.First("h3"), p.Title)
		setText(frag.First(".product-price"), p.Price.String())
		setText(frag.First(".product-slide-content p"), p.Description)
		frag.First("a.btn-details").SetAttr("href", "product-detail.html?id="+url.QueryEscape(p.ID.String()))
		frag.AppendTo(slides)
	}

	if err := r.carousel.Mount(page, ProductCarouselSelector, ProductCarouselConfig()); err != nil {
		r.logger.Warn("product carousel could not be mounted", "error", err)
	}
}
