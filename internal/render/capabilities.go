package render

import (
	"encoding/json"
	"fmt"

	"github.com/ziadkadry99/foodee/internal/dom"
)

// Carousel binds a slider widget to the slides rendered under selector.
type Carousel interface {
	Mount(page *dom.Page, selector string, cfg CarouselConfig) error
}

// ModalHost displays the modal element with the given id.
type ModalHost interface {
	Show(page *dom.Page, id string)
}

// CarouselConfig mirrors the options object handed to the slider widget.
type CarouselConfig struct {
	SlidesPerView int                `json:"slidesPerView"`
	SpaceBetween  int                `json:"spaceBetween"`
	Loop          bool               `json:"loop"`
	Autoplay      *Autoplay          `json:"autoplay,omitempty"`
	Pagination    *Pagination        `json:"pagination,omitempty"`
	Navigation    *Navigation        `json:"navigation,omitempty"`
	Breakpoints   map[int]Breakpoint `json:"breakpoints,omitempty"`
}

type Autoplay struct {
	Delay                int  `json:"delay"`
	DisableOnInteraction bool `json:"disableOnInteraction"`
}

type Pagination struct {
	El        string `json:"el"`
	Clickable bool   `json:"clickable"`
}

type Navigation struct {
	NextEl string `json:"nextEl"`
	PrevEl string `json:"prevEl"`
}

// Breakpoint overrides settings from a minimum viewport width upwards.
type Breakpoint struct {
	SlidesPerView int `json:"slidesPerView"`
}

// ProductCarouselConfig is the slider configuration for the product section:
// one slide on phones, two from 640px and three from 1024px, looping with a
// four second autoplay.
func ProductCarouselConfig() CarouselConfig {
	return CarouselConfig{
		SlidesPerView: 1,
		SpaceBetween:  30,
		Loop:          true,
		Autoplay:      &Autoplay{Delay: 4000, DisableOnInteraction: false},
		Pagination:    &Pagination{El: ".swiper-pagination", Clickable: true},
		Navigation:    &Navigation{NextEl: ".swiper-button-next", PrevEl: ".swiper-button-prev"},
		Breakpoints: map[int]Breakpoint{
			640:  {SlidesPerView: 2},
			1024: {SlidesPerView: 3},
		},
	}
}

// SwiperConfigAttr carries the serialized carousel options on the container.
const SwiperConfigAttr = "data-swiper-config"

// SwiperCarousel hands the configuration to the Swiper bootstrap script by
// writing it onto the container. Mounting again replaces the previous
// configuration, so a container is never initialised twice.
type SwiperCarousel struct{}

// Mount implements Carousel.
func (SwiperCarousel) Mount(page *dom.Page, selector string, cfg CarouselConfig) error {
	containers := page.All(selector)
	if containers.Length() == 0 {
		return nil
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding carousel config: %w", err)
	}
	containers.SetAttr(SwiperConfigAttr, string(data))
	return nil
}

// NoCarousel is used when no slider widget is available.
type NoCarousel struct{}

// Mount implements Carousel.
func (NoCarousel) Mount(*dom.Page, string, CarouselConfig) error { return nil }

// BootstrapModal opens a Bootstrap 3 modal the way $(el).modal('show') leaves
// the markup.
type BootstrapModal struct{}

// Show implements ModalHost.
func (BootstrapModal) Show(page *dom.Page, id string) {
	el := page.ByID(id)
	if el.Length() == 0 {
		return
	}
	el.AddClass("in")
	el.SetAttr("aria-hidden", "false")
	dom.SetStyle(el, "display", "block")
	page.Body().AddClass("modal-open")
}

// NoModal is used when no modal mechanism is available.
type NoModal struct{}

// Show implements ModalHost.
func (NoModal) Show(*dom.Page, string) {}
