package content

// Document is the full content of the site, as published in content.json or
// stored as a preview override. Every section is optional: a nil section means
// the page keeps whatever markup it already has for that region.
type Document struct {
	Site          *SiteMeta      `json:"site,omitempty"`
	Hero          *Hero          `json:"hero,omitempty"`
	About         *About         `json:"about,omitempty"`
	Announcements *Announcements `json:"announcements,omitempty"`
	Products      *Products      `json:"products,omitempty"`
	Quotes        []Quote        `json:"quotes,omitempty"`
	Menu          *Menu          `json:"menu,omitempty"`
	Events        *Events        `json:"events,omitempty"`
	Contact       *Contact       `json:"contact,omitempty"`

	// Issues lists sections that were present but could not be decoded.
	Issues []Issue `json:"-"`
}

// Issue records a section dropped during parsing.
type Issue struct {
	Section string
	Err     error
}

// SiteMeta holds brand and navigation labels.
type SiteMeta struct {
	Brand string     `json:"brand"`
	Title string     `json:"title"`
	Nav   []NavEntry `json:"nav"`
}

// NavEntry relabels the navigation link for one page section.
type NavEntry struct {
	Section string `json:"section"`
	Label   string `json:"label"`
}

type Hero struct {
	Title        string  `json:"title"`
	SubtitleHTML string  `json:"subtitleHtml"`
	Slides       []Slide `json:"slides"`
}

type Slide struct {
	Image         string `json:"image"`
	ParallaxRatio Text   `json:"parallaxRatio"`
}

type About struct {
	Heading  string `json:"heading"`
	BodyHTML string `json:"bodyHtml"`
	CTA      *Link  `json:"cta"`
	Image    string `json:"image"`
}

// Link is a labelled URL used for calls to action.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Announcement is one news item. Body is trusted rich text.
type Announcement struct {
	Title       string       `json:"title"`
	Date        string       `json:"date"`
	Summary     string       `json:"summary"`
	Body        string       `json:"body"`
	Image       string       `json:"image"`
	Attachments []Attachment `json:"attachments"`
}

type Attachment struct {
	URL   string `json:"url"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type Products struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Items    []Product `json:"items"`
}

type Product struct {
	ID          Text   `json:"id"`
	Title       string `json:"title"`
	Price       Text   `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

type Menu struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Sections []MenuSection `json:"sections"`
	CTA      *Link         `json:"cta"`
}

type MenuSection struct {
	Title string     `json:"title"`
	Style string     `json:"style"`
	Items []MenuItem `json:"items"`
}

type MenuItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       Text   `json:"price"`
	Image       string `json:"image"`
}

type Events struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Items    []Event `json:"items"`
}

type Event struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Link        *Link  `json:"link"`
}

type Contact struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	AddressHTML string `json:"addressHtml"`
	Phone       *Phone `json:"phone"`
	Email       string `json:"email"`
	Website     *Link  `json:"website"`
	ButtonLabel string `json:"buttonLabel"`
}

// Phone pairs a display label with the dialable value.
type Phone struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
