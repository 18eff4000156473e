package render

import (
	"fmt"

	"github.com/ziadkadry99/foodee/internal/content"
	"github.com/ziadkadry99/foodee/internal/dom"
)

// MaxAnnouncements is the number of cards shown on the page.
const MaxAnnouncements = 5

const (
	emptyAnnouncementsHTML = `<div class="col-md-12"><p>Şu an duyuru bulunmuyor.</p></div>`

	announcementCardHTML = `<div class="col-md-4 col-sm-6">` +
		`<div class="fh5co-event" style="cursor:pointer;">` +
		`<h3></h3><span class="fh5co-event-meta"></span><p class="fh5co-event-summary"></p>` +
		`<p><a href="#" class="btn-details-ann">Detay</a></p>` +
		`</div></div>`

	defaultModalTitle = "Duyuru"

	// AnnouncementModalID is the id of the shared announcement modal.
	AnnouncementModalID = "announcementModal"
)

// AnnouncementCard is one rendered announcement. Click projects the full
// announcement into the modal, as selecting the card on the page does.
type AnnouncementCard struct {
	Index int
	Item  *content.Announcement
	open  func()
}

// Click opens the announcement modal for this card.
func (c AnnouncementCard) Click() {
	if c.open != nil {
		c.open()
	}
}

// Announcements rebuilds the announcement list: newest first, at most
// MaxAnnouncements cards. With no announcements a placeholder is shown and the
// "show more" link is hidden. A nil section counts as empty.
func (r *Renderer) Announcements(page *dom.Page, ann *content.Announcements) []AnnouncementCard {
	list := page.ByID("announcement-list")
	if list.Length() == 0 {
		return nil
	}
	more := page.ByID("announcements-more")

	sorted := ann.Sorted()
	if len(sorted) == 0 {
		dom.SetHTML(list, emptyAnnouncementsHTML)
		if more.Length() > 0 {
			dom.SetStyle(more, "display", "none")
		}
		return nil
	}

	shown := sorted
	if len(shown) > MaxAnnouncements {
		shown = shown[:MaxAnnouncements]
	}

	dom.Clear(list)
	cards := make([]AnnouncementCard, 0, len(shown))
	for i, item := range shown {
		item := item // per-iteration copy for the open closure (go < 1.22 loop semantics)
		frag := dom.NewFragment(announcementCardHTML)
		col := frag.First("div.col-md-4")
		col.SetAttr("data-announcement-index", fmt.Sprint(i))
		setText(frag.First("h3"), item.Title)
		setText(frag.First(".fh5co-event-meta"), item.Date)
		setText(frag.First(".fh5co-event-summary"), item.Summary)
		frag.First("a.btn-details-ann").SetAttr("href", fmt.Sprintf("?announcement=%d", i))
		frag.AppendTo(list)

		cards = append(cards, AnnouncementCard{
			Index: i,
			Item:  item,
			open:  func() { r.OpenAnnouncement(page, item) },
		})
	}

	// Visibility follows the total count, not whether the list was cut.
	if more.Length() > 0 {
		dom.SetStyle(more, "display", "inline-block")
	}
	return cards
}

// OpenAnnouncement fills the shared modal with one announcement and asks the
// modal host to show it. A nil announcement is ignored.
func (r *Renderer) OpenAnnouncement(page *dom.Page, a *content.Announcement) {
	if a == nil {
		return
	}

	if title := page.ByID("announcementModalLabel"); title.Length() > 0 {
		t := a.Title
		if t == "" {
			t = defaultModalTitle
		}
		dom.SetText(title, t)
	}
	if date := page.ByID("announcementModalDate"); date.Length() > 0 {
		dom.SetText(date, a.Date)
	}
	if body := page.ByID("announcementModalBody"); body.Length() > 0 {
		dom.SetHTML(body, r.rich.HTML(a.Body))
	}

	if img := page.ByID("announcementModalImage"); img.Length() > 0 {
		if a.Image != "" {
			dom.SetStyle(img, "display", "block")
			dom.SetStyle(img, "background-image", dom.BackgroundImage(a.Image))
		} else {
			dom.SetStyle(img, "display", "none")
		}
	}

	wrap := page.ByID("announcementModalAttachments")
	list := page.ByID("announcementModalAttachmentList")
	if wrap.Length() > 0 && list.Length() > 0 {
		if len(a.Attachments) > 0 {
			dom.Clear(list)
			for _, att := range a.Attachments {
				frag := dom.NewFragment(`<li><a target="_blank"></a></li>`)
				link := frag.First("a")
				link.SetAttr("href", att.URL)
				label := att.Label
				if label == "" {
					label = att.URL
				}
				dom.SetText(link, fmt.Sprintf("%s (%s)", label, att.Type))
				frag.AppendTo(list)
			}
			dom.SetStyle(wrap, "display", "block")
		} else {
			dom.SetStyle(wrap, "display", "none")
		}
	}

	r.modal.Show(page, AnnouncementModalID)
}
