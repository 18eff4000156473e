package server

import (
	"net/http"
	"strconv"
)

// ContentStatusHeader is set to "unavailable" when a page is served without
// content.
const ContentStatusHeader = "X-Foodee-Content"

// handlePage renders a fresh page per request. ?announcement=n opens the
// modal for the n-th announcement card, as clicking it on the page would.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page, err := s.shell.Page()
	if err != nil {
		s.logger.Error("loading page shell", "error", err)
		http.Error(w, "page shell unavailable", http.StatusInternalServerError)
		return
	}

	out := s.runner.Run(r.Context(), page)

	if v := r.URL.Query().Get("announcement"); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n >= 0 && n < len(out.Announcements) {
			out.Announcements[n].Click()
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if !out.Rendered() {
		w.Header().Set(ContentStatusHeader, "unavailable")
	}
	if err := page.Render(w); err != nil {
		s.logger.Error("writing page", "error", err)
	}
}
