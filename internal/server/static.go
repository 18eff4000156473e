package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-chi/chi/v5"
)

// staticHandler serves site assets matching the configured globs. Anything
// else is reported as not found.
func (s *Server) staticHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(path.Clean("/"+chi.URLParam(r, "*")), "/")
		if rel == "" || !s.allowed(rel) {
			http.NotFound(w, r)
			return
		}
		full := filepath.Join(s.cfg.SiteDir, filepath.FromSlash(rel))
		if info, err := os.Stat(full); err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFile(w, r, full)
	}
}

func (s *Server) allowed(rel string) bool {
	for _, seg := range strings.Split(rel, "/") {
		if strings.HasPrefix(seg, ".") {
			return false
		}
	}
	for _, pattern := range s.cfg.Static {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
