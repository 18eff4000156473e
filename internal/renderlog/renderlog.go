// Package renderlog keeps a trail of page runs in SQLite.
package renderlog

import "time"

// Outcome is the result of a run.
type Outcome string

const (
	OutcomeRendered Outcome = "rendered"
	OutcomeFailed   Outcome = "failed"
)

// Entry is a single page run record.
type Entry struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Source        string    `json:"source"`
	Preview       bool      `json:"preview"`
	Outcome       Outcome   `json:"outcome"`
	ContentError  string    `json:"content_error,omitempty"`
	ThemeError    string    `json:"theme_error,omitempty"`
	Announcements int       `json:"announcements"`
	DurationMS    int64     `json:"duration_ms"`
}
