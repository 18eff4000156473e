package renderlog

import (
	"context"
	"log/slog"

	"github.com/ziadkadry99/foodee/internal/site"
)

// Recorder writes every page run to the store.
type Recorder struct {
	store  *Store
	logger *slog.Logger
}

// NewRecorder returns a site.Recorder backed by store.
func NewRecorder(store *Store, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{store: store, logger: logger}
}

// EntryFor converts a run outcome into a log entry.
func EntryFor(out site.Outcome) Entry {
	e := Entry{
		Timestamp:     out.Started,
		Outcome:       OutcomeFailed,
		Announcements: len(out.Announcements),
		DurationMS:    out.Duration.Milliseconds(),
	}
	if out.Result != nil {
		e.Outcome = OutcomeRendered
		e.Source = out.Result.Source
		e.Preview = out.Result.Preview
	}
	if out.ContentErr != nil {
		e.ContentError = out.ContentErr.Error()
	}
	if out.ThemeErr != nil {
		e.ThemeError = out.ThemeErr.Error()
	}
	return e
}

// Record implements site.Recorder. Write failures are logged.
func (r *Recorder) Record(ctx context.Context, out site.Outcome) {
	if err := r.store.Log(context.WithoutCancel(ctx), EntryFor(out)); err != nil {
		r.logger.Warn("recording render", "error", err)
	}
}
