// Package metrics exposes Prometheus counters for the render pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for page renders. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	// Successful renders by content source
	Renders *prometheus.CounterVec

	ContentFailures  prometheus.Counter
	ThemeFailures    prometheus.Counter
	PreviewDiscarded prometheus.Counter

	RenderDuration prometheus.Histogram
}

// New creates the render metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Renders: f.NewCounterVec(prometheus.CounterOpts{
			Name: "foodee_renders_total",
			Help: "Total pages rendered from content, by content source",
		}, []string{"source"}), // source: "preview", "http", "file"

		ContentFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "foodee_content_failures_total",
			Help: "Total page loads where content could not be resolved",
		}),

		ThemeFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "foodee_theme_failures_total",
			Help: "Total page loads where the theme script could not be loaded",
		}),

		PreviewDiscarded: f.NewCounter(prometheus.CounterOpts{
			Name: "foodee_preview_discarded_total",
			Help: "Total malformed preview entries removed from the preview store",
		}),

		RenderDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "foodee_render_duration_seconds",
			Help:    "Duration of a full page run, from content resolution to theme loading",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementRender records a page rendered from source.
func (m *Metrics) IncrementRender(source string) {
	if m != nil {
		m.Renders.WithLabelValues(source).Inc()
	}
}

// IncrementContentFailure records a page load without content.
func (m *Metrics) IncrementContentFailure() {
	if m != nil {
		m.ContentFailures.Inc()
	}
}

// IncrementThemeFailure records a failed theme load.
func (m *Metrics) IncrementThemeFailure() {
	if m != nil {
		m.ThemeFailures.Inc()
	}
}

// IncrementPreviewDiscarded records a malformed preview entry being removed.
func (m *Metrics) IncrementPreviewDiscarded() {
	if m != nil {
		m.PreviewDiscarded.Inc()
	}
}

// ObserveRenderDuration records the duration of one page run.
func (m *Metrics) ObserveRenderDuration(d time.Duration) {
	if m != nil {
		m.RenderDuration.Observe(d.Seconds())
	}
}
