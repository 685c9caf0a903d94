// Package metrics exposes Prometheus instrumentation for the site: page
// views, blog searches, post renders and live animation streams.
//
// Each Metrics owns a private registry so tests and multiple servers in one
// process never collide on registration.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "devfolio"

// Stream names used for the ActiveStreams gauge.
const (
	StreamTypewriter = "typewriter"
	StreamCarousel   = "carousel"
	StreamReveal     = "reveal"
)

// Metrics holds every collector the site records.
type Metrics struct {
	registry *prometheus.Registry

	// PageViews counts rendered pages by route and status code.
	PageViews *prometheus.CounterVec

	// Searches counts blog filter requests by whether a tag was selected.
	Searches *prometheus.CounterVec

	// SearchResults observes how many posts each search returned.
	SearchResults prometheus.Histogram

	// PostRenders counts markdown renders by outcome (ok, missing, error).
	PostRenders *prometheus.CounterVec

	// ActiveStreams tracks open SSE and websocket connections by kind.
	ActiveStreams *prometheus.GaugeVec

	// ContactSubmissions counts contact form posts by outcome.
	ContactSubmissions *prometheus.CounterVec
}

// New creates a Metrics backed by a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		PageViews: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "page_views_total",
				Help:      "Page views by route and status code.",
			},
			[]string{"route", "status"},
		),
		Searches: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "blog",
				Name:      "searches_total",
				Help:      "Blog filter requests by whether a tag was selected.",
			},
			[]string{"tagged"},
		),
		SearchResults: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "blog",
				Name:      "search_results",
				Help:      "Number of posts returned by a blog search.",
				Buckets:   []float64{0, 1, 2, 5, 10, 20, 40},
			},
		),
		PostRenders: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "blog",
				Name:      "post_renders_total",
				Help:      "Markdown post renders by outcome.",
			},
			[]string{"outcome"},
		),
		ActiveStreams: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_streams",
				Help:      "Open animation streams by kind.",
			},
			[]string{"kind"},
		),
		ContactSubmissions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "contact_submissions_total",
				Help:      "Contact form submissions by outcome.",
			},
			[]string{"outcome"},
		),
	}
}

// RecordPageView counts one request against route.
func (m *Metrics) RecordPageView(route string, status int) {
	if m == nil {
		return
	}
	m.PageViews.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// RecordSearch counts a blog search and the size of its result.
func (m *Metrics) RecordSearch(tagged bool, results int) {
	if m == nil {
		return
	}
	m.Searches.WithLabelValues(strconv.FormatBool(tagged)).Inc()
	m.SearchResults.Observe(float64(results))
}

// RecordRender counts a post render with the given outcome.
func (m *Metrics) RecordRender(outcome string) {
	if m == nil {
		return
	}
	m.PostRenders.WithLabelValues(outcome).Inc()
}

// RecordContact counts a contact form submission with the given outcome.
func (m *Metrics) RecordContact(outcome string) {
	if m == nil {
		return
	}
	m.ContactSubmissions.WithLabelValues(outcome).Inc()
}

// StreamStarted increments the open stream gauge for kind and returns the
// matching decrement.
func (m *Metrics) StreamStarted(kind string) (done func()) {
	if m == nil {
		return func() {}
	}
	g := m.ActiveStreams.WithLabelValues(kind)
	g.Inc()
	return g.Dec
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
