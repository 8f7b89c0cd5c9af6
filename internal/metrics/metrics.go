// Package metrics defines the Prometheus collectors for the discovery
// engine and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the engine.
type Metrics struct {
	SearchesTotal       *prometheus.CounterVec
	SearchDuration      *prometheus.HistogramVec
	SuggestionsReturned prometheus.Histogram
	RebuildsTotal       *prometheus.CounterVec
	RebuildDuration     *prometheus.HistogramVec
	IndexTokenCount     *prometheus.GaugeVec
}

// New creates the collectors and registers them with the given registerer.
// Passing nil registers with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "discovery_searches_total",
				Help: "Total search and autocomplete queries by category and outcome.",
			},
			[]string{"category", "outcome"},
		),
		SearchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "discovery_search_duration_seconds",
				Help:    "Search query latency in seconds.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"category"},
		),
		SuggestionsReturned: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "discovery_suggestions_returned",
				Help:    "Number of suggestions returned per autocomplete query.",
				Buckets: []float64{0, 1, 2, 4, 8, 16},
			},
		),
		RebuildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "discovery_index_rebuilds_total",
				Help: "Total index rebuilds by category and status (ok, failed).",
			},
			[]string{"category", "status"},
		),
		RebuildDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "discovery_index_rebuild_duration_seconds",
				Help:    "Index rebuild duration in seconds.",
				Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"category"},
		),
		IndexTokenCount: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "discovery_index_token_count",
				Help: "Distinct tokens in the live index per category.",
			},
			[]string{"category"},
		),
	}

	reg.MustRegister(
		m.SearchesTotal,
		m.SearchDuration,
		m.SuggestionsReturned,
		m.RebuildsTotal,
		m.RebuildDuration,
		m.IndexTokenCount,
	)
	return m
}

// Handler returns the HTTP handler that serves the scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveSearch records one search query. Safe on a nil receiver so
// callers without metrics wired (tests) need no guards.
func (m *Metrics) ObserveSearch(category string, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(category, outcome).Inc()
	m.SearchDuration.WithLabelValues(category).Observe(took.Seconds())
}

// ObserveSuggestions records the size of one autocomplete response.
func (m *Metrics) ObserveSuggestions(count int) {
	if m == nil {
		return
	}
	m.SuggestionsReturned.Observe(float64(count))
}

// ObserveRebuild records one rebuild attempt for a category.
func (m *Metrics) ObserveRebuild(category string, err error, took time.Duration, tokenCount int) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "failed"
	} else {
		m.IndexTokenCount.WithLabelValues(category).Set(float64(tokenCount))
	}
	m.RebuildsTotal.WithLabelValues(category, status).Inc()
	m.RebuildDuration.WithLabelValues(category).Observe(took.Seconds())
}
