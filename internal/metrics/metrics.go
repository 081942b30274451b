// Package metrics provides the centralized Prometheus metrics registry for
// the prediction service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PredictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "copascore",
		Name:      "predictions_total",
		Help:      "Total number of match outcome predictions served",
	}, []string{"source"})
	PredictionErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "copascore",
		Name:      "prediction_errors_total",
		Help:      "Total number of failed predictions",
	}, []string{"reason"})
	ExplainerFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "copascore",
		Name:      "explainer_failures_total",
		Help:      "Total number of attribution computations that were skipped after failing",
	})
	PredictionCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "copascore",
		Name:      "prediction_cache_hits_total",
		Help:      "Total number of predictions served from cache",
	})
	PredictionCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "copascore",
		Name:      "prediction_cache_misses_total",
		Help:      "Total number of predictions computed on a cache miss",
	})
	ChatQueriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "copascore",
		Name:      "chat_queries_total",
		Help:      "Total number of conversational queries by resolved intent",
	}, []string{"intent"})
	PlayerSearchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "copascore",
		Name:      "player_searches_total",
		Help:      "Total number of player searches",
	})
	ProviderRefreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "copascore",
		Name:      "provider_refresh_total",
		Help:      "Total number of provider team refreshes by status",
	}, []string{"status"})
)

// Histogram metrics
var (
	PredictionLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "copascore",
		Name:      "prediction_latency_seconds",
		Help:      "Latency of the prediction pipeline",
		Buckets:   prometheus.DefBuckets,
	})
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "copascore",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// Registry returns the process-wide registry, registering all metrics on
// first use
func Registry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			PredictionsTotal,
			PredictionErrorsTotal,
			ExplainerFailuresTotal,
			PredictionCacheHitsTotal,
			PredictionCacheMissesTotal,
			ChatQueriesTotal,
			PlayerSearchesTotal,
			ProviderRefreshTotal,
			PredictionLatency,
			HTTPRequestDuration,
		)
	})
	return registry
}

// Handler returns an HTTP handler exposing the registry
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{})
}
