// Package metrics provides Prometheus metrics for the viewer.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Metrics = (*Metrics)(nil)

const shutdownTimeout = 2 * time.Second

// Metrics implements ports.Metrics with collectors registered on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	cacheLookups   *prometheus.CounterVec
	cacheEvictions prometheus.Counter
	cacheBytes     prometheus.Gauge
	cacheEntries   prometheus.Gauge
	cacheBudget    prometheus.Gauge

	prefetchScheduled prometheus.Counter
	prefetchFailed    prometheus.Counter

	decodeDuration *prometheus.HistogramVec
}

// New creates a Metrics instance with a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glance_cache_lookups_total",
				Help: "Payload cache lookups by result",
			},
			[]string{"result"},
		),
		cacheEvictions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "glance_cache_evictions_total",
				Help: "Entries evicted to stay within the cache budget",
			},
		),
		cacheBytes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "glance_cache_bytes",
				Help: "Bytes currently charged against the cache budget",
			},
		),
		cacheEntries: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "glance_cache_entries",
				Help: "Number of cached payloads",
			},
		),
		cacheBudget: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "glance_cache_budget_bytes",
				Help: "Configured cache budget",
			},
		),
		prefetchScheduled: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "glance_prefetch_scheduled_total",
				Help: "Neighbours handed to the background pool",
			},
		),
		prefetchFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "glance_prefetch_failed_total",
				Help: "Background decodes that failed",
			},
		),
		decodeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "glance_decode_duration_seconds",
				Help:    "Image decode duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		),
	}
}

// CacheHit counts a cache hit.
func (m *Metrics) CacheHit() {
	m.cacheLookups.WithLabelValues("hit").Inc()
}

// CacheMiss counts a cache miss.
func (m *Metrics) CacheMiss() {
	m.cacheLookups.WithLabelValues("miss").Inc()
}

// CacheEvicted counts evicted entries.
func (m *Metrics) CacheEvicted(count int) {
	m.cacheEvictions.Add(float64(count))
}

// CacheUsage records the cache occupancy.
func (m *Metrics) CacheUsage(stats ports.CacheStats) {
	m.cacheBytes.Set(float64(stats.TotalBytes))
	m.cacheEntries.Set(float64(stats.Count))
	m.cacheBudget.Set(float64(stats.Budget))
}

// PrefetchScheduled counts a scheduled prefetch.
func (m *Metrics) PrefetchScheduled() {
	m.prefetchScheduled.Inc()
}

// PrefetchFailed counts a failed prefetch.
func (m *Metrics) PrefetchFailed() {
	m.prefetchFailed.Inc()
}

// ObserveDecode records a decode duration labelled by outcome.
func (m *Metrics) ObserveDecode(d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.decodeDuration.WithLabelValues(status).Observe(d.Seconds())
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return zerr.With(zerr.Wrap(err, "metrics endpoint failed"), "addr", addr)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, "metrics shutdown failed")
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, "metrics endpoint failed")
		}
		return nil
	}
}
