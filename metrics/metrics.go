// Package metrics collects Prometheus metrics for the job API and exposes them
// over HTTP. Each Collector owns its registry, so several can coexist in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the job API metrics. A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	jobsCreated prometheus.Counter
	jobsUpdated prometheus.Counter
	jobsDeleted prometheus.Counter

	validationFailures *prometheus.CounterVec
	notFound           *prometheus.CounterVec

	jobsStored      prometheus.Gauge
	requestDuration *prometheus.HistogramVec
}

// NewCollector creates a collector registered on a fresh registry, together
// with the Go runtime and process collectors.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		jobsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobapi_jobs_created_total",
			Help: "Total number of jobs created",
		}),
		jobsUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobapi_jobs_updated_total",
			Help: "Total number of successful job updates",
		}),
		jobsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobapi_jobs_deleted_total",
			Help: "Total number of jobs deleted",
		}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobapi_validation_failures_total",
			Help: "Total number of request bodies rejected by a schema",
		}, []string{"operation"}),
		notFound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobapi_not_found_total",
			Help: "Total number of requests for unknown job ids",
		}, []string{"operation"}),
		jobsStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "jobapi_jobs_stored",
			Help: "Current number of jobs held in the store",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "jobapi_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	c.registry.MustRegister(
		c.jobsCreated,
		c.jobsUpdated,
		c.jobsDeleted,
		c.validationFailures,
		c.notFound,
		c.jobsStored,
		c.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Registry returns the registry backing this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordCreated counts a created job and refreshes the stored gauge.
func (c *Collector) RecordCreated(stored int) {
	if c == nil {
		return
	}
	c.jobsCreated.Inc()
	c.jobsStored.Set(float64(stored))
}

// RecordUpdated counts a successful update.
func (c *Collector) RecordUpdated() {
	if c == nil {
		return
	}
	c.jobsUpdated.Inc()
}

// RecordDeleted counts a deleted job and refreshes the stored gauge.
func (c *Collector) RecordDeleted(stored int) {
	if c == nil {
		return
	}
	c.jobsDeleted.Inc()
	c.jobsStored.Set(float64(stored))
}

// RecordValidationFailure counts a body rejected for the given operation.
func (c *Collector) RecordValidationFailure(operation string) {
	if c == nil {
		return
	}
	c.validationFailures.WithLabelValues(operation).Inc()
}

// RecordNotFound counts a lookup of an unknown id for the given operation.
func (c *Collector) RecordNotFound(operation string) {
	if c == nil {
		return
	}
	c.notFound.WithLabelValues(operation).Inc()
}

// SetStored sets the stored gauge directly, e.g. after seeding.
func (c *Collector) SetStored(stored int) {
	if c == nil {
		return
	}
	c.jobsStored.Set(float64(stored))
}

// ObserveRequest records the latency of one HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
