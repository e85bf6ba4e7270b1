package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ResolveTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boundary_resolve_total",
		Help: "Total number of boundary resolve calls",
	}, []string{"level"})
	ResolveDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "boundary_resolve_duration_ms",
		Help:    "Resolve duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	NotFoundTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boundary_notfound_total",
		Help: "Total number of resolves that found no record",
	}, []string{"level"})
	BadRequestTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boundary_badrequest_total",
		Help: "Total number of resolves rejected for bad level or code",
	})
	StoreErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boundary_store_errors_total",
		Help: "Total number of backing store errors on the read path",
	})
	RetriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boundary_retries_total",
		Help: "Total number of read retries after transient store errors",
	})
	UnavailableTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boundary_unavailable_total",
		Help: "Total number of resolves that exhausted retries",
	})
	RebuildRecordsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boundary_rebuild_records_total",
		Help: "Total number of records written by dictionary rebuilds",
	}, []string{"level"})
	RebuildBatchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boundary_rebuild_batches_total",
		Help: "Total number of batches written by dictionary rebuilds",
	}, []string{"level"})
	RebuildFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boundary_rebuild_failures_total",
		Help: "Total number of rebuild runs aborted before meta advance",
	}, []string{"level"})
	RebuildDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "boundary_rebuild_duration_ms",
		Help:    "Rebuild duration in milliseconds",
		Buckets: []float64{100, 500, 1000, 5000, 10000, 30000, 60000, 120000},
	})
)

var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(
		ResolveTotal,
		ResolveDurationMs,
		NotFoundTotal,
		BadRequestTotal,
		StoreErrorsTotal,
		RetriesTotal,
		UnavailableTotal,
		RebuildRecordsTotal,
		RebuildBatchesTotal,
		RebuildFailuresTotal,
		RebuildDurationMs,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
