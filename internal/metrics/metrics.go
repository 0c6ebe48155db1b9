package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by method, path and status",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and path",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// NameFallbackMatches counts transactions attributed to an account by
	// denormalized name instead of id. A nonzero rate here means upstream
	// records are missing account keys and misattribution is possible.
	NameFallbackMatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_name_fallback_matches_total",
		Help: "Transactions matched to an account by name fallback instead of id",
	}, []string{"doc_kind"})

	StatementBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ledger_statement_build_duration_seconds",
		Help:    "Time spent recomputing a statement from source records",
		Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
	})

	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_cache_hits_total",
		Help: "Content-addressed cache hits by result kind",
	}, []string{"kind"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_cache_misses_total",
		Help: "Content-addressed cache misses by result kind",
	}, []string{"kind"})

	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Requests made to the upstream ERP store by resource and outcome",
	}, []string{"resource", "outcome"})
)
