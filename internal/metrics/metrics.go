package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache lookup results.
const (
	LookupHit     = "hit"
	LookupMiss    = "miss"
	LookupError   = "error"
	LookupCorrupt = "corrupt"
)

type Metrics struct {
	CacheLookups    *prometheus.CounterVec
	CacheWrites     *prometheus.CounterVec
	UpstreamErrors  *prometheus.CounterVec
	UpstreamSeconds prometheus.Histogram
	FeedPublished   *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		CacheLookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "weather_cache_lookups_total",
			Help: "Cache lookups by result (hit, miss, error, corrupt).",
		}, []string{"result"}),
		CacheWrites: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "weather_cache_writes_total",
			Help: "Cache writes by status.",
		}, []string{"status"}),
		UpstreamErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "weather_provider_errors_total",
			Help: "Errors returned by or while contacting the weather provider.",
		}, []string{"kind"}),
		UpstreamSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "weather_provider_request_duration_seconds",
			Help:    "Duration of requests to the weather provider API.",
			Buckets: prometheus.DefBuckets,
		}),
		FeedPublished: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "weather_feed_records_total",
			Help: "Observation feed records by direction and status.",
		}, []string{"direction", "status"}),
	}
}
