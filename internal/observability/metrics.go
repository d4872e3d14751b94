package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthEvents counts authentication outcomes by event (register, login,
	// token) and outcome.
	AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_auth_events_total",
		Help: "Authentication events by type and outcome",
	}, []string{"event", "outcome"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jobboard_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// RedisErrors counts Redis errors by command.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_redis_errors_total",
		Help: "Total number of Redis errors by operation",
	}, []string{"operation"})

	// JobEventsPublished counts job board events by type and result.
	JobEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_job_events_published_total",
		Help: "Job board events published to Redis",
	}, []string{"type", "result"})
)

// Auth event outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeConflict = "conflict"
)

// RecordAuthEvent increments the auth event counter.
func RecordAuthEvent(event, outcome string) {
	AuthEvents.WithLabelValues(event, outcome).Inc()
}

// TrackQuery returns a function that records query latency when called,
// typically deferred at the top of a repository method.
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
