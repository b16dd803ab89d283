package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	UnknownUserActivities prometheus.Counter
	FetchFailures         prometheus.Counter
	AggregationDuration   prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		UnknownUserActivities: promauto.NewCounter(prometheus.CounterOpts{
			Name: "burnboard_unknown_user_activities_total",
			Help: "Activities whose user reference had no match and contributed a zero rate",
		}),
		FetchFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "burnboard_fetch_failures_total",
			Help: "Failed activity/user fetches during budget aggregation",
		}),
		AggregationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "burnboard_aggregation_duration_seconds",
			Help:    "Duration of per-project budget aggregations",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) IncrementUnknownUser() {
	m.UnknownUserActivities.Inc()
}

func (m *Metrics) IncrementFetchFailure() {
	m.FetchFailures.Inc()
}

func (m *Metrics) ObserveAggregation(start time.Time) {
	m.AggregationDuration.Observe(time.Since(start).Seconds())
}
