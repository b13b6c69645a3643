package metrics

import "github.com/prometheus/client_golang/prometheus"

// Matching domain Prometheus metrics.
var (
	SwipesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roommatch",
			Name:      "swipes_total",
			Help:      "Total number of swipes",
		},
		[]string{"action", "outcome"}, // outcome: "applied" / "noop"
	)

	MatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roommatch",
			Name:      "matches_total",
			Help:      "Total number of accepted candidates",
		},
		[]string{"result"}, // "created" / "duplicate"
	)

	FeedRebuildsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "roommatch",
			Name:      "feed_rebuilds_total",
			Help:      "Feed queues rebuilt because roster or filters changed",
		},
	)

	CompatibilityScore = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "roommatch",
			Name:      "compatibility_score",
			Help:      "Compatibility scores of swiped candidates and compared pairs",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		},
		[]string{"source"}, // "feed" / "compare"
	)

	PropertySearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "roommatch",
			Name:      "property_search_results",
			Help:      "Number of listings matched per search before pagination",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		},
		[]string{"privileged"},
	)

	SavedSearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roommatch",
			Name:      "saved_searches_total",
			Help:      "Saved search operations",
		},
		[]string{"op"}, // "save" / "delete" / "run"
	)

	EventsPublishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roommatch",
			Name:      "events_published_total",
			Help:      "Domain events handed to the broker",
		},
		[]string{"routing_key", "status"},
	)
)

var matchingMetricsRegistered bool

// RegisterMatchingMetrics registers the matching domain metrics. Must be called once from main.
func RegisterMatchingMetrics() {
	if matchingMetricsRegistered {
		return
	}
	prometheus.MustRegister(SwipesTotal)
	prometheus.MustRegister(MatchesTotal)
	prometheus.MustRegister(FeedRebuildsTotal)
	prometheus.MustRegister(CompatibilityScore)
	prometheus.MustRegister(PropertySearchResults)
	prometheus.MustRegister(SavedSearchesTotal)
	prometheus.MustRegister(EventsPublishedTotal)
	matchingMetricsRegistered = true
}

// Outcome maps a swipe result to its label value.
func Outcome(applied bool) string {
	if applied {
		return "applied"
	}
	return "noop"
}
