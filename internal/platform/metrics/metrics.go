package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Book search provider
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookrec_provider_requests_total",
			Help: "Book search provider calls by outcome",
		},
		[]string{"outcome"}, // "success", "error", "rejected"
	)

	ProviderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bookrec_provider_request_duration_seconds",
			Help:    "Duration of book search provider calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bookrec_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Caches
	BookCacheWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookrec_book_cache_writes_total",
			Help: "Book cache write attempts by outcome",
		},
		[]string{"outcome"}, // "inserted", "exists", "error", "dropped"
	)

	QueryCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookrec_query_cache_lookups_total",
			Help: "Provider query cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss", "error"
	)

	// Recommendations
	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookrec_recommendation_duration_seconds",
			Help:    "End-to-end recommendation latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"path"}, // "scored", "fallback"
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bookrec_recommendation_results",
			Help:    "Number of books returned per recommendation",
			Buckets: []float64{0, 1, 5, 10, 20, 40},
		},
	)

	SupplementalSearches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookrec_supplemental_searches_total",
			Help: "Supplemental broad searches issued for thin results",
		},
	)
)
