package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	RecipesEvaluated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipesEvaluated,
			Help: HelpTextRecipesEvaluated,
		},
	)

	SuggestionsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSuggestionsServed,
			Help: HelpTextSuggestionsServed,
		},
		[]string{LabelMode},
	)

	InventoryItemsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryItemsAdded,
			Help: HelpTextInventoryItemsAdded,
		},
		[]string{LabelLocation},
	)

	ShoppingItemsQueued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShoppingItemsQueued,
			Help: HelpTextShoppingItemsQueued,
		},
	)

	ChefRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChefRequests,
			Help: HelpTextChefRequests,
		},
		[]string{LabelOutcome},
	)
)
