package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameRecipesEvaluated     = "recipes_evaluated_total"
	MetricNameSuggestionsServed    = "suggestions_served_total"
	MetricNameInventoryItemsAdded  = "inventory_items_added_total"
	MetricNameShoppingItemsQueued  = "shopping_items_queued_total"
	MetricNameChefRequests         = "chef_requests_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextRecipesEvaluated    = "Total number of recipe readiness evaluations"
	HelpTextSuggestionsServed   = "Total number of suggestion pages served"
	HelpTextInventoryItemsAdded = "Total number of inventory items added"
	HelpTextShoppingItemsQueued = "Total number of shopping list items queued"
	HelpTextChefRequests        = "Total number of chef chat requests"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelMode     = "mode"
	LabelLocation = "location"
	LabelOutcome  = "outcome"
)

// Chef request outcomes
const (
	OutcomeOK          = "ok"
	OutcomeFallback    = "fallback"
	OutcomeUpstreamErr = "upstream_error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
