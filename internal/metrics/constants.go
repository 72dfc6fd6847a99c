package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameItemsBought   = "items_bought_total"
	MetricNameItemsSold     = "items_sold_total"
	MetricNameItemsEquipped = "items_equipped_total"
	MetricNameMoneyEarned   = "money_earned_total"
	MetricNameMoneySpent    = "money_spent_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextItemsBought   = "Total number of items bought"
	HelpTextItemsSold     = "Total number of items sold"
	HelpTextItemsEquipped = "Total number of equip operations"
	HelpTextMoneyEarned   = "Total money earned from selling items"
	HelpTextMoneySpent    = "Total money spent buying items"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
)

// HTTPLatencyBuckets are the histogram buckets for request duration
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
