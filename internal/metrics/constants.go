package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRejectedTotal    = "http_rejected_requests_total"
)

// Bot metric names
const (
	MetricNameCommandsTotal         = "bot_commands_total"
	MetricNameBlockedRequestsTotal  = "bot_blocked_requests_total"
	MetricNameResolutionsTotal      = "name_resolutions_total"
	MetricNameConfirmationsTotal    = "confirmations_total"
	MetricNameInventoryMutations    = "inventory_mutations_total"
	MetricNameInventoryValuations   = "inventory_valuations_total"
	MetricNameMarketRefreshTotal    = "market_refresh_total"
	MetricNameMarketRefreshDuration = "market_refresh_duration_seconds"
	MetricNameMarketQuotes          = "market_quotes"
	MetricNameMarketLastSuccess     = "market_last_success_timestamp_seconds"
	MetricNameWorkerJobsTotal       = "worker_jobs_total"
	MetricNameSchedulerDroppedTotal = "scheduler_dropped_jobs_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRejectedTotal    = "HTTP requests rejected by the security middleware, by reason"

	HelpTextCommandsTotal         = "Bot commands handled, by platform and command"
	HelpTextBlockedRequestsTotal  = "Requests rejected because the user is blocked"
	HelpTextResolutionsTotal      = "Name resolutions by kind and outcome"
	HelpTextConfirmationsTotal    = "Pending confirmations by outcome"
	HelpTextInventoryMutations    = "Inventory mutations by action and outcome"
	HelpTextInventoryValuations   = "Inventory valuations computed"
	HelpTextMarketRefreshTotal    = "Market snapshot refresh attempts by outcome"
	HelpTextMarketRefreshDuration = "Market snapshot fetch latency in seconds"
	HelpTextMarketQuotes          = "Number of quotes in the current market snapshot"
	HelpTextMarketLastSuccess     = "Unix time of the last successful market refresh"
	HelpTextWorkerJobsTotal       = "Background jobs processed by outcome"
	HelpTextSchedulerDropped      = "Scheduled jobs dropped because the worker queue was full"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelPlatform = "platform"
	LabelCommand  = "command"
	LabelKind     = "kind"
	LabelResult   = "result"
	LabelAction   = "action"
	LabelOutcome  = "outcome"
	LabelReason   = "reason"
)

// ============================================================================
// Label Values
// ============================================================================

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultSkipped = "skipped"

	ResolutionDirect         = "direct"
	ResolutionTransliterated = "transliterated"
	ResolutionMiss           = "miss"

	PathUnmatched = "unmatched"

	ReasonUnauthorized = "unauthorized"
	ReasonRateLimited  = "rate_limited"
)

// HTTPLatencyBuckets are the histogram buckets for HTTP latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// FetchLatencyBuckets are the histogram buckets for upstream market fetches
var FetchLatencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}
