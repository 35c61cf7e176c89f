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

	HTTPRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRejectedTotal,
			Help: HelpTextHTTPRejectedTotal,
		},
		[]string{LabelReason},
	)
)

// Bot Metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsTotal,
			Help: HelpTextCommandsTotal,
		},
		[]string{LabelPlatform, LabelCommand},
	)

	BlockedRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBlockedRequestsTotal,
			Help: HelpTextBlockedRequestsTotal,
		},
		[]string{LabelPlatform},
	)

	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResolutionsTotal,
			Help: HelpTextResolutionsTotal,
		},
		[]string{LabelKind, LabelResult},
	)

	ConfirmationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameConfirmationsTotal,
			Help: HelpTextConfirmationsTotal,
		},
		[]string{LabelOutcome},
	)

	InventoryMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryMutations,
			Help: HelpTextInventoryMutations,
		},
		[]string{LabelAction, LabelResult},
	)

	InventoryValuations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInventoryValuations,
			Help: HelpTextInventoryValuations,
		},
	)
)

// Market Metrics
var (
	MarketRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMarketRefreshTotal,
			Help: HelpTextMarketRefreshTotal,
		},
		[]string{LabelResult},
	)

	MarketRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameMarketRefreshDuration,
			Help:    HelpTextMarketRefreshDuration,
			Buckets: FetchLatencyBuckets,
		},
	)

	MarketQuotes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameMarketQuotes,
			Help: HelpTextMarketQuotes,
		},
	)

	MarketLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameMarketLastSuccess,
			Help: HelpTextMarketLastSuccess,
		},
	)
)

// Background Job Metrics
var (
	WorkerJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWorkerJobsTotal,
			Help: HelpTextWorkerJobsTotal,
		},
		[]string{LabelResult},
	)

	SchedulerDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSchedulerDroppedTotal,
			Help: HelpTextSchedulerDropped,
		},
	)
)
