package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/CozyGarden_Go/internal/domain"
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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Gameplay Metrics
var (
	PetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePetsTotal,
			Help: HelpTextPetsTotal,
		},
	)

	PassiveTicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePassiveTicksTotal,
			Help: HelpTextPassiveTicksTotal,
		},
		[]string{LabelOutcome},
	)

	TicksSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTicksSkippedTotal,
			Help: HelpTextTicksSkippedTotal,
		},
	)

	UpgradesPurchasedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchasedTotal,
			Help: HelpTextUpgradesPurchasedTotal,
		},
		[]string{LabelUpgrade},
	)

	PurchasesRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesRejectedTotal,
			Help: HelpTextPurchasesRejectedTotal,
		},
		[]string{LabelReason},
	)

	UnlocksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnlocksTotal,
			Help: HelpTextUnlocksTotal,
		},
		[]string{LabelUnlock},
	)

	RebirthsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRebirthsTotal,
			Help: HelpTextRebirthsTotal,
		},
	)

	EndingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEndingsTotal,
			Help: HelpTextEndingsTotal,
		},
	)

	Currency = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCurrency,
			Help: HelpTextCurrency,
		},
	)

	PeakCurrency = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePeakCurrency,
			Help: HelpTextPeakCurrency,
		},
	)

	Hearts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHearts,
			Help: HelpTextHearts,
		},
	)

	ClickRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameClickRate,
			Help: HelpTextClickRate,
		},
	)

	PassiveRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePassiveRate,
			Help: HelpTextPassiveRate,
		},
	)
)

// Persistence Metrics
var (
	SavesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSavesTotal,
			Help: HelpTextSavesTotal,
		},
	)

	SaveFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSaveFailuresTotal,
			Help: HelpTextSaveFailuresTotal,
		},
	)

	SavesDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSavesDroppedTotal,
			Help: HelpTextSavesDroppedTotal,
		},
	)
)

// Stream Metrics
var (
	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)

	StreamEventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStreamEventsDropped,
			Help: HelpTextStreamEventsDropped,
		},
		[]string{LabelStage},
	)
)

// ObserveState copies a committed progression state into the gauges.
func ObserveState(state domain.ProgressionState) {
	Currency.Set(state.Currency)
	PeakCurrency.Set(state.PeakCurrency)
	Hearts.Set(float64(state.PrestigeCurrency))
	ClickRate.Set(state.ClickRate)
	PassiveRate.Set(state.PassiveRate)
}
