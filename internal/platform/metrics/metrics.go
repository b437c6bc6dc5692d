package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// Metrics holds all Prometheus metrics for the point-of-sale services.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	CustomersCreated        prometheus.Counter
	StoresCreated           prometheus.Counter
	OrdersCreated           prometheus.Counter
	OrderTransitions        *prometheus.CounterVec
	PaymentsInitiated       *prometheus.CounterVec
	PaymentsSettled         *prometheus.CounterVec
	ReconciliationsRequired prometheus.Counter
	NotificationFailures    *prometheus.CounterVec
	UseCaseDuration         *prometheus.HistogramVec
}

// New creates and registers all metrics on reg. Pass prometheus.DefaultRegisterer
// in production and prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CustomersCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "cafepos_customers_created_total",
			Help: "Total number of customers registered",
		}),
		StoresCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "cafepos_stores_created_total",
			Help: "Total number of stores registered",
		}),
		OrdersCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "cafepos_orders_created_total",
			Help: "Total number of orders opened",
		}),
		OrderTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cafepos_order_transitions_total",
			Help: "Order status transitions by target status",
		}, []string{"status"}),
		PaymentsInitiated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cafepos_payments_initiated_total",
			Help: "Payments registered with a processor, by platform",
		}, []string{"platform"}),
		PaymentsSettled: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cafepos_payments_settled_total",
			Help: "Payments moved to a terminal status",
		}, []string{"status"}),
		ReconciliationsRequired: f.NewCounter(prometheus.CounterOpts{
			Name: "cafepos_payment_reconciliations_required_total",
			Help: "Payments settled whose order transition failed afterwards",
		}),
		NotificationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cafepos_notification_failures_total",
			Help: "Notifications that could not be delivered, by channel",
		}, []string{"channel"}),
		UseCaseDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cafepos_use_case_duration_seconds",
			Help:    "Duration of use case executions",
			Buckets: durationBuckets,
		}, []string{"use_case"}),
	}
}

func (m *Metrics) IncrementCustomersCreated() {
	if m != nil {
		m.CustomersCreated.Inc()
	}
}

func (m *Metrics) IncrementStoresCreated() {
	if m != nil {
		m.StoresCreated.Inc()
	}
}

func (m *Metrics) IncrementOrdersCreated() {
	if m != nil {
		m.OrdersCreated.Inc()
	}
}

func (m *Metrics) IncrementOrderTransition(status string) {
	if m != nil {
		m.OrderTransitions.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) IncrementPaymentsInitiated(platform string) {
	if m != nil {
		m.PaymentsInitiated.WithLabelValues(platform).Inc()
	}
}

func (m *Metrics) IncrementPaymentsSettled(status string) {
	if m != nil {
		m.PaymentsSettled.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) IncrementReconciliationsRequired() {
	if m != nil {
		m.ReconciliationsRequired.Inc()
	}
}

func (m *Metrics) IncrementNotificationFailures(channel string) {
	if m != nil {
		m.NotificationFailures.WithLabelValues(channel).Inc()
	}
}

// ObserveUseCase records the duration of a use case.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveUseCase(useCase string, start time.Time) {
	if m != nil {
		m.UseCaseDuration.WithLabelValues(useCase).Observe(time.Since(start).Seconds())
	}
}
