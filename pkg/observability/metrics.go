package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments exposed by debt-manager.
type Metrics struct {
	PaymentsRecorded  *prometheus.CounterVec
	PaymentsReversed  prometheus.Counter
	SchedulesCreated  prometheus.Counter
	DebtsSettled      prometheus.Counter
	RemindersSent     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
}

// NewMetrics registers the debt-manager instruments on the given registerer.
// Pass prometheus.DefaultRegisterer in production code.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PaymentsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "debtmanager_payments_recorded_total",
			Help: "Payments recorded, partitioned by payment type.",
		}, []string{"payment_type"}),
		PaymentsReversed: factory.NewCounter(prometheus.CounterOpts{
			Name: "debtmanager_payments_reversed_total",
			Help: "Payments deleted and reversed against their schedule.",
		}),
		SchedulesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "debtmanager_schedules_created_total",
			Help: "Installment schedules generated.",
		}),
		DebtsSettled: factory.NewCounter(prometheus.CounterOpts{
			Name: "debtmanager_debts_settled_total",
			Help: "Debts that reached fully-paid status.",
		}),
		RemindersSent: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "debtmanager_reminders_sent_total",
			Help: "Reminder SMS deliveries, partitioned by outcome.",
		}, []string{"outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "debtmanager_request_duration_seconds",
			Help:    "Duration of gRPC requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// MetricsHandler returns the HTTP handler serving the /metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
