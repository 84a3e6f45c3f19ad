package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the booking service. Handlers and
// services take a *Metrics that may be nil (tests pass nil), so increments go
// through the nil-safe methods below.
type Metrics struct {
	DraftsCreated     prometheus.Counter
	SlotsSet          *prometheus.CounterVec
	RejectedMutations *prometheus.CounterVec
	BookingsConfirmed prometheus.Counter
	ConfirmFailures   prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics. Call once at startup;
// promauto registers against the default registry.
func New() *Metrics {
	return &Metrics{
		DraftsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "railbook_drafts_created_total",
			Help: "Total number of booking drafts created",
		}),
		SlotsSet: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "railbook_slots_set_total",
			Help: "Total number of draft slots successfully set, by slot",
		}, []string{"slot"}),
		RejectedMutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "railbook_rejected_mutations_total",
			Help: "Total number of rejected draft mutations, by error code",
		}, []string{"code"}),
		BookingsConfirmed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "railbook_bookings_confirmed_total",
			Help: "Total number of bookings confirmed",
		}),
		ConfirmFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "railbook_booking_confirm_failures_total",
			Help: "Total number of booking confirmation failures",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "railbook_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// RecordDraftCreated increments the drafts created counter.
func (m *Metrics) RecordDraftCreated() {
	if m == nil {
		return
	}
	m.DraftsCreated.Inc()
}

// RecordSlotSet increments the per-slot mutation counter.
func (m *Metrics) RecordSlotSet(slot string) {
	if m == nil {
		return
	}
	m.SlotsSet.WithLabelValues(slot).Inc()
}

// RecordRejection increments the rejected mutation counter for an error code.
func (m *Metrics) RecordRejection(code string) {
	if m == nil {
		return
	}
	m.RejectedMutations.WithLabelValues(code).Inc()
}

// RecordBookingConfirmed increments the confirmed bookings counter.
func (m *Metrics) RecordBookingConfirmed() {
	if m == nil {
		return
	}
	m.BookingsConfirmed.Inc()
}

// RecordConfirmFailure increments the confirmation failure counter.
func (m *Metrics) RecordConfirmFailure() {
	if m == nil {
		return
	}
	m.ConfirmFailures.Inc()
}

// ObserveRequest records one HTTP request's latency.
func (m *Metrics) ObserveRequest(route, method string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, method).Observe(seconds)
}
