package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	BookingOutcomeCreated         = "created"
	BookingOutcomeDuplicate       = "duplicate"
	BookingOutcomeSlotUnavailable = "slot_unavailable"
	BookingOutcomeLockBusy        = "lock_busy"
	BookingOutcomeInvalid         = "invalid"
	BookingOutcomeError           = "error"

	AvailabilityVariantFilter   = "filter"
	AvailabilityVariantPipeline = "pipeline"
)

// BookingMetrics exposes counters/histograms for the booking flows.
type BookingMetrics struct {
	bookingsTotal       *prometheus.CounterVec
	availabilityLatency *prometheus.HistogramVec
	eventPublishTotal   *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doctors_portal",
			Subsystem: "bookings",
			Name:      "submitted_total",
			Help:      "Total booking submissions by outcome",
		}, []string{"outcome"}),
		availabilityLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "doctors_portal",
			Subsystem: "appointment_options",
			Name:      "availability_latency_seconds",
			Help:      "Latency of availability computation",
			Buckets:   prometheus.DefBuckets,
		}, []string{"variant"}),
		eventPublishTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doctors_portal",
			Subsystem: "bookings",
			Name:      "event_publish_total",
			Help:      "Total booking event publish attempts by status",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.availabilityLatency, m.eventPublishTotal)
	return m
}

func (m *BookingMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveAvailabilityLatency(variant string, seconds float64) {
	if m == nil {
		return
	}
	m.availabilityLatency.WithLabelValues(variant).Observe(seconds)
}

func (m *BookingMetrics) ObserveEventPublish(ok bool) {
	if m == nil {
		return
	}
	status := "failed"
	if ok {
		status = "published"
	}
	m.eventPublishTotal.WithLabelValues(status).Inc()
}
