package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Booking outcomes
const (
	OutcomeCreated      = "created"
	OutcomeReplayed     = "replayed"
	OutcomePastDate     = "past_date"
	OutcomeOutsideHours = "outside_hours"
	OutcomeConflict     = "conflict"
	OutcomeInvalid      = "invalid"
)

// Booking origins
const (
	OriginClient     = "client"
	OriginWalkIn     = "walk_in"
	OriginProposal   = "proposal"
	OriginReschedule = "reschedule"
)

// Workflow actions
const (
	ActionRequested        = "requested"
	ActionApproved         = "approved"
	ActionRejected         = "rejected"
	ActionSubmitted        = "submitted"
	ActionCancelledByStaff = "cancelled_by_staff"
)

// Metrics holds the scheduling and HTTP metrics of the service
type Metrics struct {
	// Scheduling metrics
	Bookings           *prometheus.CounterVec
	Cancellations      *prometheus.CounterVec
	Proposals          *prometheus.CounterVec
	StoredAppointments prometheus.Gauge
	PendingRequests    *prometheus.GaugeVec

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec
	RateLimited  prometheus.Counter
}

// NewMetrics creates all metrics and registers them on reg
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Bookings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduling",
			Name:      "bookings_total",
			Help:      "Booking attempts by origin and outcome",
		}, []string{"origin", "outcome"}),
		Cancellations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduling",
			Name:      "cancellations_total",
			Help:      "Cancellation workflow transitions",
		}, []string{"action"}),
		Proposals: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduling",
			Name:      "proposals_total",
			Help:      "Proposal workflow transitions",
		}, []string{"action"}),
		StoredAppointments: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduling",
			Name:      "appointments",
			Help:      "Number of appointments currently in the store",
		}),
		PendingRequests: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduling",
			Name:      "pending_requests",
			Help:      "Requests awaiting staff review",
		}, []string{"kind"}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"method", "route"}),
		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		}),
	}
}

func (m *Metrics) ObserveBooking(origin, outcome string) {
	m.Bookings.WithLabelValues(origin, outcome).Inc()
}

func (m *Metrics) ObserveCancellation(action string) {
	m.Cancellations.WithLabelValues(action).Inc()
}

func (m *Metrics) ObserveProposal(action string) {
	m.Proposals.WithLabelValues(action).Inc()
}

// SetQueueSizes publishes store and queue sizes after a state change.
func (m *Metrics) SetQueueSizes(appointments, cancellations, proposals int) {
	m.StoredAppointments.Set(float64(appointments))
	m.PendingRequests.WithLabelValues("cancellation").Set(float64(cancellations))
	m.PendingRequests.WithLabelValues("proposal").Set(float64(proposals))
}
