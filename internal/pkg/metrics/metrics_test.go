//go:build unit

package metrics_test

import (
	"testing"

	"salon-scheduler/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := metrics.NewMetrics("salon_test", prometheus.NewRegistry())

	m.ObserveBooking(metrics.OriginClient, metrics.OutcomeCreated)
	m.ObserveBooking(metrics.OriginClient, metrics.OutcomeCreated)
	m.ObserveBooking(metrics.OriginWalkIn, metrics.OutcomeConflict)
	m.ObserveCancellation(metrics.ActionRequested)
	m.SetQueueSizes(3, 1, 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Bookings.WithLabelValues(metrics.OriginClient, metrics.OutcomeCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Bookings.WithLabelValues(metrics.OriginWalkIn, metrics.OutcomeConflict)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Cancellations.WithLabelValues(metrics.ActionRequested)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.StoredAppointments))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PendingRequests.WithLabelValues("proposal")))
}

func TestNewMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.NewMetrics("salon_test", prometheus.NewRegistry())
		metrics.NewMetrics("salon_test", prometheus.NewRegistry())
	})
}
