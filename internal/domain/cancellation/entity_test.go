//go:build unit

package cancellation_test

import (
	"testing"
	"time"

	"salon-scheduler/internal/domain/cancellation"
	"salon-scheduler/internal/testutil/builder"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	appt := builder.NewAppointmentBuilder().MustBuild()
	now := builder.BaseTime.Add(time.Minute)

	t.Run("snapshots the appointment", func(t *testing.T) {
		req := cancellation.NewRequest(appt, "  Schedule conflict  ", now)

		assert.Equal(t, appt.ID(), req.AppointmentID())
		assert.Equal(t, appt.Client(), req.Client())
		assert.Equal(t, appt.Service(), req.Service())
		assert.Equal(t, appt.ScheduledAt(), req.ScheduledAt())
		assert.Equal(t, "Schedule conflict", req.Reason())
		assert.Equal(t, now, req.RequestedAt())
	})

	t.Run("blank reason is stored as the placeholder", func(t *testing.T) {
		for _, reason := range []string{"", "   "} {
			req := cancellation.NewRequest(appt, reason, now)
			assert.Equal(t, "No reason provided", req.Reason())
		}
	})
}
