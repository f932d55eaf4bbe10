//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"salon-scheduler/internal/domain/appointment"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/pkg/metrics"
	"salon-scheduler/internal/pkg/ptr"
	"salon-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentCommands_Book(t *testing.T) {
	t.Run("double booking the same client and instant conflicts", func(t *testing.T) {
		f := newFixture(t)

		appt, err := f.book(t, f.alice, f.haircut, dec12(10, 30))
		require.NoError(t, err)
		assert.False(t, appt.Confirmed, "client bookings start unconfirmed")
		assert.Equal(t, "none", appt.CancellationStatus)

		list := f.list(t)
		require.Len(t, list, 1)
		assert.True(t, dec12(10, 30).Equal(list[0].ScheduledAt))

		_, err = f.book(t, f.alice, f.manicure, dec12(10, 30))
		assert.ErrorIs(t, err, appointment.ErrSlotConflict)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.Len(t, f.list(t), 1)
	})

	t.Run("business hours boundaries", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.book(t, f.alice, f.haircut, dec12(7, 59))
		assert.ErrorIs(t, err, appointment.ErrOutsideBusinessHours)

		_, err = f.book(t, f.alice, f.haircut, dec12(8, 0))
		assert.NoError(t, err)

		_, err = f.book(t, f.alice, f.haircut, dec12(20, 0))
		assert.NoError(t, err)

		_, err = f.book(t, f.alice, f.haircut, dec12(20, 1))
		assert.ErrorIs(t, err, appointment.ErrOutsideBusinessHours)

		assert.Len(t, f.list(t), 2)
		assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.Bookings.WithLabelValues(metrics.OriginClient, metrics.OutcomeOutsideHours)))
	})

	t.Run("past date", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.book(t, f.alice, f.haircut, fixtureNow.Add(-time.Hour))
		assert.ErrorIs(t, err, appointment.ErrPastDate)
	})

	t.Run("unknown client or service", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		_, err := f.appointments.Book(ctx, commands.BookAppointmentRequest{ClientID: uuid.New(), ServiceID: f.haircut.ID(), ScheduledAt: dec12(10, 0)}, uuid.Nil)
		assert.ErrorIs(t, err, errs.ErrClientNotFound)

		_, err = f.appointments.Book(ctx, commands.BookAppointmentRequest{ClientID: f.alice.ID(), ServiceID: uuid.New(), ScheduledAt: dec12(10, 0)}, uuid.Nil)
		assert.ErrorIs(t, err, errs.ErrServiceNotFound)
	})

	t.Run("list stays chronological", func(t *testing.T) {
		f := newFixture(t)
		for _, at := range []time.Time{dec12(15, 0), dec12(9, 0), dec12(12, 0)} {
			_, err := f.book(t, f.ben, f.facial, at)
			require.NoError(t, err)
		}

		list := f.list(t)
		require.Len(t, list, 3)
		for i := 1; i < len(list); i++ {
			assert.True(t, list[i-1].ScheduledAt.Before(list[i].ScheduledAt))
		}
	})
}

func TestAppointmentCommands_BookIdempotency(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	key := uuid.New()
	req := commands.BookAppointmentRequest{ClientID: f.alice.ID(), ServiceID: f.haircut.ID(), ScheduledAt: dec12(11, 0)}

	first, err := f.appointments.Book(ctx, req, key)
	require.NoError(t, err)
	assert.False(t, first.IsReplayed)

	second, err := f.appointments.Book(ctx, req, key)
	require.NoError(t, err)
	assert.True(t, second.IsReplayed)
	assert.Equal(t, first.Appointment.ID, second.Appointment.ID)
	assert.Len(t, f.list(t), 1)

	other := req
	other.ServiceID = f.manicure.ID()
	_, err = f.appointments.Book(ctx, other, key)
	assert.ErrorIs(t, err, errs.ErrIdempotencyKeyReused)
}

func TestAppointmentCommands_ConcurrentBooking(t *testing.T) {
	f := newFixture(t)
	const attempts = 25

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.book(t, f.alice, f.haircut, dec12(10, 30))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded, conflicted := 0, 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errs.Is(err, appointment.ErrSlotConflict):
			conflicted++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)
	assert.Len(t, f.list(t), 1)
}

func TestAppointmentCommands_BookWalkIn(t *testing.T) {
	ctx := context.Background()

	t.Run("existing client found by phone", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.appointments.BookWalkIn(ctx, commands.WalkInBookingRequest{
			ClientName:  "Alice",
			Contact:     "09171234567",
			ServiceID:   f.manicure.ID(),
			ScheduledAt: dec12(14, 0),
		})
		require.NoError(t, err)

		assert.True(t, res.Appointment.Confirmed)
		assert.Equal(t, f.alice.ID(), res.Appointment.Client.ID)
		assert.Len(t, f.catalog.Clients(), 2)
	})

	t.Run("unknown email registers a new client", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.appointments.BookWalkIn(ctx, commands.WalkInBookingRequest{
			ClientName:  "Carla",
			Contact:     "carla@mail.com",
			ServiceID:   f.facial.ID(),
			ScheduledAt: dec12(16, 0),
		})
		require.NoError(t, err)

		assert.Equal(t, "carla@mail.com", res.Appointment.Client.Email)
		assert.Empty(t, res.Appointment.Client.Phone)
		assert.Len(t, f.catalog.Clients(), 3)
	})

	t.Run("rejected walk-in does not register the client", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.appointments.BookWalkIn(ctx, commands.WalkInBookingRequest{
			ClientName:  "Dan",
			Contact:     "09170000001",
			ServiceID:   f.facial.ID(),
			ScheduledAt: dec12(21, 0),
		})
		assert.ErrorIs(t, err, appointment.ErrOutsideBusinessHours)
		assert.Len(t, f.catalog.Clients(), 2)
	})

	t.Run("new client needs a name", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.appointments.BookWalkIn(ctx, commands.WalkInBookingRequest{
			Contact:     "09170000002",
			ServiceID:   f.facial.ID(),
			ScheduledAt: dec12(10, 0),
		})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}

func TestAppointmentCommands_Reschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("moves and keeps the list ordered", func(t *testing.T) {
		f := newFixture(t)
		early, err := f.book(t, f.alice, f.haircut, dec12(9, 0))
		require.NoError(t, err)
		_, err = f.book(t, f.ben, f.haircut, dec12(12, 0))
		require.NoError(t, err)

		moved, err := f.appointments.Reschedule(ctx, early.ID, commands.RescheduleRequest{
			ServiceID:   ptr.Of(f.facial.ID()),
			ScheduledAt: ptr.Of(dec12(15, 0)),
		})
		require.NoError(t, err)
		assert.Equal(t, "Facial", moved.Service.Name)

		list := f.list(t)
		require.Len(t, list, 2)
		assert.Equal(t, early.ID, list[1].ID)
	})

	t.Run("own slot is not a conflict but another slot of the same client is", func(t *testing.T) {
		f := newFixture(t)
		a, err := f.book(t, f.alice, f.haircut, dec12(9, 0))
		require.NoError(t, err)
		_, err = f.book(t, f.alice, f.haircut, dec12(10, 0))
		require.NoError(t, err)

		_, err = f.appointments.Reschedule(ctx, a.ID, commands.RescheduleRequest{ServiceID: ptr.Of(f.manicure.ID())})
		assert.NoError(t, err)

		_, err = f.appointments.Reschedule(ctx, a.ID, commands.RescheduleRequest{ScheduledAt: ptr.Of(dec12(10, 0))})
		assert.ErrorIs(t, err, appointment.ErrSlotConflict)
	})

	t.Run("locked while a cancellation is pending", func(t *testing.T) {
		f := newFixture(t)
		a, err := f.book(t, f.alice, f.haircut, dec12(9, 0))
		require.NoError(t, err)
		_, err = f.cancellations.Request(ctx, a.ID, "")
		require.NoError(t, err)

		_, err = f.appointments.Reschedule(ctx, a.ID, commands.RescheduleRequest{ScheduledAt: ptr.Of(dec12(11, 0))})
		assert.ErrorIs(t, err, appointment.ErrAppointmentLocked)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.appointments.Reschedule(ctx, uuid.New(), commands.RescheduleRequest{})
		assert.ErrorIs(t, err, errs.ErrAppointmentNotFound)
	})
}

func TestAppointmentCommands_Cancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.book(t, f.alice, f.haircut, dec12(9, 0))
	require.NoError(t, err)
	_, err = f.cancellations.Request(ctx, a.ID, "sick")
	require.NoError(t, err)

	require.NoError(t, f.appointments.Cancel(ctx, a.ID))

	assert.Empty(t, f.list(t))
	pending, err := f.reqQueries.PendingCancellations(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending, "a direct cancel drops the pending request too")

	assert.ErrorIs(t, f.appointments.Cancel(ctx, a.ID), errs.ErrAppointmentNotFound)
}
