//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"salon-scheduler/internal/domain/appointment"
	"salon-scheduler/internal/infra/repository"
	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/testutil/builder"
	"salon-scheduler/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() (usecase.BookingValidator, *clock.MockClock) {
	clk := clock.NewMockClock(builder.BaseTime)
	return usecase.NewBookingValidator(clk, appointment.DefaultBusinessHours()), clk
}

func bookingRequest(at time.Time) usecase.BookingRequest {
	return usecase.BookingRequest{
		Client:  builder.NewClientBuilder().MustBuild(),
		Service: builder.NewServiceBuilder().MustBuild(),
		At:      at,
	}
}

func TestBookingValidator_CheckTime(t *testing.T) {
	v, _ := newValidator()
	tomorrow := func(h, m int) time.Time { return builder.At(1, h, m) }

	cases := []struct {
		name  string
		at    time.Time
		errIs error
	}{
		{name: "07:59 tomorrow is before opening", at: tomorrow(7, 59), errIs: appointment.ErrOutsideBusinessHours},
		{name: "08:00 tomorrow is accepted", at: tomorrow(8, 0)},
		{name: "20:00 tomorrow is accepted", at: tomorrow(20, 0)},
		{name: "20:01 tomorrow is after closing", at: tomorrow(20, 1), errIs: appointment.ErrOutsideBusinessHours},
		{name: "exactly now is not in the future", at: builder.BaseTime, errIs: appointment.ErrPastDate},
		{name: "one nanosecond after now", at: builder.BaseTime.Add(time.Nanosecond)},
		{name: "yesterday", at: builder.At(-1, 10, 0), errIs: appointment.ErrPastDate},
		{name: "past and outside hours reports past date first", at: builder.At(-1, 22, 0), errIs: appointment.ErrPastDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.CheckTime(tc.at)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestBookingValidator_ValidateAndBook(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts a valid booking", func(t *testing.T) {
		v, _ := newValidator()
		store := repository.NewAppointmentStore()
		req := bookingRequest(builder.At(1, 10, 0))
		req.Confirmed = true

		appt, err := v.ValidateAndBook(ctx, store, req)
		require.NoError(t, err)

		assert.Equal(t, 1, store.Len())
		assert.True(t, appt.Confirmed())
		assert.Equal(t, appointment.CancellationNone, appt.CancellationStatus())
		assert.Equal(t, builder.BaseTime, appt.CreatedAt())
	})

	t.Run("same client same instant conflicts", func(t *testing.T) {
		v, _ := newValidator()
		store := repository.NewAppointmentStore()
		req := bookingRequest(builder.At(1, 10, 0))

		_, err := v.ValidateAndBook(ctx, store, req)
		require.NoError(t, err)

		_, err = v.ValidateAndBook(ctx, store, req)
		assert.ErrorIs(t, err, appointment.ErrSlotConflict)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("different clients may share an instant", func(t *testing.T) {
		v, _ := newValidator()
		store := repository.NewAppointmentStore()
		at := builder.At(1, 10, 0)

		_, err := v.ValidateAndBook(ctx, store, bookingRequest(at))
		require.NoError(t, err)
		_, err = v.ValidateAndBook(ctx, store, bookingRequest(at))
		require.NoError(t, err)

		assert.Equal(t, 2, store.Len())
	})

	t.Run("rejected bookings leave the store untouched", func(t *testing.T) {
		v, _ := newValidator()
		store := repository.NewAppointmentStore()

		_, err := v.ValidateAndBook(ctx, store, bookingRequest(builder.At(-1, 10, 0)))
		assert.ErrorIs(t, err, appointment.ErrPastDate)
		_, err = v.ValidateAndBook(ctx, store, bookingRequest(builder.At(1, 21, 0)))
		assert.ErrorIs(t, err, appointment.ErrOutsideBusinessHours)

		assert.Equal(t, 0, store.Len())
	})

	t.Run("validation follows the clock", func(t *testing.T) {
		v, clk := newValidator()
		store := repository.NewAppointmentStore()
		at := builder.At(1, 10, 0)

		clk.Set(at.Add(time.Minute))
		_, err := v.ValidateAndBook(ctx, store, bookingRequest(at))
		assert.ErrorIs(t, err, appointment.ErrPastDate)
	})

	t.Run("cancelled context", func(t *testing.T) {
		v, _ := newValidator()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := v.ValidateAndBook(cctx, repository.NewAppointmentStore(), bookingRequest(builder.At(1, 10, 0)))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBookingValidator_ValidateMove(t *testing.T) {
	v, _ := newValidator()
	store := repository.NewAppointmentStore()
	client := builder.NewClientBuilder().MustBuild()
	at10 := builder.At(1, 10, 0)
	at11 := builder.At(1, 11, 0)

	appt := builder.NewAppointmentBuilder().WithClient(client).WithScheduledAt(at10).MustBuild()
	other := builder.NewAppointmentBuilder().WithClient(client).WithScheduledAt(at11).MustBuild()
	store.InsertSorted(appt)
	store.InsertSorted(other)

	assert.NoError(t, v.ValidateMove(store, appt, at10), "keeping its own slot is not a conflict")
	assert.ErrorIs(t, v.ValidateMove(store, appt, at11), appointment.ErrSlotConflict)
	assert.ErrorIs(t, v.ValidateMove(store, appt, builder.At(1, 7, 0)), appointment.ErrOutsideBusinessHours)
}
