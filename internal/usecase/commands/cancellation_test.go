//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-scheduler/internal/domain/appointment"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/pkg/ptr"
	"salon-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancellationCommands_RequestAndApprove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt, err := f.book(t, f.alice, f.haircut, dec12(10, 30))
	require.NoError(t, err)
	_, err = f.book(t, f.ben, f.facial, dec12(11, 0))
	require.NoError(t, err)

	f.clock.Add(time.Minute)
	req, err := f.cancellations.Request(ctx, appt.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "No reason provided", req.Reason)
	assert.Equal(t, appt.ID, req.AppointmentID)
	assert.Equal(t, f.alice.ID(), req.Client.ID)
	assert.True(t, dec12(10, 30).Equal(req.ScheduledAt))
	assert.Equal(t, fixtureNow.Add(time.Minute), req.RequestedAt)

	locked, err := f.apptQueries.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", locked.CancellationStatus)
	assert.False(t, locked.Editable)

	_, err = f.cancellations.Request(ctx, appt.ID, "changed my mind")
	assert.ErrorIs(t, err, appointment.ErrCancellationAlreadyPending)

	require.NoError(t, f.cancellations.Approve(ctx, req.ID))

	_, err = f.apptQueries.GetByID(ctx, appt.ID)
	assert.ErrorIs(t, err, errs.ErrAppointmentNotFound)
	assert.Len(t, f.list(t), 1)

	pending, err := f.reqQueries.PendingCancellations(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.ErrorIs(t, f.cancellations.Approve(ctx, req.ID), errs.ErrCancellationRequestNotFound)
}

func TestCancellationCommands_Reject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt, err := f.book(t, f.alice, f.haircut, dec12(10, 30))
	require.NoError(t, err)

	req, err := f.cancellations.Request(ctx, appt.ID, "traffic")
	require.NoError(t, err)
	assert.Equal(t, "traffic", req.Reason)

	require.NoError(t, f.cancellations.Reject(ctx, req.ID))

	view, err := f.apptQueries.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "none", view.CancellationStatus)
	assert.True(t, view.Editable)

	_, err = f.appointments.Reschedule(ctx, appt.ID, commands.RescheduleRequest{ScheduledAt: ptr.Of(dec12(13, 0))})
	assert.NoError(t, err, "editable again after rejection")

	_, err = f.cancellations.Request(ctx, appt.ID, "")
	assert.NoError(t, err, "a new request may follow a rejection")

	assert.ErrorIs(t, f.cancellations.Reject(ctx, req.ID), errs.ErrCancellationRequestNotFound)
}

func TestCancellationCommands_Ordering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.book(t, f.alice, f.haircut, dec12(15, 0))
	require.NoError(t, err)
	b, err := f.book(t, f.ben, f.haircut, dec12(9, 0))
	require.NoError(t, err)

	_, err = f.cancellations.Request(ctx, a.ID, "first")
	require.NoError(t, err)
	f.clock.Add(time.Minute)
	_, err = f.cancellations.Request(ctx, b.ID, "second")
	require.NoError(t, err)

	pending, err := f.reqQueries.PendingCancellations(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "first", pending[0].Reason)
	assert.Equal(t, "second", pending[1].Reason)
}

func TestCancellationCommands_UnknownAppointment(t *testing.T) {
	f := newFixture(t)

	_, err := f.cancellations.Request(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, errs.ErrAppointmentNotFound)
}
