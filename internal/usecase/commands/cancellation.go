package commands

import (
	"context"
	"log/slog"

	"salon-scheduler/internal/domain/cancellation"
	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/pkg/metrics"
	"salon-scheduler/internal/usecase/queries"
	"salon-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=cancellation.go -destination=../../testutil/mock/commands/cancellation_mock.go -package=commandsmock -build_constraint=unit

type CancellationCommands interface {
	// Request locks the appointment until staff decide; a blank reason is stored as a placeholder
	Request(ctx context.Context, appointmentID uuid.UUID, reason string) (*queries.CancellationRequestView, error)
	// Approve removes the appointment and discards the request
	Approve(ctx context.Context, requestID uuid.UUID) error
	// Reject discards the request and makes the appointment editable again
	Reject(ctx context.Context, requestID uuid.UUID) error
}

type cancellationCommandsImpl struct {
	uow     shared.UnitOfWork
	metrics *metrics.Metrics
	clock   clock.Clock
}

func NewCancellationCommands(uow shared.UnitOfWork, m *metrics.Metrics, clk clock.Clock) CancellationCommands {
	return &cancellationCommandsImpl{uow: uow, metrics: m, clock: clk}
}

func (uc *cancellationCommandsImpl) Request(ctx context.Context, appointmentID uuid.UUID, reason string) (*queries.CancellationRequestView, error) {
	var view *queries.CancellationRequestView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, ok := tx.Appointments().FindByID(appointmentID)
		if !ok {
			return errs.ErrAppointmentNotFound
		}

		now := uc.clock.Now()
		if err := appt.RequestCancellation(now); err != nil {
			return markDomain(err)
		}

		req := cancellation.NewRequest(appt, reason, now)
		tx.Cancellations().Add(req)

		uc.metrics.ObserveCancellation(metrics.ActionRequested)
		publishSizes(uc.metrics, tx)
		view = queries.NewCancellationRequestView(req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *cancellationCommandsImpl) Approve(ctx context.Context, requestID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, ok := tx.Cancellations().FindByID(requestID)
		if !ok {
			return errs.ErrCancellationRequestNotFound
		}

		if appt, found := tx.Appointments().FindByID(req.AppointmentID()); found {
			if err := appt.ApproveCancellation(uc.clock.Now()); err != nil {
				return markDomain(err)
			}
			tx.Appointments().RemoveByID(appt.ID())
		} else {
			slog.WarnContext(ctx, "approved cancellation for an appointment that is already gone",
				"request_id", requestID, "appointment_id", req.AppointmentID())
		}
		tx.Cancellations().Remove(requestID)

		uc.metrics.ObserveCancellation(metrics.ActionApproved)
		publishSizes(uc.metrics, tx)
		return nil
	})
}

func (uc *cancellationCommandsImpl) Reject(ctx context.Context, requestID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, ok := tx.Cancellations().FindByID(requestID)
		if !ok {
			return errs.ErrCancellationRequestNotFound
		}

		if appt, found := tx.Appointments().FindByID(req.AppointmentID()); found {
			if err := appt.RejectCancellation(uc.clock.Now()); err != nil {
				return markDomain(err)
			}
		}
		tx.Cancellations().Remove(requestID)

		uc.metrics.ObserveCancellation(metrics.ActionRejected)
		publishSizes(uc.metrics, tx)
		return nil
	})
}
