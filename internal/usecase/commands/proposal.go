package commands

import (
	"context"
	"time"

	"salon-scheduler/internal/domain/proposal"
	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/pkg/metrics"
	"salon-scheduler/internal/usecase"
	"salon-scheduler/internal/usecase/queries"
	"salon-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=proposal.go -destination=../../testutil/mock/commands/proposal_mock.go -package=commandsmock -build_constraint=unit

type SubmitProposalRequest struct {
	ClientID    uuid.UUID
	ServiceID   uuid.UUID
	PreferredAt time.Time
	Message     string
}

type ProposalCommands interface {
	// Submit queues the proposal without checking the slot
	Submit(ctx context.Context, req SubmitProposalRequest) (*queries.ProposalView, error)
	// Approve books the proposed slot as a confirmed appointment. On any booking error the
	// proposal stays queued.
	Approve(ctx context.Context, proposalID uuid.UUID) (*queries.AppointmentView, error)
	Reject(ctx context.Context, proposalID uuid.UUID) error
}

type proposalCommandsImpl struct {
	uow       shared.UnitOfWork
	validator usecase.BookingValidator
	metrics   *metrics.Metrics
	clock     clock.Clock
}

func NewProposalCommands(uow shared.UnitOfWork, validator usecase.BookingValidator, m *metrics.Metrics, clk clock.Clock) ProposalCommands {
	return &proposalCommandsImpl{
		uow:       uow,
		validator: validator,
		metrics:   m,
		clock:     clk,
	}
}

func (uc *proposalCommandsImpl) Submit(ctx context.Context, req SubmitProposalRequest) (*queries.ProposalView, error) {
	var view *queries.ProposalView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		client, err := lookupClient(tx, req.ClientID)
		if err != nil {
			return err
		}
		service, err := lookupService(tx, req.ServiceID)
		if err != nil {
			return err
		}

		p, err := proposal.NewRequest(client, service, req.PreferredAt, req.Message, uc.clock.Now())
		if err != nil {
			return markDomain(err)
		}
		tx.Proposals().Add(p)

		uc.metrics.ObserveProposal(metrics.ActionSubmitted)
		publishSizes(uc.metrics, tx)
		view = queries.NewProposalView(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *proposalCommandsImpl) Approve(ctx context.Context, proposalID uuid.UUID) (*queries.AppointmentView, error) {
	var view *queries.AppointmentView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, ok := tx.Proposals().FindByID(proposalID)
		if !ok {
			return errs.ErrProposalNotFound
		}

		appt, err := uc.validator.ValidateAndBook(ctx, tx.Appointments(), usecase.BookingRequest{
			Client:    p.Client(),
			Service:   p.Service(),
			At:        p.PreferredAt(),
			Confirmed: true,
		})
		if err != nil {
			uc.metrics.ObserveBooking(metrics.OriginProposal, bookingOutcome(err))
			return markDomain(err)
		}
		tx.Proposals().Remove(proposalID)

		uc.metrics.ObserveBooking(metrics.OriginProposal, metrics.OutcomeCreated)
		uc.metrics.ObserveProposal(metrics.ActionApproved)
		publishSizes(uc.metrics, tx)
		view = queries.NewAppointmentView(appt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *proposalCommandsImpl) Reject(ctx context.Context, proposalID uuid.UUID) error {
	return uc.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		if !tx.Proposals().Remove(proposalID) {
			return errs.ErrProposalNotFound
		}

		uc.metrics.ObserveProposal(metrics.ActionRejected)
		publishSizes(uc.metrics, tx)
		return nil
	})
}
