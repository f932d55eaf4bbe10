package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"salon-scheduler/internal/domain/appointment"
	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/pkg/metrics"
	"salon-scheduler/internal/pkg/patch"
	"salon-scheduler/internal/usecase"
	"salon-scheduler/internal/usecase/queries"
	"salon-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=appointment.go -destination=../../testutil/mock/commands/appointment_mock.go -package=commandsmock -build_constraint=unit

const bookEndpoint = "POST /api/appointments"

type BookAppointmentRequest struct {
	ClientID    uuid.UUID `json:"client_id"`
	ServiceID   uuid.UUID `json:"service_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// WalkInBookingRequest identifies the client by phone or email; unknown contacts become new clients.
type WalkInBookingRequest struct {
	ClientName  string
	Contact     string
	ServiceID   uuid.UUID
	ScheduledAt time.Time
}

type RescheduleRequest struct {
	ServiceID   *uuid.UUID
	ScheduledAt *time.Time
}

type BookingResult struct {
	Appointment *queries.AppointmentView
	IsReplayed  bool
}

type AppointmentCommands interface {
	// Book creates an unconfirmed appointment for a known client. A non-nil idempotency key replays
	// the original result for an identical request.
	Book(ctx context.Context, req BookAppointmentRequest, idempotencyKey uuid.UUID) (*BookingResult, error)
	// BookWalkIn is the staff path; the appointment is confirmed immediately
	BookWalkIn(ctx context.Context, req WalkInBookingRequest) (*BookingResult, error)
	Reschedule(ctx context.Context, id uuid.UUID, req RescheduleRequest) (*queries.AppointmentView, error)
	// Cancel removes an appointment outright and drops any cancellation request it had
	Cancel(ctx context.Context, id uuid.UUID) error
}

type appointmentCommandsImpl struct {
	uow       shared.UnitOfWork
	validator usecase.BookingValidator
	metrics   *metrics.Metrics
	clock     clock.Clock
}

func NewAppointmentCommands(uow shared.UnitOfWork, validator usecase.BookingValidator, m *metrics.Metrics, clk clock.Clock) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:       uow,
		validator: validator,
		metrics:   m,
		clock:     clk,
	}
}

func (uc *appointmentCommandsImpl) Book(ctx context.Context, req BookAppointmentRequest, idempotencyKey uuid.UUID) (*BookingResult, error) {
	requestHash := calculateRequestHash(req)

	var result *BookingResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if idempotencyKey != uuid.Nil {
			replayed, err := uc.replay(tx, idempotencyKey, requestHash)
			if err != nil || replayed != nil {
				result = replayed
				return err
			}
		}

		client, err := lookupClient(tx, req.ClientID)
		if err != nil {
			return err
		}
		service, err := lookupService(tx, req.ServiceID)
		if err != nil {
			return err
		}

		appt, err := uc.validator.ValidateAndBook(ctx, tx.Appointments(), usecase.BookingRequest{
			Client:  client,
			Service: service,
			At:      req.ScheduledAt,
		})
		if err != nil {
			uc.metrics.ObserveBooking(metrics.OriginClient, bookingOutcome(err))
			return markDomain(err)
		}

		if idempotencyKey != uuid.Nil {
			rec := shared.IdempotencyRecord{
				Key:                 idempotencyKey,
				Endpoint:            bookEndpoint,
				RequestHash:         requestHash,
				ResultAppointmentID: appt.ID(),
				CreatedAt:           uc.clock.Now(),
			}
			// the booking already happened; a lost record only means a retry is not deduplicated
			if perr := tx.Idempotency().Put(rec); perr != nil {
				slog.WarnContext(ctx, "failed to record idempotency key", "key", idempotencyKey, "error", perr)
			}
		}

		uc.metrics.ObserveBooking(metrics.OriginClient, metrics.OutcomeCreated)
		publishSizes(uc.metrics, tx)
		result = &BookingResult{Appointment: queries.NewAppointmentView(appt)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *appointmentCommandsImpl) replay(tx shared.Tx, key uuid.UUID, requestHash string) (*BookingResult, error) {
	rec, found := tx.Idempotency().Get(key)
	if !found {
		return nil, nil
	}
	if rec.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyKeyReused
	}

	appt, ok := tx.Appointments().FindByID(rec.ResultAppointmentID)
	if !ok {
		return nil, errs.Wrap(errs.ErrAppointmentNotFound, "replayed booking no longer exists")
	}
	uc.metrics.ObserveBooking(metrics.OriginClient, metrics.OutcomeReplayed)
	return &BookingResult{Appointment: queries.NewAppointmentView(appt), IsReplayed: true}, nil
}

func (uc *appointmentCommandsImpl) BookWalkIn(ctx context.Context, req WalkInBookingRequest) (*BookingResult, error) {
	var result *BookingResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		service, err := lookupService(tx, req.ServiceID)
		if err != nil {
			return err
		}

		client, isNew, err := findOrBuildClient(tx, req.ClientName, req.Contact)
		if err != nil {
			return markDomain(err)
		}

		appt, err := uc.validator.ValidateAndBook(ctx, tx.Appointments(), usecase.BookingRequest{
			Client:    client,
			Service:   service,
			At:        req.ScheduledAt,
			Confirmed: true,
		})
		if err != nil {
			uc.metrics.ObserveBooking(metrics.OriginWalkIn, bookingOutcome(err))
			return markDomain(err)
		}

		// only register the client once the booking is certain
		if isNew {
			tx.Catalog().SaveClient(client)
			slog.InfoContext(ctx, "walk-in client registered", "client_id", client.ID())
		}

		uc.metrics.ObserveBooking(metrics.OriginWalkIn, metrics.OutcomeCreated)
		publishSizes(uc.metrics, tx)
		result = &BookingResult{Appointment: queries.NewAppointmentView(appt)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// findOrBuildClient matches an existing client by phone or email. A contact with "@" is taken as an email.
func findOrBuildClient(tx shared.Tx, name, contact string) (catalog.Client, bool, error) {
	if existing, ok := tx.Catalog().ClientByContact(contact); ok {
		return existing, false, nil
	}

	contact = strings.TrimSpace(contact)
	phone, email := contact, ""
	if strings.Contains(contact, "@") {
		phone, email = "", contact
	}
	client, err := catalog.NewClient(uuid.Nil, name, phone, email)
	if err != nil {
		return catalog.Client{}, false, err
	}
	return client, true, nil
}

func (uc *appointmentCommandsImpl) Reschedule(ctx context.Context, id uuid.UUID, req RescheduleRequest) (*queries.AppointmentView, error) {
	var view *queries.AppointmentView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, ok := tx.Appointments().FindByID(id)
		if !ok {
			return errs.ErrAppointmentNotFound
		}
		if !appt.IsEditable() {
			return markDomain(appointment.ErrAppointmentLocked)
		}

		service := appt.Service()
		if req.ServiceID != nil {
			s, err := lookupService(tx, *req.ServiceID)
			if err != nil {
				return err
			}
			service = s
		}

		at := patch.Coalesce(req.ScheduledAt, appt.ScheduledAt())
		if !at.Equal(appt.ScheduledAt()) {
			if err := uc.validator.ValidateMove(tx.Appointments(), appt, at); err != nil {
				uc.metrics.ObserveBooking(metrics.OriginReschedule, bookingOutcome(err))
				return markDomain(err)
			}
		}

		// take it out so re-insertion restores the ordering for the new time
		tx.Appointments().RemoveByID(appt.ID())
		if err := appt.Reschedule(service, at, uc.clock.Now()); err != nil {
			tx.Appointments().InsertSorted(appt)
			return markDomain(err)
		}
		tx.Appointments().InsertSorted(appt)

		uc.metrics.ObserveBooking(metrics.OriginReschedule, metrics.OutcomeCreated)
		view = queries.NewAppointmentView(appt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *appointmentCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if !tx.Appointments().RemoveByID(id) {
			return errs.ErrAppointmentNotFound
		}
		if pending, ok := tx.Cancellations().FindByAppointmentID(id); ok {
			tx.Cancellations().Remove(pending.ID())
		}

		slog.InfoContext(ctx, "appointment cancelled by staff", "appointment_id", id)
		uc.metrics.ObserveCancellation(metrics.ActionCancelledByStaff)
		publishSizes(uc.metrics, tx)
		return nil
	})
}
