package appointment

import (
	"time"

	"salon-scheduler/internal/domain/catalog"

	"github.com/google/uuid"
)

type Appointment struct {
	id                 uuid.UUID
	client             catalog.Client
	service            catalog.ServiceItem
	scheduledAt        time.Time
	confirmed          bool
	cancellationStatus CancellationStatus
	createdAt          time.Time
	updatedAt          time.Time
}

// NewAppointment builds an appointment with no cancellation in flight.
// Time rules (future date, business hours, conflicts) are enforced by the booking validator, not here.
func NewAppointment(client catalog.Client, service catalog.ServiceItem, scheduledAt time.Time, confirmed bool, now time.Time) (*Appointment, error) {
	if client.IsZero() {
		return nil, ErrMissingClient
	}
	if service.IsZero() {
		return nil, ErrMissingService
	}

	return &Appointment{
		id:                 uuid.New(),
		client:             client,
		service:            service,
		scheduledAt:        scheduledAt,
		confirmed:          confirmed,
		cancellationStatus: CancellationNone,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func (a *Appointment) ID() uuid.UUID                          { return a.id }
func (a *Appointment) Client() catalog.Client                 { return a.client }
func (a *Appointment) Service() catalog.ServiceItem           { return a.service }
func (a *Appointment) ScheduledAt() time.Time                 { return a.scheduledAt }
func (a *Appointment) Confirmed() bool                        { return a.confirmed }
func (a *Appointment) CancellationStatus() CancellationStatus { return a.cancellationStatus }
func (a *Appointment) CreatedAt() time.Time                   { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time                   { return a.updatedAt }

// IsEditable is false while a cancellation request awaits staff review.
func (a *Appointment) IsEditable() bool {
	return a.cancellationStatus != CancellationPending
}

func (a *Appointment) RequestCancellation(now time.Time) error {
	if a.cancellationStatus == CancellationPending {
		return ErrCancellationAlreadyPending
	}
	a.cancellationStatus = CancellationPending
	a.updatedAt = now
	return nil
}

func (a *Appointment) ApproveCancellation(now time.Time) error {
	if a.cancellationStatus != CancellationPending {
		return ErrNoCancellationPending
	}
	a.cancellationStatus = CancellationApproved
	a.updatedAt = now
	return nil
}

// RejectCancellation reverts straight to None; Rejected is never observable on a stored
// appointment, so the client may ask again.
func (a *Appointment) RejectCancellation(now time.Time) error {
	if a.cancellationStatus != CancellationPending {
		return ErrNoCancellationPending
	}
	a.cancellationStatus = CancellationNone
	a.updatedAt = now
	return nil
}

// Reschedule changes service and time. Callers must take the appointment out of any
// ordered collection first and re-insert it afterwards.
func (a *Appointment) Reschedule(service catalog.ServiceItem, scheduledAt time.Time, now time.Time) error {
	if !a.IsEditable() {
		return ErrAppointmentLocked
	}
	if service.IsZero() {
		return ErrMissingService
	}
	a.service = service
	a.scheduledAt = scheduledAt
	a.updatedAt = now
	return nil
}

// ApplyClientDetails refreshes the client snapshot after a contact correction.
// It is a no-op for a different client.
func (a *Appointment) ApplyClientDetails(c catalog.Client, now time.Time) bool {
	if !a.client.SameAs(c) || a.client == c {
		return false
	}
	a.client = c
	a.updatedAt = now
	return true
}
