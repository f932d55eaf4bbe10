package usecase

import (
	"context"
	"time"

	"salon-scheduler/internal/domain/appointment"
	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/usecase/shared"
)

type BookingRequest struct {
	Client    catalog.Client
	Service   catalog.ServiceItem
	At        time.Time
	Confirmed bool
}

// BookingValidator is the single gate every new or moved appointment passes through.
// Rules are checked in order: past date, business hours, client conflict.
type BookingValidator interface {
	CheckTime(at time.Time) error
	// ValidateAndBook must run inside UnitOfWork.Within so the conflict check and the insert are atomic
	ValidateAndBook(ctx context.Context, appointments shared.AppointmentRepository, req BookingRequest) (*appointment.Appointment, error)
	// ValidateMove checks a new time for an existing appointment, ignoring the appointment itself
	ValidateMove(appointments shared.AppointmentReader, appt *appointment.Appointment, at time.Time) error
}

type bookingValidatorImpl struct {
	clock clock.Clock
	hours appointment.BusinessHours
}

func NewBookingValidator(clock clock.Clock, hours appointment.BusinessHours) BookingValidator {
	return &bookingValidatorImpl{
		clock: clock,
		hours: hours,
	}
}

func (v *bookingValidatorImpl) CheckTime(at time.Time) error {
	if !at.After(v.clock.Now()) {
		return appointment.ErrPastDate
	}
	if !v.hours.Contains(at) {
		return appointment.ErrOutsideBusinessHours
	}
	return nil
}

func (v *bookingValidatorImpl) ValidateAndBook(ctx context.Context, appointments shared.AppointmentRepository, req BookingRequest) (*appointment.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := v.CheckTime(req.At); err != nil {
		return nil, err
	}
	if appointments.HasConflict(req.Client.ID(), req.At) {
		return nil, appointment.ErrSlotConflict
	}

	appt, err := appointment.NewAppointment(req.Client, req.Service, req.At, req.Confirmed, v.clock.Now())
	if err != nil {
		return nil, err
	}
	appointments.InsertSorted(appt)
	return appt, nil
}

func (v *bookingValidatorImpl) ValidateMove(appointments shared.AppointmentReader, appt *appointment.Appointment, at time.Time) error {
	if err := v.CheckTime(at); err != nil {
		return err
	}
	if appointments.HasConflictExcluding(appt.Client().ID(), at, appt.ID()) {
		return appointment.ErrSlotConflict
	}
	return nil
}
