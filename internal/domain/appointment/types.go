package appointment

import "salon-scheduler/internal/pkg/errs"

var (
	ErrPastDate             = errs.New("appointment time must be in the future")
	ErrOutsideBusinessHours = errs.New("appointment time is outside business hours")
	ErrSlotConflict         = errs.New("client already has an appointment at this time")

	ErrCancellationAlreadyPending = errs.New("a cancellation request is already pending for this appointment")
	ErrNoCancellationPending      = errs.New("no cancellation request is pending for this appointment")
	ErrAppointmentLocked          = errs.New("appointment is locked by a pending cancellation request")

	ErrMissingClient      = errs.New("appointment requires a client")
	ErrMissingService     = errs.New("appointment requires a service")
	ErrInvalidStatus      = errs.New("invalid cancellation status")
	ErrInvalidHoursFormat = errs.New("business hours must be formatted as HH:MM")
	ErrInvalidHoursRange  = errs.New("opening time must not be after closing time")
)
