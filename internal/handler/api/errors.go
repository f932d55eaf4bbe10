package api

import (
	"net/http"

	"salon-scheduler/internal/domain/appointment"
	"salon-scheduler/internal/handler/httperr"
	"salon-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// checked in order; the first match wins
var usecaseErrors = []errorMapping{
	{errs.ErrAppointmentNotFound, http.StatusNotFound, "Appointment not found"},
	{errs.ErrCancellationRequestNotFound, http.StatusNotFound, "Cancellation request not found"},
	{errs.ErrProposalNotFound, http.StatusNotFound, "Proposal not found"},
	{errs.ErrClientNotFound, http.StatusNotFound, "Client not found"},
	{errs.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
	{errs.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency key was used with a different request"},
	{appointment.ErrSlotConflict, http.StatusConflict, "Client already has an appointment at this time"},
	{appointment.ErrCancellationAlreadyPending, http.StatusConflict, "Cancellation already requested"},
	{appointment.ErrAppointmentLocked, http.StatusConflict, "Appointment is locked by a pending cancellation"},
	{appointment.ErrPastDate, http.StatusUnprocessableEntity, "Appointment time is in the past"},
	{appointment.ErrOutsideBusinessHours, http.StatusUnprocessableEntity, "Appointment time is outside business hours"},
	{errs.ErrDomainValidation, http.StatusUnprocessableEntity, "Domain validation failed"},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range usecaseErrors {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
