package request

import (
	"strings"
	"time"

	"salon-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	ClientID    uuid.UUID `json:"clientId" binding:"required"`
	ServiceID   uuid.UUID `json:"serviceId" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
}

func (r BookAppointmentRequest) ToCommand() commands.BookAppointmentRequest {
	return commands.BookAppointmentRequest{
		ClientID:    r.ClientID,
		ServiceID:   r.ServiceID,
		ScheduledAt: r.ScheduledAt,
	}
}

// WalkInBookingRequest is the staff booking form; contact is a phone number or an email address.
type WalkInBookingRequest struct {
	ClientName  string    `json:"clientName" binding:"required,notblank,max=100"`
	Contact     string    `json:"contact" binding:"required,notblank,max=254"`
	ServiceID   uuid.UUID `json:"serviceId" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
}

func (r WalkInBookingRequest) ToCommand() commands.WalkInBookingRequest {
	return commands.WalkInBookingRequest{
		ClientName:  strings.TrimSpace(r.ClientName),
		Contact:     strings.TrimSpace(r.Contact),
		ServiceID:   r.ServiceID,
		ScheduledAt: r.ScheduledAt,
	}
}

type RescheduleRequest struct {
	ServiceID   *uuid.UUID `json:"serviceId,omitempty" binding:"required_without=ScheduledAt"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty" binding:"required_without=ServiceID"`
}

func (r RescheduleRequest) ToCommand() commands.RescheduleRequest {
	return commands.RescheduleRequest{
		ServiceID:   r.ServiceID,
		ScheduledAt: r.ScheduledAt,
	}
}

type RequestCancellationRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}
