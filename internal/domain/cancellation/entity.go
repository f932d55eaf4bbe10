package cancellation

import (
	"strings"
	"time"

	"salon-scheduler/internal/domain/appointment"
	"salon-scheduler/internal/domain/catalog"

	"github.com/google/uuid"
)

// NoReasonPlaceholder is shown when the client gives no reason.
const NoReasonPlaceholder = "No reason provided"

// Request snapshots the appointment as it looked when the client asked to cancel.
type Request struct {
	id            uuid.UUID
	appointmentID uuid.UUID
	client        catalog.Client
	service       catalog.ServiceItem
	scheduledAt   time.Time
	reason        string
	requestedAt   time.Time
}

// NewRequest never fails on the reason; a blank one is stored as NoReasonPlaceholder.
func NewRequest(appt *appointment.Appointment, reason string, now time.Time) *Request {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = NoReasonPlaceholder
	}

	return &Request{
		id:            uuid.New(),
		appointmentID: appt.ID(),
		client:        appt.Client(),
		service:       appt.Service(),
		scheduledAt:   appt.ScheduledAt(),
		reason:        reason,
		requestedAt:   now,
	}
}

func (r *Request) ID() uuid.UUID                { return r.id }
func (r *Request) AppointmentID() uuid.UUID     { return r.appointmentID }
func (r *Request) Client() catalog.Client       { return r.client }
func (r *Request) Service() catalog.ServiceItem { return r.service }
func (r *Request) ScheduledAt() time.Time       { return r.scheduledAt }
func (r *Request) Reason() string               { return r.reason }
func (r *Request) RequestedAt() time.Time       { return r.requestedAt }

