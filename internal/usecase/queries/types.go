package queries

import (
	"time"

	"salon-scheduler/internal/domain/appointment"
	"salon-scheduler/internal/domain/cancellation"
	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/domain/proposal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientView represents read-optimized client data
type ClientView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Email string    `json:"email"`
}

// ServiceView represents read-optimized service data
type ServiceView struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// AppointmentView is a copy taken under the read lock; it never aliases the store.
type AppointmentView struct {
	ID                 uuid.UUID   `json:"id"`
	Client             ClientView  `json:"client"`
	Service            ServiceView `json:"service"`
	ScheduledAt        time.Time   `json:"scheduled_at"`
	Confirmed          bool        `json:"confirmed"`
	CancellationStatus string      `json:"cancellation_status"`
	Editable           bool        `json:"editable"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

type CancellationRequestView struct {
	ID            uuid.UUID   `json:"id"`
	AppointmentID uuid.UUID   `json:"appointment_id"`
	Client        ClientView  `json:"client"`
	Service       ServiceView `json:"service"`
	ScheduledAt   time.Time   `json:"scheduled_at"`
	Reason        string      `json:"reason"`
	RequestedAt   time.Time   `json:"requested_at"`
}

type ProposalView struct {
	ID          uuid.UUID   `json:"id"`
	Client      ClientView  `json:"client"`
	Service     ServiceView `json:"service"`
	PreferredAt time.Time   `json:"preferred_at"`
	Message     string      `json:"message"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

func NewClientView(c catalog.Client) ClientView {
	return ClientView{ID: c.ID(), Name: c.Name(), Phone: c.Phone(), Email: c.Email()}
}

func NewServiceView(s catalog.ServiceItem) ServiceView {
	return ServiceView{ID: s.ID(), Name: s.Name(), Price: s.Price()}
}

func NewAppointmentView(a *appointment.Appointment) *AppointmentView {
	return &AppointmentView{
		ID:                 a.ID(),
		Client:             NewClientView(a.Client()),
		Service:            NewServiceView(a.Service()),
		ScheduledAt:        a.ScheduledAt(),
		Confirmed:          a.Confirmed(),
		CancellationStatus: a.CancellationStatus().String(),
		Editable:           a.IsEditable(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}

func NewCancellationRequestView(r *cancellation.Request) *CancellationRequestView {
	return &CancellationRequestView{
		ID:            r.ID(),
		AppointmentID: r.AppointmentID(),
		Client:        NewClientView(r.Client()),
		Service:       NewServiceView(r.Service()),
		ScheduledAt:   r.ScheduledAt(),
		Reason:        r.Reason(),
		RequestedAt:   r.RequestedAt(),
	}
}

func NewProposalView(p *proposal.Request) *ProposalView {
	return &ProposalView{
		ID:          p.ID(),
		Client:      NewClientView(p.Client()),
		Service:     NewServiceView(p.Service()),
		PreferredAt: p.PreferredAt(),
		Message:     p.DisplayMessage(),
		SubmittedAt: p.SubmittedAt(),
	}
}

func newAppointmentViews(list []*appointment.Appointment) []*AppointmentView {
	views := make([]*AppointmentView, len(list))
	for i, a := range list {
		views[i] = NewAppointmentView(a)
	}
	return views
}
