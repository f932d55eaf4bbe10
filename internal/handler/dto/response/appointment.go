package response

import (
	"time"

	"salon-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClientResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone,omitempty"`
	Email string    `json:"email,omitempty"`
}

type ServiceResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price string    `json:"price"`
}

type AppointmentResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Client             ClientResponse  `json:"client"`
	Service            ServiceResponse `json:"service"`
	ScheduledAt        time.Time       `json:"scheduledAt"`
	Confirmed          bool            `json:"confirmed"`
	CancellationStatus string          `json:"cancellationStatus"`
	Editable           bool            `json:"editable"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func FromClientView(v queries.ClientView) ClientResponse {
	var res ClientResponse
	_ = copier.Copy(&res, &v)
	return res
}

func FromServiceView(v queries.ServiceView) ServiceResponse {
	return ServiceResponse{
		ID:    v.ID,
		Name:  v.Name,
		Price: v.Price.StringFixed(2),
	}
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 v.ID,
		Client:             FromClientView(v.Client),
		Service:            FromServiceView(v.Service),
		ScheduledAt:        v.ScheduledAt,
		Confirmed:          v.Confirmed,
		CancellationStatus: v.CancellationStatus,
		Editable:           v.Editable,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromAppointmentList(views []*queries.AppointmentView) []*AppointmentResponse {
	res := make([]*AppointmentResponse, len(views))
	for i, v := range views {
		res[i] = FromAppointmentView(v)
	}
	return res
}
