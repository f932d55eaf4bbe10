package response

import (
	"time"

	"salon-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type CancellationRequestResponse struct {
	ID            uuid.UUID       `json:"id"`
	AppointmentID uuid.UUID       `json:"appointmentId"`
	Client        ClientResponse  `json:"client"`
	Service       ServiceResponse `json:"service"`
	ScheduledAt   time.Time       `json:"scheduledAt"`
	Reason        string          `json:"reason"`
	RequestedAt   time.Time       `json:"requestedAt"`
}

type ProposalResponse struct {
	ID          uuid.UUID       `json:"id"`
	Client      ClientResponse  `json:"client"`
	Service     ServiceResponse `json:"service"`
	PreferredAt time.Time       `json:"preferredAt"`
	Message     string          `json:"message"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

func FromCancellationRequestView(v *queries.CancellationRequestView) *CancellationRequestResponse {
	return &CancellationRequestResponse{
		ID:            v.ID,
		AppointmentID: v.AppointmentID,
		Client:        FromClientView(v.Client),
		Service:       FromServiceView(v.Service),
		ScheduledAt:   v.ScheduledAt,
		Reason:        v.Reason,
		RequestedAt:   v.RequestedAt,
	}
}

func FromCancellationRequestList(views []*queries.CancellationRequestView) []*CancellationRequestResponse {
	res := make([]*CancellationRequestResponse, len(views))
	for i, v := range views {
		res[i] = FromCancellationRequestView(v)
	}
	return res
}

func FromProposalView(v *queries.ProposalView) *ProposalResponse {
	return &ProposalResponse{
		ID:          v.ID,
		Client:      FromClientView(v.Client),
		Service:     FromServiceView(v.Service),
		PreferredAt: v.PreferredAt,
		Message:     v.Message,
		SubmittedAt: v.SubmittedAt,
	}
}

func FromProposalList(views []*queries.ProposalView) []*ProposalResponse {
	res := make([]*ProposalResponse, len(views))
	for i, v := range views {
		res[i] = FromProposalView(v)
	}
	return res
}
