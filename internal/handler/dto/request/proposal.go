package request

import (
	"time"

	"salon-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitProposalRequest struct {
	ClientID    uuid.UUID `json:"clientId" binding:"required"`
	ServiceID   uuid.UUID `json:"serviceId" binding:"required"`
	PreferredAt time.Time `json:"preferredAt" binding:"required"`
	Message     string    `json:"message" binding:"max=1000"`
}

func (r SubmitProposalRequest) ToCommand() commands.SubmitProposalRequest {
	return commands.SubmitProposalRequest{
		ClientID:    r.ClientID,
		ServiceID:   r.ServiceID,
		PreferredAt: r.PreferredAt,
		Message:     r.Message,
	}
}
