package request

import (
	"salon-scheduler/internal/usecase/commands"
)

// CorrectContactRequest only touches the fields that are present and non-blank
type CorrectContactRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Phone *string `json:"phone,omitempty" binding:"omitempty,max=32"`
	Email *string `json:"email,omitempty" binding:"omitempty,max=254"`
}

func (r CorrectContactRequest) ToCommand() commands.CorrectContactRequest {
	return commands.CorrectContactRequest{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
	}
}
