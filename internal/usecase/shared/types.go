package shared

import (
	"time"

	"github.com/google/uuid"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	Endpoint            string
	RequestHash         string
	ResultAppointmentID uuid.UUID
	CreatedAt           time.Time
}
