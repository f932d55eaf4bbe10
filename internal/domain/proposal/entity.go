package proposal

import (
	"strings"
	"time"

	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// NoMessagePlaceholder is shown for proposals submitted without a note.
const NoMessagePlaceholder = "N/A"

var (
	ErrMissingClient  = errs.New("proposal requires a client")
	ErrMissingService = errs.New("proposal requires a service")
)

// Request is a client's proposed slot. The slot is not validated until staff approve it.
type Request struct {
	id          uuid.UUID
	client      catalog.Client
	service     catalog.ServiceItem
	preferredAt time.Time
	message     string
	submittedAt time.Time
}

func NewRequest(client catalog.Client, service catalog.ServiceItem, preferredAt time.Time, message string, now time.Time) (*Request, error) {
	if client.IsZero() {
		return nil, ErrMissingClient
	}
	if service.IsZero() {
		return nil, ErrMissingService
	}
	return &Request{
		id:          uuid.New(),
		client:      client,
		service:     service,
		preferredAt: preferredAt,
		message:     strings.TrimSpace(message),
		submittedAt: now,
	}, nil
}

func (r *Request) ID() uuid.UUID                { return r.id }
func (r *Request) Client() catalog.Client       { return r.client }
func (r *Request) Service() catalog.ServiceItem { return r.service }
func (r *Request) PreferredAt() time.Time       { return r.preferredAt }
func (r *Request) Message() string              { return r.message }
func (r *Request) SubmittedAt() time.Time       { return r.submittedAt }

func (r *Request) DisplayMessage() string {
	if r.message == "" {
		return NoMessagePlaceholder
	}
	return r.message
}

// ApplyClientDetails keeps the queued proposal in step with a corrected client record.
func (r *Request) ApplyClientDetails(c catalog.Client) bool {
	if !r.client.SameAs(c) || r.client == c {
		return false
	}
	r.client = c
	return true
}
