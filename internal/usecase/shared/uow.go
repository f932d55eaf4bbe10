package shared

import (
	"context"
	"time"

	"salon-scheduler/internal/domain/appointment"
	"salon-scheduler/internal/domain/cancellation"
	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/domain/proposal"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: exclusive scope for check-then-act operations; nothing else reads or writes meanwhile
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: shared scope giving a consistent view across all stores
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx ReadTx) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	Cancellations() CancellationRepository
	Proposals() ProposalRepository
	Catalog() CatalogRepository
	Idempotency() IdempotencyRepository
}

type ReadTx interface {
	Appointments() AppointmentReader
	Cancellations() CancellationReader
	Proposals() ProposalReader
	Catalog() CatalogReader
}

// AppointmentReader exposes the chronologically ordered appointment store.
type AppointmentReader interface {
	FindByID(id uuid.UUID) (*appointment.Appointment, bool)
	ToOrderedList() []*appointment.Appointment
	SearchByClientName(text string) []*appointment.Appointment
	HasConflict(clientID uuid.UUID, at time.Time) bool
	HasConflictExcluding(clientID uuid.UUID, at time.Time, excludeID uuid.UUID) bool
	Len() int
}

type AppointmentRepository interface {
	AppointmentReader
	InsertSorted(a *appointment.Appointment)
	RemoveByID(id uuid.UUID) bool
}

type CancellationReader interface {
	FindByID(id uuid.UUID) (*cancellation.Request, bool)
	FindByAppointmentID(appointmentID uuid.UUID) (*cancellation.Request, bool)
	// List returns pending requests oldest first
	List() []*cancellation.Request
}

type CancellationRepository interface {
	CancellationReader
	Add(r *cancellation.Request)
	Remove(id uuid.UUID) bool
}

type ProposalReader interface {
	FindByID(id uuid.UUID) (*proposal.Request, bool)
	// List returns queued proposals in submission order
	List() []*proposal.Request
}

type ProposalRepository interface {
	ProposalReader
	Add(p *proposal.Request)
	Remove(id uuid.UUID) bool
}

type CatalogReader interface {
	ClientByID(id uuid.UUID) (catalog.Client, bool)
	ClientByContact(contact string) (catalog.Client, bool)
	ServiceByID(id uuid.UUID) (catalog.ServiceItem, bool)
	ServiceByName(name string) (catalog.ServiceItem, bool)
	Clients() []catalog.Client
	Services() []catalog.ServiceItem
}

type CatalogRepository interface {
	CatalogReader
	SaveClient(c catalog.Client)
	SaveService(s catalog.ServiceItem)
}

// IdempotencyRepository remembers completed bookings per key until the record expires.
type IdempotencyRepository interface {
	Get(key uuid.UUID) (*IdempotencyRecord, bool)
	Put(rec IdempotencyRecord) error
}
