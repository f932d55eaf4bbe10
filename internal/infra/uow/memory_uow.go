package uow

import (
	"context"
	"sync"

	"salon-scheduler/internal/infra/repository"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/usecase/shared"
)

var errScopeBegin = errs.New("failed to begin unit of work")

// MemoryUoW serialises compound operations over the in-memory stores.
// Within holds the write lock for the whole callback, so a conflict check and the
// insert that follows it can never interleave with another booking.
type MemoryUoW struct {
	mu sync.RWMutex

	appointments  *repository.AppointmentStore
	cancellations *repository.CancellationQueue
	proposals     *repository.ProposalQueue
	catalog       *repository.Catalog
	idempotency   *repository.IdempotencyStore
}

func NewMemoryUoW(
	appointments *repository.AppointmentStore,
	cancellations *repository.CancellationQueue,
	proposals *repository.ProposalQueue,
	catalog *repository.Catalog,
	idempotency *repository.IdempotencyStore,
) *MemoryUoW {
	return &MemoryUoW{
		appointments:  appointments,
		cancellations: cancellations,
		proposals:     proposals,
		catalog:       catalog,
		idempotency:   idempotency,
	}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, errScopeBegin)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	return fn(ctx, &memTx{uow: u})
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.ReadTx) error) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, errScopeBegin)
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	return fn(ctx, &memReadTx{uow: u})
}

type memTx struct {
	uow *MemoryUoW
}

func (t *memTx) Appointments() shared.AppointmentRepository   { return t.uow.appointments }
func (t *memTx) Cancellations() shared.CancellationRepository { return t.uow.cancellations }
func (t *memTx) Proposals() shared.ProposalRepository         { return t.uow.proposals }
func (t *memTx) Catalog() shared.CatalogRepository            { return t.uow.catalog }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return t.uow.idempotency }

type memReadTx struct {
	uow *MemoryUoW
}

func (t *memReadTx) Appointments() shared.AppointmentReader   { return t.uow.appointments }
func (t *memReadTx) Cancellations() shared.CancellationReader { return t.uow.cancellations }
func (t *memReadTx) Proposals() shared.ProposalReader         { return t.uow.proposals }
func (t *memReadTx) Catalog() shared.CatalogReader            { return t.uow.catalog }
