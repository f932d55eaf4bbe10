package repository

import (
	"slices"
	"sort"
	"sync"

	"salon-scheduler/internal/domain/cancellation"

	"github.com/google/uuid"
)

// CancellationQueue holds pending cancellation requests ordered by request time.
type CancellationQueue struct {
	mu       sync.RWMutex
	requests []*cancellation.Request
}

func NewCancellationQueue() *CancellationQueue {
	return &CancellationQueue{}
}

func (q *CancellationQueue) Add(r *cancellation.Request) {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := sort.Search(len(q.requests), func(i int) bool {
		return q.requests[i].RequestedAt().After(r.RequestedAt())
	})
	q.requests = slices.Insert(q.requests, i, r)
}

func (q *CancellationQueue) Remove(id uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := slices.IndexFunc(q.requests, func(r *cancellation.Request) bool { return r.ID() == id })
	if i < 0 {
		return false
	}
	q.requests = slices.Delete(q.requests, i, i+1)
	return true
}

func (q *CancellationQueue) FindByID(id uuid.UUID) (*cancellation.Request, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	for _, r := range q.requests {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

func (q *CancellationQueue) FindByAppointmentID(appointmentID uuid.UUID) (*cancellation.Request, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	for _, r := range q.requests {
		if r.AppointmentID() == appointmentID {
			return r, true
		}
	}
	return nil, false
}

func (q *CancellationQueue) List() []*cancellation.Request {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return slices.Clone(q.requests)
}
