package repository

import (
	"slices"
	"sync"

	"salon-scheduler/internal/domain/proposal"

	"github.com/google/uuid"
)

// ProposalQueue is a FIFO of proposals awaiting staff review.
type ProposalQueue struct {
	mu        sync.RWMutex
	proposals []*proposal.Request
}

func NewProposalQueue() *ProposalQueue {
	return &ProposalQueue{}
}

func (q *ProposalQueue) Add(p *proposal.Request) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.proposals = append(q.proposals, p)
}

func (q *ProposalQueue) Remove(id uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := slices.IndexFunc(q.proposals, func(p *proposal.Request) bool { return p.ID() == id })
	if i < 0 {
		return false
	}
	q.proposals = slices.Delete(q.proposals, i, i+1)
	return true
}

func (q *ProposalQueue) FindByID(id uuid.UUID) (*proposal.Request, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	i := slices.IndexFunc(q.proposals, func(p *proposal.Request) bool { return p.ID() == id })
	if i < 0 {
		return nil, false
	}
	return q.proposals[i], true
}

func (q *ProposalQueue) List() []*proposal.Request {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return slices.Clone(q.proposals)
}
