package queries

import (
	"context"

	"salon-scheduler/internal/usecase/shared"
)

//go:generate mockgen -source=request.go -destination=../../testutil/mock/queries/request_mock.go -package=queriesmock -build_constraint=unit

// RequestQueries backs the staff review screens.
type RequestQueries interface {
	// PendingCancellations returns requests oldest first
	PendingCancellations(ctx context.Context) ([]*CancellationRequestView, error)
	// PendingProposals returns proposals in submission order
	PendingProposals(ctx context.Context) ([]*ProposalView, error)
}

type requestQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRequestQueries(uow shared.UnitOfWork) RequestQueries {
	return &requestQueriesImpl{uow: uow}
}

func (q *requestQueriesImpl) PendingCancellations(ctx context.Context) ([]*CancellationRequestView, error) {
	var views []*CancellationRequestView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, tx shared.ReadTx) error {
		list := tx.Cancellations().List()
		views = make([]*CancellationRequestView, len(list))
		for i, r := range list {
			views[i] = NewCancellationRequestView(r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) PendingProposals(ctx context.Context) ([]*ProposalView, error) {
	var views []*ProposalView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, tx shared.ReadTx) error {
		list := tx.Proposals().List()
		views = make([]*ProposalView, len(list))
		for i, p := range list {
			views[i] = NewProposalView(p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
