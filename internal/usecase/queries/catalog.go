package queries

import (
	"context"

	"salon-scheduler/internal/usecase/shared"
)

//go:generate mockgen -source=catalog.go -destination=../../testutil/mock/queries/catalog_mock.go -package=queriesmock -build_constraint=unit

type CatalogQueries interface {
	Clients(ctx context.Context) ([]ClientView, error)
	Services(ctx context.Context) ([]ServiceView, error)
}

type catalogQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogQueries(uow shared.UnitOfWork) CatalogQueries {
	return &catalogQueriesImpl{uow: uow}
}

func (q *catalogQueriesImpl) Clients(ctx context.Context) ([]ClientView, error) {
	var views []ClientView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, tx shared.ReadTx) error {
		clients := tx.Catalog().Clients()
		views = make([]ClientView, len(clients))
		for i, c := range clients {
			views[i] = NewClientView(c)
		}
		return nil
	})
	return views, err
}

func (q *catalogQueriesImpl) Services(ctx context.Context) ([]ServiceView, error) {
	var views []ServiceView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, tx shared.ReadTx) error {
		services := tx.Catalog().Services()
		views = make([]ServiceView, len(services))
		for i, s := range services {
			views[i] = NewServiceView(s)
		}
		return nil
	})
	return views, err
}
