package components

import (
	"salon-scheduler/internal/infra/repository"
	"salon-scheduler/internal/infra/uow"
	"salon-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewAppointmentStore,
		repository.NewCancellationQueue,
		repository.NewProposalQueue,
		repository.NewCatalogFromConfig,
		repository.NewIdempotencyStore,
		// UnitOfWork
		fx.Annotate(
			uow.NewMemoryUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)
