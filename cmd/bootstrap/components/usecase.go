package components

import (
	"salon-scheduler/internal/domain/appointment"
	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/usecase"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBusinessHours,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAppointmentCommands,
		commands.NewCancellationCommands,
		commands.NewProposalCommands,
		commands.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAppointmentQueries,
		queries.NewRequestQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewBookingValidator,
	),
)

func NewBusinessHours(cfg config.Config) (appointment.BusinessHours, error) {
	loc, err := cfg.Schedule.Location()
	if err != nil {
		return appointment.BusinessHours{}, err
	}
	return appointment.NewBusinessHours(cfg.Schedule.OpenAt, cfg.Schedule.CloseAt, loc)
}
