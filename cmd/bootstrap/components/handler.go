package components

import (
	"salon-scheduler/internal/handler"
	"salon-scheduler/internal/handler/api"
	"salon-scheduler/internal/handler/middleware"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/pkg/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
		api.NewProposalHandler,
		api.NewCatalogHandler,
		api.NewStaffHandler,
		handler.NewHandlers,
		func(cfg config.Config, m *metrics.Metrics) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit, m)
		},
	),
	fx.Invoke(handler.NewRouter),
)
