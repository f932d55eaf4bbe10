package bootstrap

import (
	"log/slog"

	"salon-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logSchedule),
)

// logSchedule runs after the logger is installed so the effective booking window shows up at boot.
func logSchedule(cfg config.Config, _ *slog.Logger) {
	slog.Info("schedule configured",
		"open_at", cfg.Schedule.OpenAt,
		"close_at", cfg.Schedule.CloseAt,
		"timezone", cfg.Schedule.TimeZone,
		"catalog_seed", cfg.Catalog.Seed,
		"rate_limit_rps", cfg.RateLimit.RPS)
}
