package bootstrap

import (
	"context"
	"log/slog"

	"amenity-booking/internal/pkg/config"
	"amenity-booking/internal/scheduler"
	"amenity-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, tenants scheduler.TenantLister, bookings commands.BookingCommands, logger *slog.Logger) error {
	if !cfg.Scheduler.Enabled {
		logger.Info("Cron scheduler disabled")
		return nil
	}

	s, err := scheduler.NewScheduler(cfg.Scheduler, tenants, bookings, logger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Stop(ctx)
			return nil
		},
	})
	return nil
}
