package bootstrap

import (
	"context"

	"amenity-booking/internal/handler/middleware"
	"amenity-booking/internal/infra/tenant"
	"amenity-booking/internal/pkg/config"
	"amenity-booking/internal/scheduler"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		fx.Annotate(
			NewTenantRegistry,
			fx.As(new(tenant.PoolResolver)),
			fx.As(new(middleware.TenantDirectory)),
			fx.As(new(scheduler.TenantLister)),
		),
	),
)

// NewTenantRegistry opens the default tenant eagerly so a bad DB config fails at startup.
func NewTenantRegistry(lc fx.Lifecycle, cfg config.Config) (*tenant.Registry, error) {
	registry := tenant.NewRegistry(cfg)
	if registry.Has(cfg.Tenant.Default) {
		if _, err := registry.PoolFor(cfg.Tenant.Default); err != nil {
			return nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			registry.Close()
			return nil
		},
	})

	return registry, nil
}
