package components

import (
	"amenity-booking/internal/infra/readstore"
	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/internal/infra/tenant"
	"amenity-booking/internal/infra/uow"
	"amenity-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Space
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SpaceReadQueries)),
		),
		fx.Annotate(
			readstore.NewSpaceReadStore,
			fx.As(new(queries.SpaceReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.OccupancyReadStore)),
		),
	),
)

// Write-side repositories are built per transaction inside the UoW.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}

// NewDBTX routes every statement to the pool of the request's tenant.
func NewDBTX(pools tenant.PoolResolver) sqlc.DBTX {
	return tenant.NewRoutingDB(pools)
}
