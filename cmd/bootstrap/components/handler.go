package components

import (
	"amenity-booking/internal/handler"
	"amenity-booking/internal/handler/api"
	"amenity-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSpaceHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		func(spaces *api.SpaceHandler, bookings *api.BookingHandler) handler.Handlers {
			return handler.Handlers{Spaces: spaces, Bookings: bookings}
		},
	),
	fx.Invoke(
		handler.RegisterValidators,
		handler.NewRouter,
	),
)
