package components

import (
	"office-booking/internal/handler"
	"office-booking/internal/handler/api"
	"office-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewVisitHandler,
		api.NewRoomReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
