package components

import (
	"medilocate/internal/handler"
	"medilocate/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSearchHandler,
		api.NewShopHandler,
		api.NewMedicineHandler,
		api.NewReservationHandler,
		api.NewInventoryHandler,
	),
	fx.Invoke(handler.NewRouter),
)
