package components

import (
	"medilocate/internal/pkg/clock"
	"medilocate/internal/usecase/commands"
	"medilocate/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSearchQueries,
		queries.NewShopQueries,
		queries.NewMedicineQueries,
		queries.NewReservationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewInventoryCommands,
		commands.NewCatalogCommands,
	),
)
