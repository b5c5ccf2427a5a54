package components

import (
	"medilocate/internal/infra"
	"medilocate/internal/infra/readstore"
	"medilocate/internal/infra/repository"
	"medilocate/internal/usecase/commands"
	"medilocate/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Read side
		fx.Annotate(
			readstore.NewShopReadStore,
			fx.As(new(queries.ShopReadStore)),
		),
		fx.Annotate(
			readstore.NewMedicineReadStore,
			fx.As(new(queries.MedicineReadStore)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventorySearchStore)),
			fx.As(new(commands.InventoryLineFinder)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Write side
		fx.Annotate(
			repository.NewShopRepository,
			fx.As(new(commands.ShopRepository)),
		),
		fx.Annotate(
			repository.NewMedicineRepository,
			fx.As(new(commands.MedicineRepository)),
		),
		fx.Annotate(
			repository.NewInventoryRepository,
			fx.As(new(commands.InventoryRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
