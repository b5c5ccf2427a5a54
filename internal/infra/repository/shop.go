package repository

import (
	"context"

	"medilocate/internal/domain/catalog"
	"medilocate/internal/infra"
	"medilocate/internal/pkg/pgconv"
	"medilocate/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ShopRepository struct {
	db infra.DBTX
}

func NewShopRepository(db infra.DBTX) *ShopRepository {
	return &ShopRepository{db: db}
}

const createShopSQL = `
INSERT INTO shops (name, address, latitude, longitude)
VALUES ($1, $2, $3, $4)
RETURNING id, name, address, latitude, longitude, created_at`

func (r *ShopRepository) Create(ctx context.Context, shop *catalog.Shop) (*queries.ShopView, error) {
	var (
		view      queries.ShopView
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, createShopSQL,
		shop.Name(), shop.Address(), shop.Latitude(), shop.Longitude(),
	).Scan(&view.ID, &view.Name, &view.Address, &view.Latitude, &view.Longitude, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create shop", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}
