package readstore

import (
	"context"

	"medilocate/internal/infra"
	"medilocate/internal/pkg/pgconv"
	"medilocate/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ShopReadStore struct {
	db infra.DBTX
}

func NewShopReadStore(db infra.DBTX) *ShopReadStore {
	return &ShopReadStore{db: db}
}

const listShopsSQL = `
SELECT id, name, address, latitude, longitude, created_at
FROM shops
ORDER BY id`

func (s *ShopReadStore) ListShops(ctx context.Context) ([]queries.ShopView, error) {
	rows, err := s.db.Query(ctx, listShopsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shops", err)
	}
	defer rows.Close()

	var result []queries.ShopView
	for rows.Next() {
		var (
			view      queries.ShopView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Address, &view.Latitude, &view.Longitude, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan shop row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read shop rows", err)
	}

	return result, nil
}

const findShopByIDSQL = `
SELECT id, name, address, latitude, longitude, created_at
FROM shops
WHERE id = $1`

func (s *ShopReadStore) FindShopByID(ctx context.Context, id int64) (*queries.ShopView, error) {
	var (
		view      queries.ShopView
		createdAt pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, findShopByIDSQL, id).
		Scan(&view.ID, &view.Name, &view.Address, &view.Latitude, &view.Longitude, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shop by ID", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}

const shopInventorySQL = `
SELECT i.id, i.shop_id, i.medicine_id, i.price, i.stock_quantity, i.created_at,
       m.id, m.name, m.description, m.created_at
FROM inventory i
INNER JOIN medicines m ON i.medicine_id = m.id
WHERE i.shop_id = $1
ORDER BY i.id`

// ShopInventory returns the shop's lines joined with their medicines. A shop
// with no lines yields an empty slice; shop existence is the caller's check.
func (s *ShopReadStore) ShopInventory(ctx context.Context, shopID int64) ([]queries.ShopInventoryItem, error) {
	rows, err := s.db.Query(ctx, shopInventorySQL, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query shop inventory", err)
	}
	defer rows.Close()

	var result []queries.ShopInventoryItem
	for rows.Next() {
		var (
			item          queries.ShopInventoryItem
			price         pgtype.Numeric
			lineCreatedAt pgtype.Timestamptz
			medCreatedAt  pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID, &item.ShopID, &item.MedicineID, &price, &item.StockQuantity, &lineCreatedAt,
			&item.Medicine.ID, &item.Medicine.Name, &item.Medicine.Description, &medCreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan shop inventory row", err)
		}
		item.Price, err = pgconv.DecimalFromNumeric(price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert inventory price", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(lineCreatedAt)
		item.Medicine.CreatedAt = pgconv.TimeFromPgtype(medCreatedAt)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read shop inventory rows", err)
	}

	return result, nil
}
