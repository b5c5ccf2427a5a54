package readstore

import (
	"context"

	"medilocate/internal/infra"
	"medilocate/internal/pkg/pgconv"
	"medilocate/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type InventoryReadStore struct {
	db infra.DBTX
}

func NewInventoryReadStore(db infra.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: db}
}

const searchByMedicineNameSQL = `
SELECT i.id, i.shop_id, i.medicine_id, i.price, i.stock_quantity, i.created_at,
       s.id, s.name, s.address, s.latitude, s.longitude, s.created_at,
       m.id, m.name, m.description, m.created_at
FROM inventory i
INNER JOIN shops s ON i.shop_id = s.id
INNER JOIN medicines m ON i.medicine_id = m.id
WHERE m.name ILIKE '%' || $1 || '%'
ORDER BY i.stock_quantity DESC`

// SearchByMedicineName matches the medicine name case-insensitively as a
// substring. Rows come back stock-descending; distance ranking happens
// above this layer, and this order is what breaks distance ties.
func (s *InventoryReadStore) SearchByMedicineName(ctx context.Context, name string) ([]queries.InventoryMatch, error) {
	rows, err := s.db.Query(ctx, searchByMedicineNameSQL, name)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search inventory by medicine name", err)
	}
	defer rows.Close()

	var result []queries.InventoryMatch
	for rows.Next() {
		var (
			match         queries.InventoryMatch
			price         pgtype.Numeric
			lineCreatedAt pgtype.Timestamptz
			shopCreatedAt pgtype.Timestamptz
			medCreatedAt  pgtype.Timestamptz
		)
		err := rows.Scan(
			&match.Line.ID, &match.Line.ShopID, &match.Line.MedicineID, &price, &match.Line.StockQuantity, &lineCreatedAt,
			&match.Shop.ID, &match.Shop.Name, &match.Shop.Address, &match.Shop.Latitude, &match.Shop.Longitude, &shopCreatedAt,
			&match.Medicine.ID, &match.Medicine.Name, &match.Medicine.Description, &medCreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory match row", err)
		}
		match.Line.Price, err = pgconv.DecimalFromNumeric(price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert inventory price", err)
		}
		match.Line.CreatedAt = pgconv.TimeFromPgtype(lineCreatedAt)
		match.Shop.CreatedAt = pgconv.TimeFromPgtype(shopCreatedAt)
		match.Medicine.CreatedAt = pgconv.TimeFromPgtype(medCreatedAt)
		result = append(result, match)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read inventory match rows", err)
	}

	return result, nil
}

const findLineByShopAndMedicineSQL = `
SELECT id, shop_id, medicine_id, price, stock_quantity, created_at
FROM inventory
WHERE shop_id = $1 AND medicine_id = $2
ORDER BY id
LIMIT 1`

// FindLineByShopAndMedicine returns the first-inserted line for the pair.
// Duplicate (shop, medicine) lines are tolerated; the admission check only
// ever sees the oldest one.
func (s *InventoryReadStore) FindLineByShopAndMedicine(ctx context.Context, shopID, medicineID int64) (*queries.InventoryLineView, error) {
	var (
		view      queries.InventoryLineView
		price     pgtype.Numeric
		createdAt pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, findLineByShopAndMedicineSQL, shopID, medicineID).
		Scan(&view.ID, &view.ShopID, &view.MedicineID, &price, &view.StockQuantity, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory line not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inventory line", err)
	}

	view.Price, err = pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert inventory price", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}
