package repository

import (
	"context"
	"errors"

	"medilocate/internal/domain/catalog"
	"medilocate/internal/infra"
	"medilocate/internal/pkg/pgconv"
	"medilocate/internal/usecase/commands"
	"medilocate/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const pgForeignKeyViolation = "23503"

type InventoryRepository struct {
	db infra.DBTX
}

func NewInventoryRepository(db infra.DBTX) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const createInventoryLineSQL = `
INSERT INTO inventory (shop_id, medicine_id, price, stock_quantity)
VALUES ($1, $2, $3, $4)
RETURNING id, shop_id, medicine_id, price, stock_quantity, created_at`

func (r *InventoryRepository) CreateLine(ctx context.Context, line *catalog.InventoryLine) (*queries.InventoryLineView, error) {
	row := r.db.QueryRow(ctx, createInventoryLineSQL,
		line.ShopID(),
		line.MedicineID(),
		pgconv.DecimalToNumeric(line.Price()),
		line.StockQuantity(),
	)

	view, err := scanInventoryLineView(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("inventory line references missing shop or medicine", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to create inventory line", err)
	}

	return view, nil
}

const updateInventoryLineSQL = `
UPDATE inventory
SET price = COALESCE($3, price),
    stock_quantity = COALESCE($4, stock_quantity)
WHERE id = $1 AND shop_id = $2
RETURNING id, shop_id, medicine_id, price, stock_quantity, created_at`

// UpdateLine keys the row on (id, shop_id) so a pharmacy can only touch its
// own lines. Nil params leave the column as is.
func (r *InventoryRepository) UpdateLine(ctx context.Context, id, shopID int64, params commands.UpdateInventoryLineParams) (*queries.InventoryLineView, error) {
	price := pgtype.Numeric{Valid: false}
	if params.Price != nil {
		price = pgconv.DecimalToNumeric(*params.Price)
	}
	stock := pgtype.Int4{Valid: false}
	if params.StockQuantity != nil {
		stock = pgtype.Int4{Int32: *params.StockQuantity, Valid: true}
	}

	row := r.db.QueryRow(ctx, updateInventoryLineSQL, id, shopID, price, stock)

	view, err := scanInventoryLineView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory line not found for shop", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update inventory line", err)
	}

	return view, nil
}

const deleteInventoryLineSQL = `
DELETE FROM inventory
WHERE id = $1 AND shop_id = $2`

func (r *InventoryRepository) DeleteLine(ctx context.Context, id, shopID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteInventoryLineSQL, id, shopID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete inventory line", err)
	}

	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInventoryLineView(row rowScanner) (*queries.InventoryLineView, error) {
	var (
		view      queries.InventoryLineView
		price     pgtype.Numeric
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.ShopID, &view.MedicineID, &price, &view.StockQuantity, &createdAt)
	if err != nil {
		return nil, err
	}

	view.Price, err = pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
