package commands

import (
	"context"

	"medilocate/internal/domain/catalog"
	"medilocate/internal/infra"
	"medilocate/internal/pkg/errs"
	"medilocate/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

var (
	ErrInventoryLineNotFound = errs.New("inventory line not found")
	ErrInvalidReference      = errs.New("shop or medicine does not exist")
)

type CreateInventoryLineParams struct {
	ShopID        int64
	MedicineID    int64
	Price         decimal.Decimal
	StockQuantity int32
}

// UpdateInventoryLineParams is a partial update: nil fields are untouched.
type UpdateInventoryLineParams struct {
	Price         *decimal.Decimal
	StockQuantity *int32
}

type InventoryRepository interface {
	CreateLine(ctx context.Context, line *catalog.InventoryLine) (*queries.InventoryLineView, error)
	// UpdateLine and DeleteLine take the shop id as part of the lookup key so
	// one pharmacy cannot touch another's line by id alone.
	UpdateLine(ctx context.Context, id, shopID int64, params UpdateInventoryLineParams) (*queries.InventoryLineView, error)
	DeleteLine(ctx context.Context, id, shopID int64) (bool, error)
}

type InventoryCommands interface {
	CreateLine(ctx context.Context, params CreateInventoryLineParams) (*queries.InventoryLineView, error)
	UpdateLine(ctx context.Context, id, shopID int64, params UpdateInventoryLineParams) (*queries.InventoryLineView, error)
	DeleteLine(ctx context.Context, id, shopID int64) error
}

type inventoryCommandsImpl struct {
	repo InventoryRepository
}

func NewInventoryCommands(repo InventoryRepository) InventoryCommands {
	return &inventoryCommandsImpl{repo: repo}
}

func (c *inventoryCommandsImpl) CreateLine(
	ctx context.Context,
	params CreateInventoryLineParams,
) (*queries.InventoryLineView, error) {
	line, err := catalog.NewInventoryLine(params.ShopID, params.MedicineID, params.Price, params.StockQuantity)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	view, err := c.repo.CreateLine(ctx, line)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrInvalidReference
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *inventoryCommandsImpl) UpdateLine(
	ctx context.Context,
	id, shopID int64,
	params UpdateInventoryLineParams,
) (*queries.InventoryLineView, error) {
	if params.Price != nil && params.Price.IsNegative() {
		return nil, errs.Mark(catalog.ErrNegativePrice, ErrDomainValidation)
	}
	if params.StockQuantity != nil && *params.StockQuantity < 0 {
		return nil, errs.Mark(catalog.ErrNegativeStock, ErrDomainValidation)
	}

	view, err := c.repo.UpdateLine(ctx, id, shopID, params)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInventoryLineNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *inventoryCommandsImpl) DeleteLine(ctx context.Context, id, shopID int64) error {
	deleted, err := c.repo.DeleteLine(ctx, id, shopID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !deleted {
		return ErrInventoryLineNotFound
	}
	return nil
}
