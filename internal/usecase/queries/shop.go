package queries

import (
	"context"

	"medilocate/internal/domain/catalog"
	"medilocate/internal/infra"
	"medilocate/internal/pkg/errs"
)

var ErrShopNotFound = errs.New("shop not found")

type ShopReadStore interface {
	ListShops(ctx context.Context) ([]ShopView, error)
	FindShopByID(ctx context.Context, id int64) (*ShopView, error)
	ShopInventory(ctx context.Context, shopID int64) ([]ShopInventoryItem, error)
}

// ShopInventoryEntry carries the derived stock status alongside the line.
type ShopInventoryEntry struct {
	ShopInventoryItem
	Status catalog.StockStatus `json:"status"`
}

type ShopInventoryView struct {
	Shop      ShopView             `json:"shop"`
	Inventory []ShopInventoryEntry `json:"inventory"`
}

type ShopQueries interface {
	ListShops(ctx context.Context) ([]ShopView, error)
	GetShopInventory(ctx context.Context, shopID int64) (*ShopInventoryView, error)
}

type shopQueriesImpl struct {
	store ShopReadStore
}

func NewShopQueries(store ShopReadStore) ShopQueries {
	return &shopQueriesImpl{store: store}
}

func (q *shopQueriesImpl) ListShops(ctx context.Context) ([]ShopView, error) {
	return q.store.ListShops(ctx)
}

// GetShopInventory returns the shop with its joined inventory and a derived
// status per line. A shop with no lines yields an empty inventory, not an
// error; an unknown shop id does.
func (q *shopQueriesImpl) GetShopInventory(ctx context.Context, shopID int64) (*ShopInventoryView, error) {
	shop, err := q.store.FindShopByID(ctx, shopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}

	items, err := q.store.ShopInventory(ctx, shopID)
	if err != nil {
		return nil, err
	}

	entries := make([]ShopInventoryEntry, len(items))
	for i, item := range items {
		entries[i] = ShopInventoryEntry{
			ShopInventoryItem: item,
			Status:            catalog.StockStatusFor(item.StockQuantity),
		}
	}

	return &ShopInventoryView{Shop: *shop, Inventory: entries}, nil
}
