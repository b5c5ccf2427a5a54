package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrNegativeStock = errors.New("stock quantity cannot be negative")
)

// StockStatus is derived from the quantity thresholds, never stored.
type StockStatus string

const (
	StockStatusOut StockStatus = "out_of_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusIn  StockStatus = "in_stock"

	lowStockThreshold = 10
)

func StockStatusFor(quantity int32) StockStatus {
	switch {
	case quantity == 0:
		return StockStatusOut
	case quantity <= lowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// InventoryLine pairs one shop with one medicine at a price and quantity.
// Nothing prevents duplicate (shop, medicine) pairs; callers should treat
// duplicates as valid but discouraged.
type InventoryLine struct {
	shopID        int64
	medicineID    int64
	price         decimal.Decimal
	stockQuantity int32
}

func NewInventoryLine(shopID, medicineID int64, price decimal.Decimal, stockQuantity int32) (*InventoryLine, error) {
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if stockQuantity < 0 {
		return nil, ErrNegativeStock
	}

	return &InventoryLine{
		shopID:        shopID,
		medicineID:    medicineID,
		price:         price.Round(2),
		stockQuantity: stockQuantity,
	}, nil
}

func (l *InventoryLine) ShopID() int64          { return l.shopID }
func (l *InventoryLine) MedicineID() int64      { return l.medicineID }
func (l *InventoryLine) Price() decimal.Decimal { return l.price }
func (l *InventoryLine) StockQuantity() int32   { return l.stockQuantity }

func (l *InventoryLine) InStock() bool { return l.stockQuantity > 0 }

func (l *InventoryLine) Status() StockStatus { return StockStatusFor(l.stockQuantity) }
