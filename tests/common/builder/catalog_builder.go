//go:build unit || e2e

package builder

import (
	"time"

	"medilocate/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type InventoryMatchBuilder struct {
	LineID        int64
	ShopID        int64
	ShopName      string
	Latitude      float64
	Longitude     float64
	MedicineID    int64
	MedicineName  string
	Price         decimal.Decimal
	StockQuantity int32
}

func NewInventoryMatchBuilder() *InventoryMatchBuilder {
	return &InventoryMatchBuilder{
		LineID:        1,
		ShopID:        1,
		ShopName:      "City Care Pharmacy",
		Latitude:      19.0896,
		Longitude:     72.8656,
		MedicineID:    1,
		MedicineName:  "Paracetamol 500mg",
		Price:         decimal.RequireFromString("45.50"),
		StockQuantity: 25,
	}
}

func (b *InventoryMatchBuilder) With(mutate func(*InventoryMatchBuilder)) *InventoryMatchBuilder {
	mutate(b)
	return b
}

func (b *InventoryMatchBuilder) Build() queries.InventoryMatch {
	createdAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return queries.InventoryMatch{
		Line: queries.InventoryLineView{
			ID:            b.LineID,
			ShopID:        b.ShopID,
			MedicineID:    b.MedicineID,
			Price:         b.Price,
			StockQuantity: b.StockQuantity,
			CreatedAt:     createdAt,
		},
		Shop: queries.ShopView{
			ID:        b.ShopID,
			Name:      b.ShopName,
			Address:   "12 MG Road, Fort",
			Latitude:  b.Latitude,
			Longitude: b.Longitude,
			CreatedAt: createdAt,
		},
		Medicine: queries.MedicineView{
			ID:          b.MedicineID,
			Name:        b.MedicineName,
			Description: "Pain and fever relief",
			CreatedAt:   createdAt,
		},
	}
}
