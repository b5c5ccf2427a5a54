package request

import (
	"github.com/shopspring/decimal"
)

type CreateInventoryLineRequest struct {
	MedicineID    int64           `json:"medicine_id" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int32           `json:"stock_quantity"`
}

// UpdateInventoryLineRequest is a partial update; omitted fields keep their
// stored values.
type UpdateInventoryLineRequest struct {
	Price         *decimal.Decimal `json:"price,omitempty"`
	StockQuantity *int32           `json:"stock_quantity,omitempty"`
}
