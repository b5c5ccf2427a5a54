package queries

import (
	"time"

	"medilocate/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type ShopView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

type MedicineView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type InventoryLineView struct {
	ID            int64           `json:"id"`
	ShopID        int64           `json:"shop_id"`
	MedicineID    int64           `json:"medicine_id"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int32           `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ShopInventoryItem is an inventory line joined with its medicine, as shown
// on a pharmacy's own stock listing.
type ShopInventoryItem struct {
	InventoryLineView
	Medicine MedicineView `json:"medicine"`
}

// InventoryMatch is one row of the search join: a line together with the
// shop that holds it and the medicine it matched on.
type InventoryMatch struct {
	Line     InventoryLineView
	Shop     ShopView
	Medicine MedicineView
}

// SearchResult is a ranked search hit. DistanceKm is rounded to two
// decimals; IsNearest is set on the single closest match only.
type SearchResult struct {
	Shop          ShopView            `json:"shop"`
	Medicine      MedicineView        `json:"medicine"`
	Price         decimal.Decimal     `json:"price"`
	StockQuantity int32               `json:"stock_quantity"`
	DistanceKm    float64             `json:"distance"`
	InStock       bool                `json:"in_stock"`
	IsNearest     bool                `json:"is_nearest,omitempty"`
	StockStatus   catalog.StockStatus `json:"stock_status"`
}

type ReservationView struct {
	ID              int64           `json:"id"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerEmail   *string         `json:"customer_email,omitempty"`
	ShopID          int64           `json:"shop_id"`
	MedicineID      int64           `json:"medicine_id"`
	Quantity        int32           `json:"quantity"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          string          `json:"status"`
	ReservationDate time.Time       `json:"reservation_date"`
	PickupDate      *time.Time      `json:"pickup_date,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Shop            ShopView        `json:"shop"`
	Medicine        MedicineView    `json:"medicine"`
}
