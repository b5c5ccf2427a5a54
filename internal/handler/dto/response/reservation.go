package response

import (
	"time"

	"medilocate/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ReservationResponse struct {
	ID              int64                `json:"id"`
	CustomerName    string               `json:"customer_name"`
	CustomerPhone   string               `json:"customer_phone"`
	CustomerEmail   *string              `json:"customer_email,omitempty"`
	ShopID          int64                `json:"shop_id"`
	MedicineID      int64                `json:"medicine_id"`
	Quantity        int32                `json:"quantity"`
	TotalPrice      decimal.Decimal      `json:"total_price"`
	Status          string               `json:"status"`
	ReservationDate time.Time            `json:"reservation_date"`
	PickupDate      *time.Time           `json:"pickup_date,omitempty"`
	Notes           *string              `json:"notes,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	Shop            queries.ShopView     `json:"shop"`
	Medicine        queries.MedicineView `json:"medicine"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              rm.ID,
		CustomerName:    rm.CustomerName,
		CustomerPhone:   rm.CustomerPhone,
		CustomerEmail:   rm.CustomerEmail,
		ShopID:          rm.ShopID,
		MedicineID:      rm.MedicineID,
		Quantity:        rm.Quantity,
		TotalPrice:      rm.TotalPrice,
		Status:          rm.Status,
		ReservationDate: rm.ReservationDate,
		PickupDate:      rm.PickupDate,
		Notes:           rm.Notes,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
		Shop:            rm.Shop,
		Medicine:        rm.Medicine,
	}
}
