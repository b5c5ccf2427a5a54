//go:build unit || e2e

package builder

import (
	"time"

	reqdto "medilocate/internal/handler/dto/request"
	"medilocate/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	ShopID        int64
	MedicineID    int64
	Quantity      int32
	UnitPrice     decimal.Decimal
	Status        string
	Notes         *string
	CreatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	email := "asha@example.com"
	return &ReservationBuilder{
		ID:            1,
		CustomerName:  "Asha Patel",
		CustomerPhone: "9876543210",
		CustomerEmail: &email,
		ShopID:        1,
		MedicineID:    2,
		Quantity:      2,
		UnitPrice:     decimal.RequireFromString("45.50"),
		Status:        "pending",
		CreatedAt:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		ShopID:        r.ShopID,
		MedicineID:    r.MedicineID,
		Quantity:      r.Quantity,
		Notes:         r.Notes,
	}
}

func (r *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	total := r.UnitPrice.Mul(decimal.NewFromInt32(r.Quantity)).Round(2)
	return &queries.ReservationView{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		ShopID:          r.ShopID,
		MedicineID:      r.MedicineID,
		Quantity:        r.Quantity,
		TotalPrice:      total,
		Status:          r.Status,
		ReservationDate: r.CreatedAt,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.CreatedAt,
		Shop: queries.ShopView{
			ID:        r.ShopID,
			Name:      "City Care Pharmacy",
			Address:   "12 MG Road, Fort",
			Latitude:  19.0896,
			Longitude: 72.8656,
			CreatedAt: r.CreatedAt,
		},
		Medicine: queries.MedicineView{
			ID:          r.MedicineID,
			Name:        "Paracetamol 500mg",
			Description: "Pain and fever relief",
			CreatedAt:   r.CreatedAt,
		},
	}
}
