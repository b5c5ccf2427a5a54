package request

import (
	"strings"

	"medilocate/internal/usecase/commands"
)

type CreateReservationRequest struct {
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerPhone string  `json:"customer_phone" binding:"required"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	ShopID        int64   `json:"shop_id" binding:"required"`
	MedicineID    int64   `json:"medicine_id" binding:"required"`
	Quantity      int32   `json:"quantity"`
	Notes         *string `json:"notes,omitempty"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: trimmedOrNil(r.CustomerEmail),
		ShopID:        r.ShopID,
		MedicineID:    r.MedicineID,
		Quantity:      r.Quantity,
		Notes:         trimmedOrNil(r.Notes),
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
