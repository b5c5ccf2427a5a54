package reservation

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNegativePrice   = errors.New("unit price cannot be negative")
)

// Reservation holds stock for a walk-in customer at one shop. It references
// the shop and medicine rows, not the inventory line: availability is
// re-derived from the shop's inventory at admission time.
type Reservation struct {
	contact         Contact
	shopID          int64
	medicineID      int64
	quantity        int32
	totalPrice      decimal.Decimal
	status          Status
	reservationDate time.Time
	notes           Note
}

// NewReservation builds a pending reservation. The unit price is the
// inventory line's price, which is authoritative; the total is always
// unitPrice * quantity rounded to two decimals, never a client-submitted
// figure.
func NewReservation(
	contact Contact,
	shopID, medicineID int64,
	quantity int32,
	unitPrice decimal.Decimal,
	reservationDate time.Time,
	notes Note,
) (*Reservation, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	total := unitPrice.Mul(decimal.NewFromInt32(quantity)).Round(2)

	return &Reservation{
		contact:         contact,
		shopID:          shopID,
		medicineID:      medicineID,
		quantity:        quantity,
		totalPrice:      total,
		status:          StatusPending,
		reservationDate: reservationDate,
		notes:           notes,
	}, nil
}

func (r *Reservation) Contact() Contact            { return r.contact }
func (r *Reservation) ShopID() int64               { return r.shopID }
func (r *Reservation) MedicineID() int64           { return r.medicineID }
func (r *Reservation) Quantity() int32             { return r.quantity }
func (r *Reservation) TotalPrice() decimal.Decimal { return r.totalPrice }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) ReservationDate() time.Time  { return r.reservationDate }
func (r *Reservation) Notes() Note                 { return r.notes }

func (r *Reservation) IsPending() bool {
	return r.status == StatusPending
}
