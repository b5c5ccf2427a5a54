package repository

import (
	"context"

	"medilocate/internal/domain/reservation"
	"medilocate/internal/infra"
	"medilocate/internal/pkg/pgconv"
)

type ReservationRepository struct {
	db infra.DBTX
}

func NewReservationRepository(db infra.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const createReservationSQL = `
INSERT INTO reservations (customer_name, customer_phone, customer_email,
                          shop_id, medicine_id, quantity, total_price, status,
                          reservation_date, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

// Create inserts the admitted reservation. Stock on the inventory line is
// deliberately left untouched; see the admission service.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	var notes *string
	if !res.Notes().IsEmpty() {
		v := res.Notes().String()
		notes = &v
	}

	var id int64
	err := r.db.QueryRow(ctx, createReservationSQL,
		res.Contact().Name(),
		res.Contact().Phone(),
		pgconv.StringPtrToPgtype(res.Contact().Email()),
		res.ShopID(),
		res.MedicineID(),
		res.Quantity(),
		pgconv.DecimalToNumeric(res.TotalPrice()),
		res.Status().String(),
		pgconv.TimeToPgtype(res.ReservationDate()),
		pgconv.StringPtrToPgtype(notes),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

const updateReservationStatusSQL = `
UPDATE reservations
SET status = $2, updated_at = now()
WHERE id = $1`

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status reservation.Status) (bool, error) {
	tag, err := r.db.Exec(ctx, updateReservationStatusSQL, id, status.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update reservation status", err)
	}

	return tag.RowsAffected() > 0, nil
}
