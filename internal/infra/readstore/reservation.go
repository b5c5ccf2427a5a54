package readstore

import (
	"context"

	"medilocate/internal/infra"
	"medilocate/internal/pkg/pgconv"
	"medilocate/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db infra.DBTX
}

func NewReservationReadStore(db infra.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationSelectSQL = `
SELECT r.id, r.customer_name, r.customer_phone, r.customer_email,
       r.shop_id, r.medicine_id, r.quantity, r.total_price, r.status,
       r.reservation_date, r.pickup_date, r.notes, r.created_at, r.updated_at,
       s.id, s.name, s.address, s.latitude, s.longitude, s.created_at,
       m.id, m.name, m.description, m.created_at
FROM reservations r
INNER JOIN shops s ON r.shop_id = s.id
INNER JOIN medicines m ON r.medicine_id = m.id`

func (s *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, reservationSelectSQL+" WHERE r.id = $1", id)

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return view, nil
}

func (s *ReservationReadStore) List(ctx context.Context) ([]queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, reservationSelectSQL+" ORDER BY r.created_at DESC")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return result, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		view            queries.ReservationView
		email           pgtype.Text
		totalPrice      pgtype.Numeric
		reservationDate pgtype.Timestamptz
		pickupDate      pgtype.Timestamptz
		notes           pgtype.Text
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
		shopCreatedAt   pgtype.Timestamptz
		medCreatedAt    pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.CustomerName, &view.CustomerPhone, &email,
		&view.ShopID, &view.MedicineID, &view.Quantity, &totalPrice, &view.Status,
		&reservationDate, &pickupDate, &notes, &createdAt, &updatedAt,
		&view.Shop.ID, &view.Shop.Name, &view.Shop.Address, &view.Shop.Latitude, &view.Shop.Longitude, &shopCreatedAt,
		&view.Medicine.ID, &view.Medicine.Name, &view.Medicine.Description, &medCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.CustomerEmail = pgconv.StringPtrFromPgtype(email)
	view.TotalPrice, err = pgconv.DecimalFromNumeric(totalPrice)
	if err != nil {
		return nil, err
	}
	view.ReservationDate = pgconv.TimeFromPgtype(reservationDate)
	view.PickupDate = pgconv.TimePtrFromPgtype(pickupDate)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	view.Shop.CreatedAt = pgconv.TimeFromPgtype(shopCreatedAt)
	view.Medicine.CreatedAt = pgconv.TimeFromPgtype(medCreatedAt)

	return &view, nil
}
