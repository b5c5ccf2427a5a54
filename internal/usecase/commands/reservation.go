package commands

import (
	"context"
	"fmt"

	"medilocate/internal/domain/reservation"
	"medilocate/internal/infra"
	"medilocate/internal/pkg/clock"
	"medilocate/internal/pkg/errs"
	"medilocate/internal/usecase/queries"
)

var (
	ErrMedicineNotCarried      = errs.New("medicine not carried at this pharmacy")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrInvalidStatus           = errs.New("invalid reservation status")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// InsufficientStockError reports the quantity actually available so the
// caller can adjust and retry.
type InsufficientStockError struct {
	Available int32
	Requested int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d requested, %d available", e.Requested, e.Available)
}

type CreateReservationParams struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	ShopID        int64
	MedicineID    int64
	Quantity      int32
	Notes         *string
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status reservation.Status) (bool, error)
}

type InventoryLineFinder interface {
	FindLineByShopAndMedicine(ctx context.Context, shopID, medicineID int64) (*queries.InventoryLineView, error)
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error)
	SetReservationStatus(ctx context.Context, id int64, status string) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	reservationRepo    ReservationRepository
	inventoryFinder    InventoryLineFinder
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	inventoryFinder InventoryLineFinder,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo:    reservationRepo,
		inventoryFinder:    inventoryFinder,
		reservationQueries: reservationQueries,
		clock:              clk,
	}
}

// CreateReservation runs the admission check: the shop's inventory is
// re-read at request time and the reservation is admitted only when the
// matching line covers the requested quantity. The check and the insert are
// not one transaction, and stock is never decremented here; two concurrent
// requests against the same low-stock line can both be admitted.
func (c *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	params CreateReservationParams,
) (*queries.ReservationView, error) {
	contact, err := reservation.NewContact(params.CustomerName, params.CustomerPhone, params.CustomerEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	quantity := params.Quantity
	if quantity == 0 {
		quantity = 1
	}

	line, err := c.inventoryFinder.FindLineByShopAndMedicine(ctx, params.ShopID, params.MedicineID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMedicineNotCarried
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if line.StockQuantity < quantity {
		return nil, &InsufficientStockError{Available: line.StockQuantity, Requested: quantity}
	}

	notes := reservation.NewNote("")
	if params.Notes != nil {
		notes = reservation.NewNote(*params.Notes)
	}

	// The line's unit price is authoritative; client-submitted totals are
	// never trusted.
	entity, err := reservation.NewReservation(contact, params.ShopID, params.MedicineID, quantity, line.Price, c.clock.Now(), notes)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.reservationRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.reservationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

// SetReservationStatus moves a reservation to any of the five enumerated
// statuses. There is no transition graph: every status is reachable from
// every other. An invalid value never touches the row.
func (c *reservationCommandsImpl) SetReservationStatus(
	ctx context.Context,
	id int64,
	status string,
) (*queries.ReservationView, error) {
	newStatus := reservation.Status(status)
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	updated, err := c.reservationRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !updated {
		return nil, ErrReservationNotFound
	}

	view, err := c.reservationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}
