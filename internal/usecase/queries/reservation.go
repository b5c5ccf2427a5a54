package queries

import (
	"context"

	"medilocate/internal/infra"
	"medilocate/internal/pkg/errs"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context) ([]ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context) ([]ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

// List returns every reservation joined to shop and medicine, newest first.
func (q *reservationQueriesImpl) List(ctx context.Context) ([]ReservationView, error) {
	return q.store.List(ctx)
}
