package queries

import (
	"context"

	"medilocate/internal/infra"
	"medilocate/internal/pkg/errs"
)

var ErrMedicineNotFound = errs.New("medicine not found")

type MedicineReadStore interface {
	ListMedicines(ctx context.Context) ([]MedicineView, error)
	FindMedicineByID(ctx context.Context, id int64) (*MedicineView, error)
	FindMedicinesByName(ctx context.Context, name string) ([]MedicineView, error)
}

type MedicineQueries interface {
	ListMedicines(ctx context.Context) ([]MedicineView, error)
	GetMedicineByID(ctx context.Context, id int64) (*MedicineView, error)
	FindMedicinesByName(ctx context.Context, name string) ([]MedicineView, error)
}

type medicineQueriesImpl struct {
	store MedicineReadStore
}

func NewMedicineQueries(store MedicineReadStore) MedicineQueries {
	return &medicineQueriesImpl{store: store}
}

func (q *medicineQueriesImpl) ListMedicines(ctx context.Context) ([]MedicineView, error) {
	return q.store.ListMedicines(ctx)
}

func (q *medicineQueriesImpl) GetMedicineByID(ctx context.Context, id int64) (*MedicineView, error) {
	view, err := q.store.FindMedicineByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMedicineNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *medicineQueriesImpl) FindMedicinesByName(ctx context.Context, name string) ([]MedicineView, error) {
	return q.store.FindMedicinesByName(ctx, name)
}
