package repository

import (
	"context"

	"medilocate/internal/domain/catalog"
	"medilocate/internal/infra"
	"medilocate/internal/pkg/pgconv"
	"medilocate/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type MedicineRepository struct {
	db infra.DBTX
}

func NewMedicineRepository(db infra.DBTX) *MedicineRepository {
	return &MedicineRepository{db: db}
}

const createMedicineSQL = `
INSERT INTO medicines (name, description)
VALUES ($1, $2)
RETURNING id, name, description, created_at`

func (r *MedicineRepository) Create(ctx context.Context, medicine *catalog.Medicine) (*queries.MedicineView, error) {
	var (
		view      queries.MedicineView
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, createMedicineSQL, medicine.Name(), medicine.Description()).
		Scan(&view.ID, &view.Name, &view.Description, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create medicine", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}
