package readstore

import (
	"context"

	"medilocate/internal/infra"
	"medilocate/internal/pkg/pgconv"
	"medilocate/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type MedicineReadStore struct {
	db infra.DBTX
}

func NewMedicineReadStore(db infra.DBTX) *MedicineReadStore {
	return &MedicineReadStore{db: db}
}

const listMedicinesSQL = `
SELECT id, name, description, created_at
FROM medicines
ORDER BY id`

func (s *MedicineReadStore) ListMedicines(ctx context.Context) ([]queries.MedicineView, error) {
	return s.queryMedicines(ctx, listMedicinesSQL)
}

const findMedicineByIDSQL = `
SELECT id, name, description, created_at
FROM medicines
WHERE id = $1`

func (s *MedicineReadStore) FindMedicineByID(ctx context.Context, id int64) (*queries.MedicineView, error) {
	var (
		view      queries.MedicineView
		createdAt pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, findMedicineByIDSQL, id).
		Scan(&view.ID, &view.Name, &view.Description, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("medicine not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find medicine by ID", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}

const findMedicinesByNameSQL = `
SELECT id, name, description, created_at
FROM medicines
WHERE name ILIKE '%' || $1 || '%'
ORDER BY id`

func (s *MedicineReadStore) FindMedicinesByName(ctx context.Context, name string) ([]queries.MedicineView, error) {
	return s.queryMedicines(ctx, findMedicinesByNameSQL, name)
}

func (s *MedicineReadStore) queryMedicines(ctx context.Context, sql string, args ...any) ([]queries.MedicineView, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query medicines", err)
	}
	defer rows.Close()

	var result []queries.MedicineView
	for rows.Next() {
		var (
			view      queries.MedicineView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan medicine row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read medicine rows", err)
	}

	return result, nil
}
