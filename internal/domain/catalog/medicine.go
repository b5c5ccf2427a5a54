package catalog

import (
	"errors"
	"strings"
)

var (
	ErrEmptyMedicineName        = errors.New("medicine name is required")
	ErrEmptyMedicineDescription = errors.New("medicine description is required")
)

// Medicine is a catalog entry. Read-mostly after creation.
type Medicine struct {
	name        string
	description string
}

func NewMedicine(name, description string) (*Medicine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyMedicineName
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyMedicineDescription
	}

	return &Medicine{
		name:        name,
		description: description,
	}, nil
}

func (m *Medicine) Name() string        { return m.name }
func (m *Medicine) Description() string { return m.description }
