package catalog

import (
	"errors"
	"strings"
)

var (
	ErrEmptyShopName    = errors.New("shop name is required")
	ErrEmptyShopAddress = errors.New("shop address is required")
)

// Shop is a registered pharmacy with a fixed location. Immutable once created.
type Shop struct {
	name      string
	address   string
	latitude  float64
	longitude float64
}

func NewShop(name, address string, latitude, longitude float64) (*Shop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyShopName
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyShopAddress
	}

	return &Shop{
		name:      name,
		address:   address,
		latitude:  latitude,
		longitude: longitude,
	}, nil
}

func (s *Shop) Name() string       { return s.name }
func (s *Shop) Address() string    { return s.address }
func (s *Shop) Latitude() float64  { return s.latitude }
func (s *Shop) Longitude() float64 { return s.longitude }
