package commands

import (
	"context"

	"medilocate/internal/domain/catalog"
	"medilocate/internal/pkg/errs"
	"medilocate/internal/usecase/queries"
)

type CreateShopParams struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

type CreateMedicineParams struct {
	Name        string
	Description string
}

type ShopRepository interface {
	Create(ctx context.Context, shop *catalog.Shop) (*queries.ShopView, error)
}

type MedicineRepository interface {
	Create(ctx context.Context, medicine *catalog.Medicine) (*queries.MedicineView, error)
}

type CatalogCommands interface {
	CreateShop(ctx context.Context, params CreateShopParams) (*queries.ShopView, error)
	CreateMedicine(ctx context.Context, params CreateMedicineParams) (*queries.MedicineView, error)
}

type catalogCommandsImpl struct {
	shopRepo     ShopRepository
	medicineRepo MedicineRepository
}

func NewCatalogCommands(shopRepo ShopRepository, medicineRepo MedicineRepository) CatalogCommands {
	return &catalogCommandsImpl{
		shopRepo:     shopRepo,
		medicineRepo: medicineRepo,
	}
}

func (c *catalogCommandsImpl) CreateShop(ctx context.Context, params CreateShopParams) (*queries.ShopView, error) {
	shop, err := catalog.NewShop(params.Name, params.Address, params.Latitude, params.Longitude)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	view, err := c.shopRepo.Create(ctx, shop)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *catalogCommandsImpl) CreateMedicine(ctx context.Context, params CreateMedicineParams) (*queries.MedicineView, error) {
	medicine, err := catalog.NewMedicine(params.Name, params.Description)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	view, err := c.medicineRepo.Create(ctx, medicine)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}
