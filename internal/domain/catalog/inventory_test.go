//go:build unit

package catalog_test

import (
	"testing"

	"medilocate/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockStatusFor(t *testing.T) {
	cases := []struct {
		quantity int32
		expected catalog.StockStatus
	}{
		{0, catalog.StockStatusOut},
		{1, catalog.StockStatusLow},
		{10, catalog.StockStatusLow},
		{11, catalog.StockStatusIn},
		{250, catalog.StockStatusIn},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, catalog.StockStatusFor(tc.quantity), "quantity=%d", tc.quantity)
	}
}

func TestNewInventoryLine(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		line, err := catalog.NewInventoryLine(1, 2, decimal.RequireFromString("45.50"), 25)
		require.NoError(t, err)
		assert.True(t, line.InStock())
		assert.Equal(t, catalog.StockStatusIn, line.Status())
	})

	t.Run("zero stock is allowed but out of stock", func(t *testing.T) {
		line, err := catalog.NewInventoryLine(1, 2, decimal.RequireFromString("42.00"), 0)
		require.NoError(t, err)
		assert.False(t, line.InStock())
		assert.Equal(t, catalog.StockStatusOut, line.Status())
	})

	t.Run("price is normalized to two decimals", func(t *testing.T) {
		line, err := catalog.NewInventoryLine(1, 2, decimal.RequireFromString("9.999"), 1)
		require.NoError(t, err)
		assert.Equal(t, "10", line.Price().String())
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := catalog.NewInventoryLine(1, 2, decimal.NewFromInt(-1), 1)
		require.ErrorIs(t, err, catalog.ErrNegativePrice)
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		_, err := catalog.NewInventoryLine(1, 2, decimal.NewFromInt(5), -1)
		require.ErrorIs(t, err, catalog.ErrNegativeStock)
	})
}

func TestNewShop(t *testing.T) {
	shop, err := catalog.NewShop(" Apollo Pharmacy ", "12 Hill Rd, Bandra", 19.0596, 72.8295)
	require.NoError(t, err)
	assert.Equal(t, "Apollo Pharmacy", shop.Name())

	_, err = catalog.NewShop("", "addr", 0, 0)
	require.ErrorIs(t, err, catalog.ErrEmptyShopName)

	_, err = catalog.NewShop("name", "  ", 0, 0)
	require.ErrorIs(t, err, catalog.ErrEmptyShopAddress)
}

func TestNewMedicine(t *testing.T) {
	med, err := catalog.NewMedicine("Paracetamol 500mg", "Pain reliever and fever reducer")
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg", med.Name())

	_, err = catalog.NewMedicine("", "desc")
	require.ErrorIs(t, err, catalog.ErrEmptyMedicineName)

	_, err = catalog.NewMedicine("name", "")
	require.ErrorIs(t, err, catalog.ErrEmptyMedicineDescription)
}
