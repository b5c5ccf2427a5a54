//go:build unit

package commands_test

import (
	"context"
	"database/sql"
	"testing"

	"medilocate/internal/domain/catalog"
	"medilocate/internal/infra"
	"medilocate/internal/usecase/commands"
	commandsmock "medilocate/tests/mock/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newInventoryCommands(t *testing.T) (commands.InventoryCommands, *commandsmock.MockInventoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockInventoryRepository(ctrl)
	return commands.NewInventoryCommands(repo), repo
}

func TestCreateLine(t *testing.T) {
	t.Run("negative price is rejected before the repository", func(t *testing.T) {
		ic, _ := newInventoryCommands(t)

		_, err := ic.CreateLine(context.Background(), commands.CreateInventoryLineParams{
			ShopID:     1,
			MedicineID: 2,
			Price:      decimal.NewFromInt(-1),
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("missing shop or medicine maps to invalid reference", func(t *testing.T) {
		ic, repo := newInventoryCommands(t)

		repo.EXPECT().CreateLine(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("fk violation", sql.ErrConnDone, infra.KindForeignKeyViolated))

		_, err := ic.CreateLine(context.Background(), commands.CreateInventoryLineParams{
			ShopID:        1,
			MedicineID:    999,
			Price:         decimal.RequireFromString("10.00"),
			StockQuantity: 5,
		})
		require.ErrorIs(t, err, commands.ErrInvalidReference)
	})
}

func TestUpdateLine(t *testing.T) {
	t.Run("negative stock patch is rejected", func(t *testing.T) {
		ic, _ := newInventoryCommands(t)

		bad := int32(-5)
		_, err := ic.UpdateLine(context.Background(), 1, 1, commands.UpdateInventoryLineParams{StockQuantity: &bad})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
		require.ErrorIs(t, err, catalog.ErrNegativeStock)
	})

	t.Run("line scoped to another shop is not found", func(t *testing.T) {
		ic, repo := newInventoryCommands(t)

		repo.EXPECT().UpdateLine(gomock.Any(), int64(7), int64(2), gomock.Any()).
			Return(nil, infra.WrapRepoErr("inventory line not found for shop", sql.ErrNoRows, infra.KindNotFound))

		price := decimal.RequireFromString("12.00")
		_, err := ic.UpdateLine(context.Background(), 7, 2, commands.UpdateInventoryLineParams{Price: &price})
		require.ErrorIs(t, err, commands.ErrInventoryLineNotFound)
	})
}

func TestDeleteLine(t *testing.T) {
	ic, repo := newInventoryCommands(t)

	repo.EXPECT().DeleteLine(gomock.Any(), int64(7), int64(1)).Return(true, nil)
	require.NoError(t, ic.DeleteLine(context.Background(), 7, 1))

	repo.EXPECT().DeleteLine(gomock.Any(), int64(8), int64(1)).Return(false, nil)
	err := ic.DeleteLine(context.Background(), 8, 1)
	assert.ErrorIs(t, err, commands.ErrInventoryLineNotFound)
}
