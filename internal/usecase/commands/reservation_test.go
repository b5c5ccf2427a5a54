//go:build unit

package commands_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"medilocate/internal/domain/reservation"
	"medilocate/internal/infra"
	"medilocate/internal/pkg/clock"
	"medilocate/internal/usecase/commands"
	"medilocate/internal/usecase/queries"
	"medilocate/tests/common/builder"
	commandsmock "medilocate/tests/mock/commands"
	queriesmock "medilocate/tests/mock/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reservationCommandsMocks struct {
	repo    *commandsmock.MockReservationRepository
	finder  *commandsmock.MockInventoryLineFinder
	queries *queriesmock.MockReservationQueries
	clock   *clock.MockClock
}

func newReservationCommands(t *testing.T) (commands.ReservationCommands, reservationCommandsMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := reservationCommandsMocks{
		repo:    commandsmock.NewMockReservationRepository(ctrl),
		finder:  commandsmock.NewMockInventoryLineFinder(ctrl),
		queries: queriesmock.NewMockReservationQueries(ctrl),
		clock:   clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)),
	}
	return commands.NewReservationCommands(m.repo, m.finder, m.queries, m.clock), m
}

func validParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		CustomerName:  "Asha Patel",
		CustomerPhone: "9876543210",
		ShopID:        1,
		MedicineID:    2,
		Quantity:      2,
	}
}

func inventoryLine(stock int32, price string) *queries.InventoryLineView {
	return &queries.InventoryLineView{
		ID:            7,
		ShopID:        1,
		MedicineID:    2,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
	}
}

func TestCreateReservation_Success(t *testing.T) {
	rc, m := newReservationCommands(t)

	m.finder.EXPECT().FindLineByShopAndMedicine(gomock.Any(), int64(1), int64(2)).
		Return(inventoryLine(10, "45.50"), nil)

	var created *reservation.Reservation
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, res *reservation.Reservation) (int64, error) {
			created = res
			return 99, nil
		})

	expected := builder.NewReservationBuilder().BuildViewQuery()
	m.queries.EXPECT().GetByID(gomock.Any(), int64(99)).Return(expected, nil)

	view, err := rc.CreateReservation(context.Background(), validParams())
	require.NoError(t, err)
	assert.Equal(t, expected, view)

	require.NotNil(t, created)
	assert.Equal(t, reservation.StatusPending, created.Status())
	assert.Equal(t, m.clock.Now(), created.ReservationDate())
	assert.True(t, created.TotalPrice().Equal(decimal.RequireFromString("91.00")),
		"total must come from the line price, got %s", created.TotalPrice())
}

func TestCreateReservation_ZeroQuantityDefaultsToOne(t *testing.T) {
	rc, m := newReservationCommands(t)

	m.finder.EXPECT().FindLineByShopAndMedicine(gomock.Any(), int64(1), int64(2)).
		Return(inventoryLine(1, "45.50"), nil)

	var created *reservation.Reservation
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, res *reservation.Reservation) (int64, error) {
			created = res
			return 1, nil
		})
	m.queries.EXPECT().GetByID(gomock.Any(), int64(1)).
		Return(builder.NewReservationBuilder().BuildViewQuery(), nil)

	params := validParams()
	params.Quantity = 0

	_, err := rc.CreateReservation(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int32(1), created.Quantity())
}

func TestCreateReservation_MedicineNotCarried(t *testing.T) {
	rc, m := newReservationCommands(t)

	m.finder.EXPECT().FindLineByShopAndMedicine(gomock.Any(), int64(1), int64(2)).
		Return(nil, infra.WrapRepoErr("inventory line not found", sql.ErrNoRows, infra.KindNotFound))

	_, err := rc.CreateReservation(context.Background(), validParams())
	require.ErrorIs(t, err, commands.ErrMedicineNotCarried)
}

func TestCreateReservation_InsufficientStock(t *testing.T) {
	rc, m := newReservationCommands(t)

	m.finder.EXPECT().FindLineByShopAndMedicine(gomock.Any(), int64(1), int64(2)).
		Return(inventoryLine(1, "45.50"), nil)

	params := validParams()
	params.Quantity = 5

	_, err := rc.CreateReservation(context.Background(), params)

	var stockErr *commands.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int32(1), stockErr.Available, "error must report the true available quantity")
	assert.Equal(t, int32(5), stockErr.Requested)
}

func TestCreateReservation_InvalidContact(t *testing.T) {
	rc, _ := newReservationCommands(t)

	params := validParams()
	params.CustomerPhone = "12345"

	_, err := rc.CreateReservation(context.Background(), params)
	require.ErrorIs(t, err, commands.ErrDomainValidation)
	require.ErrorIs(t, err, reservation.ErrInvalidPhone)
}

func TestSetReservationStatus(t *testing.T) {
	t.Run("invalid status never touches the repository", func(t *testing.T) {
		rc, _ := newReservationCommands(t)

		_, err := rc.SetReservationStatus(context.Background(), 1, "canceled")
		require.ErrorIs(t, err, commands.ErrInvalidStatus)
	})

	t.Run("unknown id", func(t *testing.T) {
		rc, m := newReservationCommands(t)

		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(404), reservation.StatusConfirmed).
			Return(false, nil)

		_, err := rc.SetReservationStatus(context.Background(), 404, "confirmed")
		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("updates and re-reads", func(t *testing.T) {
		rc, m := newReservationCommands(t)

		expected := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = "ready_for_pickup"
		}).BuildViewQuery()

		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), reservation.StatusReadyForPickup).
			Return(true, nil)
		m.queries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(expected, nil)

		view, err := rc.SetReservationStatus(context.Background(), 1, "ready_for_pickup")
		require.NoError(t, err)
		assert.Equal(t, "ready_for_pickup", view.Status)
	})
}
