//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"medilocate/internal/domain/catalog"
	"medilocate/internal/pkg/config"
	"medilocate/internal/usecase/queries"
	"medilocate/tests/common/builder"
	queriesmock "medilocate/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSearchQueries(t *testing.T) (queries.SearchQueries, *queriesmock.MockInventorySearchStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockInventorySearchStore(ctrl)
	cfg := config.NewTestConfig()
	return queries.NewSearchQueries(store, cfg), store
}

func TestSearchMedicine_EmptyQuery(t *testing.T) {
	sq, _ := newSearchQueries(t)

	for _, q := range []string{"", "   ", "\t"} {
		_, err := sq.SearchMedicine(context.Background(), q)
		require.ErrorIs(t, err, queries.ErrEmptySearchQuery, "query %q", q)
	}
}

func TestSearchMedicine_StoreFailure(t *testing.T) {
	sq, store := newSearchQueries(t)

	store.EXPECT().SearchByMedicineName(gomock.Any(), "aspirin").
		Return(nil, errors.New("connection refused"))

	_, err := sq.SearchMedicine(context.Background(), "aspirin")
	require.ErrorIs(t, err, queries.ErrSearchFailed)
}

func TestSearchMedicine_RanksByDistance(t *testing.T) {
	sq, store := newSearchQueries(t)

	// Retrieval order is deliberately farthest-first; the ranking must not
	// depend on it. The nearest shop sits exactly at the search origin and
	// has no stock.
	far := builder.NewInventoryMatchBuilder().With(func(b *builder.InventoryMatchBuilder) {
		b.ShopID = 10
		b.ShopName = "Thane Medico"
		b.Latitude = 19.2183
		b.Longitude = 72.9781
		b.StockQuantity = 50
	}).Build()
	mid := builder.NewInventoryMatchBuilder().With(func(b *builder.InventoryMatchBuilder) {
		b.ShopID = 20
		b.ShopName = "Fort Pharmacy"
		b.Latitude = 19.0896
		b.Longitude = 72.8656
		b.StockQuantity = 5
	}).Build()
	nearest := builder.NewInventoryMatchBuilder().With(func(b *builder.InventoryMatchBuilder) {
		b.ShopID = 30
		b.ShopName = "Origin Chemists"
		b.Latitude = 19.0760
		b.Longitude = 72.8777
		b.StockQuantity = 0
	}).Build()

	store.EXPECT().SearchByMedicineName(gomock.Any(), "paracetamol").
		Return([]queries.InventoryMatch{far, mid, nearest}, nil)

	results, err := sq.SearchMedicine(context.Background(), "paracetamol")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, int64(30), results[0].Shop.ID)
	assert.Equal(t, int64(20), results[1].Shop.ID)
	assert.Equal(t, int64(10), results[2].Shop.ID)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].DistanceKm, results[i].DistanceKm,
			"results must be sorted by distance")
	}

	// The closest shop is flagged nearest even though it has nothing on the
	// shelf.
	assert.True(t, results[0].IsNearest)
	assert.False(t, results[0].InStock)
	assert.False(t, results[1].IsNearest)
	assert.False(t, results[2].IsNearest)

	assert.Equal(t, 0.0, results[0].DistanceKm)
	assert.Equal(t, catalog.StockStatusOut, results[0].StockStatus)
	assert.Equal(t, catalog.StockStatusLow, results[1].StockStatus)
	assert.Equal(t, catalog.StockStatusIn, results[2].StockStatus)
	assert.True(t, results[1].InStock)
	assert.True(t, results[2].InStock)
}

func TestSearchMedicine_StableOrderOnTies(t *testing.T) {
	sq, store := newSearchQueries(t)

	first := builder.NewInventoryMatchBuilder().With(func(b *builder.InventoryMatchBuilder) {
		b.ShopID = 1
		b.StockQuantity = 3
	}).Build()
	second := builder.NewInventoryMatchBuilder().With(func(b *builder.InventoryMatchBuilder) {
		b.ShopID = 2
		b.StockQuantity = 9
	}).Build()

	store.EXPECT().SearchByMedicineName(gomock.Any(), "ibuprofen").
		Return([]queries.InventoryMatch{first, second}, nil)

	results, err := sq.SearchMedicine(context.Background(), "ibuprofen")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Same coordinates: retrieval order wins and only one nearest flag is set.
	assert.Equal(t, int64(1), results[0].Shop.ID)
	assert.Equal(t, int64(2), results[1].Shop.ID)
	assert.True(t, results[0].IsNearest)
	assert.False(t, results[1].IsNearest)
}

func TestSearchMedicine_NoMatches(t *testing.T) {
	sq, store := newSearchQueries(t)

	store.EXPECT().SearchByMedicineName(gomock.Any(), "unobtainium").
		Return(nil, nil)

	results, err := sq.SearchMedicine(context.Background(), "unobtainium")
	require.NoError(t, err)
	assert.Empty(t, results)
}
