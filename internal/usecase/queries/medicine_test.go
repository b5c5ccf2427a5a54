//go:build unit

package queries_test

import (
	"context"
	"database/sql"
	"testing"

	"medilocate/internal/infra"
	"medilocate/internal/usecase/queries"
	queriesmock "medilocate/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMedicineQueries(t *testing.T) (queries.MedicineQueries, *queriesmock.MockMedicineReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockMedicineReadStore(ctrl)
	return queries.NewMedicineQueries(store), store
}

func TestGetMedicineByID_UnknownID(t *testing.T) {
	mq, store := newMedicineQueries(t)

	store.EXPECT().FindMedicineByID(gomock.Any(), int64(404)).
		Return(nil, infra.WrapRepoErr("medicine not found", sql.ErrNoRows, infra.KindNotFound))

	_, err := mq.GetMedicineByID(context.Background(), 404)
	require.ErrorIs(t, err, queries.ErrMedicineNotFound)
}

func TestGetMedicineByID_Success(t *testing.T) {
	mq, store := newMedicineQueries(t)

	expected := &queries.MedicineView{ID: 7, Name: "Paracetamol 500mg", Description: "Pain and fever relief"}
	store.EXPECT().FindMedicineByID(gomock.Any(), int64(7)).Return(expected, nil)

	view, err := mq.GetMedicineByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, expected, view)
}
