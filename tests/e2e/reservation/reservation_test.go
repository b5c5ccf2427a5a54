//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"

	"medilocate/internal/domain/catalog"
	"medilocate/internal/handler/dto/response"
	"medilocate/tests/common/builder"
	"medilocate/tests/common/dbtest"
	"medilocate/tests/common/httptest"
	"medilocate/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	searchURL            = "/api/medicines/search?name=%s"
	reservationsURL      = "/api/reservations"
	reservationStatusURL = "/api/reservations/%d/status"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// =============================================================================
// TestSearchMedicine - Search ranking across real data
// =============================================================================

func (s *ReservationSuite) TestSearchMedicine() {
	s.Run("Normal case: Nearest shop ranks first even when out of stock", func() {
		t := s.T()

		nearShopID := dbtest.CreateTestShop(t, s.DB, "Origin Chemists", 19.0760, 72.8777)
		farShopID := dbtest.CreateTestShop(t, s.DB, "Thane Medicals", 19.2183, 72.9781)
		medicineID := dbtest.CreateTestMedicine(t, s.DB, "Paracetamol 500mg")

		dbtest.CreateTestInventoryLine(t, s.DB, nearShopID, medicineID, "45.50", 0)
		dbtest.CreateTestInventoryLine(t, s.DB, farShopID, medicineID, "48.00", 50)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(searchURL, "Paracetamol"), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp response.SearchMedicineResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
		require.Equal(t, 2, resp.Count)

		nearest := resp.Results[0]
		require.Equal(t, nearShopID, nearest.Shop.ID)
		require.True(t, nearest.IsNearest)
		require.False(t, nearest.InStock)
		require.Equal(t, catalog.StockStatusOut, nearest.StockStatus)

		farther := resp.Results[1]
		require.Equal(t, farShopID, farther.Shop.ID)
		require.False(t, farther.IsNearest)
		require.Equal(t, catalog.StockStatusIn, farther.StockStatus)
		require.Greater(t, farther.DistanceKm, nearest.DistanceKm)
	})

	s.Run("Normal case: No matches returns an empty result set", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(searchURL, "unobtainium"), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp response.SearchMedicineResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
		require.Equal(t, 0, resp.Count)
		require.NotNil(t, resp.Results)
	})

	s.Run("Error case: Missing name parameter is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/medicines/search", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestCreateReservation - Reservation admission against real inventory
// =============================================================================

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("Normal case: Customer reserves a carried medicine", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "City Care Pharmacy", 19.0896, 72.8656)
		medicineID := dbtest.CreateTestMedicine(t, s.DB, "Paracetamol 500mg")
		lineID := dbtest.CreateTestInventoryLine(t, s.DB, shopID, medicineID, "45.50", 10)

		reqBody := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ShopID = shopID
			b.MedicineID = medicineID
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code, "should create reservation successfully")

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		email := "asha@example.com"
		expected := &response.ReservationResponse{
			CustomerName:  "Asha Patel",
			CustomerPhone: "9876543210",
			CustomerEmail: &email,
			ShopID:        shopID,
			MedicineID:    medicineID,
			Quantity:      2,
			TotalPrice:    decimal.RequireFromString("91.00"),
			Status:        "pending",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{},
				"ID", "ReservationDate", "CreatedAt", "UpdatedAt", "Shop", "Medicine"),
			cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("reservation response mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, "City Care Pharmacy", actual.Shop.Name)
		require.Equal(t, "Paracetamol 500mg", actual.Medicine.Name)

		// Reserving never decrements the shelf quantity
		require.Equal(t, int32(10), dbtest.GetStockQuantity(t, s.DB, lineID))
	})

	s.Run("Error case: Requesting more than the available stock fails", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "City Care Pharmacy", 19.0896, 72.8656)
		medicineID := dbtest.CreateTestMedicine(t, s.DB, "Paracetamol 500mg")
		dbtest.CreateTestInventoryLine(t, s.DB, shopID, medicineID, "45.50", 3)

		reqBody := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ShopID = shopID
			b.MedicineID = medicineID
			b.Quantity = 5
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
			Detail struct {
				AvailableStock int32 `json:"available_stock"`
			} `json:"detail"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "INSUFFICIENT_STOCK", body.Error.Code)
		require.Equal(t, int32(3), body.Detail.AvailableStock)
	})

	s.Run("Error case: Medicine not carried by the shop fails", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "City Care Pharmacy", 19.0896, 72.8656)
		medicineID := dbtest.CreateTestMedicine(t, s.DB, "Ibuprofen 400mg")
		// No inventory line links them

		reqBody := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ShopID = shopID
			b.MedicineID = medicineID
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestReservationLifecycle - Status updates after creation
// =============================================================================

func (s *ReservationSuite) TestReservationLifecycle() {
	s.Run("Normal case: Reservation moves through pickup statuses", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "City Care Pharmacy", 19.0896, 72.8656)
		medicineID := dbtest.CreateTestMedicine(t, s.DB, "Paracetamol 500mg")
		dbtest.CreateTestInventoryLine(t, s.DB, shopID, medicineID, "45.50", 10)

		reqBody := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ShopID = shopID
			b.MedicineID = medicineID
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		for _, status := range []string{"confirmed", "ready_for_pickup", "completed"} {
			uw := httptest.PerformRequest(t, s.Router, http.MethodPut,
				fmt.Sprintf(reservationStatusURL, created.ID), map[string]string{"status": status})
			require.Equal(t, http.StatusOK, uw.Code)

			var updated response.ReservationResponse
			require.NoError(t, httptest.DecodeResponseBody(t, uw.Body, &updated))
			require.Equal(t, status, updated.Status)
		}

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%d", reservationsURL, created.ID), nil)
		require.Equal(t, http.StatusOK, gw.Code)

		var fetched response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &fetched))
		require.Equal(t, "completed", fetched.Status)
	})

	s.Run("Error case: Unknown status value is rejected", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "City Care Pharmacy", 19.0896, 72.8656)
		medicineID := dbtest.CreateTestMedicine(t, s.DB, "Paracetamol 500mg")
		dbtest.CreateTestInventoryLine(t, s.DB, shopID, medicineID, "45.50", 10)

		reqBody := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ShopID = shopID
			b.MedicineID = medicineID
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		uw := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(reservationStatusURL, created.ID), map[string]string{"status": "done"})
		require.Equal(t, http.StatusBadRequest, uw.Code)
	})

	s.Run("Error case: Updating a missing reservation returns 404", func() {
		t := s.T()

		uw := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(reservationStatusURL, int64(999999)), map[string]string{"status": "confirmed"})
		require.Equal(t, http.StatusNotFound, uw.Code)
	})
}
