//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"medilocate/internal/handler/api"
	"medilocate/internal/handler/httperr"
	"medilocate/internal/usecase/commands"
	"medilocate/internal/usecase/queries"
	"medilocate/tests/common/httptest"
	commandsmock "medilocate/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInventoryCommands
	handler      *api.InventoryHandler
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.handler = api.NewInventoryHandler(s.mockCommands)

	s.router.POST("/api/pharmacies/:id/inventory", s.handler.CreateLine)
	s.router.PUT("/api/pharmacies/:id/inventory/:lineId", s.handler.UpdateLine)
	s.router.DELETE("/api/pharmacies/:id/inventory/:lineId", s.handler.DeleteLine)
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

func (s *InventoryHandlerTestSuite) TestCreateLine() {
	url := "/api/pharmacies/1/inventory"

	body := gin.H{
		"medicine_id":    2,
		"price":          "45.50",
		"stock_quantity": 10,
	}

	s.Run("success: returns 201 with the new line", func() {
		view := &queries.InventoryLineView{
			ID:            7,
			ShopID:        1,
			MedicineID:    2,
			Price:         decimal.RequireFromString("45.50"),
			StockQuantity: 10,
		}
		s.mockCommands.EXPECT().CreateLine(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var resp queries.InventoryLineView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(int64(7), resp.ID)
	})

	s.Run("dangling shop or medicine reference is a validation error", func() {
		s.mockCommands.EXPECT().CreateLine(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidReference).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation, "does not exist")
	})
}

func (s *InventoryHandlerTestSuite) TestUpdateLine() {
	s.Run("line scoped to another pharmacy returns 404", func() {
		s.mockCommands.EXPECT().UpdateLine(gomock.Any(), int64(7), int64(2), gomock.Any()).
			Return(nil, commands.ErrInventoryLineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/api/pharmacies/2/inventory/7", gin.H{"stock_quantity": 5})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound, "")
	})
}

func (s *InventoryHandlerTestSuite) TestDeleteLine() {
	s.Run("success returns 204 with no body", func() {
		s.mockCommands.EXPECT().DeleteLine(gomock.Any(), int64(7), int64(1)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/pharmacies/1/inventory/7", nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})
}
