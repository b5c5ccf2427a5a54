package api

import (
	"errors"
	"net/http"

	reqdto "medilocate/internal/handler/dto/request"
	"medilocate/internal/handler/httperr"
	"medilocate/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// InventoryHandler exposes the shop-scoped inventory management endpoints. A
// line id alone never resolves; the shop id from the path is always part of
// the key.
type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
}

func NewInventoryHandler(inventoryCommands commands.InventoryCommands) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
	}
}

// @Summary Add inventory line
// @Tags pharmacies
// @Accept json
// @Produce json
// @Param id path int true "Shop ID"
// @Param request body reqdto.CreateInventoryLineRequest true "Line"
// @Success 201 {object} queries.InventoryLineView
// @Failure 400 {object} httperr.Response
// @Router /pharmacies/{id}/inventory [post]
func (h *InventoryHandler) CreateLine(c *gin.Context) {
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreateInventoryLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid request format", nil)
		return
	}

	view, err := h.inventoryCommands.CreateLine(c.Request.Context(), commands.CreateInventoryLineParams{
		ShopID:        shopID,
		MedicineID:    req.MedicineID,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidReference):
			// A dangling shop or medicine id is a bad request, not a missing
			// resource; the line itself never existed.
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeValidation, "Shop or medicine does not exist", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeValidation, "Inventory line validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Update inventory line
// @Tags pharmacies
// @Accept json
// @Produce json
// @Param id path int true "Shop ID"
// @Param lineId path int true "Inventory line ID"
// @Param request body reqdto.UpdateInventoryLineRequest true "Partial update"
// @Success 200 {object} queries.InventoryLineView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pharmacies/{id}/inventory/{lineId} [put]
func (h *InventoryHandler) UpdateLine(c *gin.Context) {
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	lineID, ok := parseIDParam(c, "lineId")
	if !ok {
		return
	}

	var req reqdto.UpdateInventoryLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid request format", nil)
		return
	}

	view, err := h.inventoryCommands.UpdateLine(c.Request.Context(), lineID, shopID, commands.UpdateInventoryLineParams{
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInventoryLineNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Inventory line not found for this pharmacy", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeValidation, "Inventory line validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete inventory line
// @Tags pharmacies
// @Param id path int true "Shop ID"
// @Param lineId path int true "Inventory line ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pharmacies/{id}/inventory/{lineId} [delete]
func (h *InventoryHandler) DeleteLine(c *gin.Context) {
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	lineID, ok := parseIDParam(c, "lineId")
	if !ok {
		return
	}

	err := h.inventoryCommands.DeleteLine(c.Request.Context(), lineID, shopID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInventoryLineNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Inventory line not found for this pharmacy", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
