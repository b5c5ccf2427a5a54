package api

import (
	"errors"
	"net/http"

	reqdto "medilocate/internal/handler/dto/request"
	"medilocate/internal/handler/httperr"
	"medilocate/internal/usecase/commands"
	"medilocate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	shopQueries     queries.ShopQueries
	catalogCommands commands.CatalogCommands
}

func NewShopHandler(shopQueries queries.ShopQueries, catalogCommands commands.CatalogCommands) *ShopHandler {
	return &ShopHandler{
		shopQueries:     shopQueries,
		catalogCommands: catalogCommands,
	}
}

// @Summary List shops
// @Tags shops
// @Produce json
// @Success 200 {array} queries.ShopView
// @Router /shops [get]
func (h *ShopHandler) ListShops(c *gin.Context) {
	shops, err := h.shopQueries.ListShops(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}
	if shops == nil {
		shops = []queries.ShopView{}
	}

	c.JSON(http.StatusOK, shops)
}

// @Summary Register a shop
// @Tags shops
// @Accept json
// @Produce json
// @Param request body reqdto.CreateShopRequest true "Shop"
// @Success 201 {object} queries.ShopView
// @Failure 400 {object} httperr.Response
// @Router /shops [post]
func (h *ShopHandler) CreateShop(c *gin.Context) {
	var req reqdto.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid request format", nil)
		return
	}

	view, err := h.catalogCommands.CreateShop(c.Request.Context(), commands.CreateShopParams{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeValidation, "Shop validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Shop inventory
// @Description List a shop's inventory with derived stock status per line
// @Tags shops
// @Produce json
// @Param id path int true "Shop ID"
// @Success 200 {object} queries.ShopInventoryView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /shops/{id}/medicines [get]
func (h *ShopHandler) GetShopInventory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.shopQueries.GetShopInventory(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrShopNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Shop not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
