package api

import (
	"errors"
	"net/http"

	resdto "medilocate/internal/handler/dto/response"
	"medilocate/internal/handler/httperr"
	"medilocate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchQueries queries.SearchQueries
}

func NewSearchHandler(searchQueries queries.SearchQueries) *SearchHandler {
	return &SearchHandler{
		searchQueries: searchQueries,
	}
}

// @Summary Search medicines near the city center
// @Description Find pharmacies stocking a medicine, ranked by distance
// @Tags medicines
// @Produce json
// @Param name query string true "Medicine name (case-insensitive substring)"
// @Success 200 {object} resdto.SearchMedicineResponse
// @Failure 400 {object} httperr.Response
// @Router /medicines/search [get]
func (h *SearchHandler) SearchMedicine(c *gin.Context) {
	name := c.Query("name")

	results, err := h.searchQueries.SearchMedicine(c.Request.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEmptySearchQuery):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeValidation, "Medicine name is required", gin.H{"param": "name"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSearchResults(name, results))
}
