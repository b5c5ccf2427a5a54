package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "medilocate/internal/handler/dto/request"
	"medilocate/internal/handler/httperr"
	"medilocate/internal/usecase/commands"
	"medilocate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MedicineHandler struct {
	medicineQueries queries.MedicineQueries
	catalogCommands commands.CatalogCommands
}

func NewMedicineHandler(medicineQueries queries.MedicineQueries, catalogCommands commands.CatalogCommands) *MedicineHandler {
	return &MedicineHandler{
		medicineQueries: medicineQueries,
		catalogCommands: catalogCommands,
	}
}

// @Summary List medicines
// @Description List the catalog, optionally filtered by name substring
// @Tags medicines
// @Produce json
// @Param name query string false "Name filter"
// @Success 200 {array} queries.MedicineView
// @Router /medicines [get]
func (h *MedicineHandler) ListMedicines(c *gin.Context) {
	var (
		medicines []queries.MedicineView
		err       error
	)
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		medicines, err = h.medicineQueries.FindMedicinesByName(c.Request.Context(), name)
	} else {
		medicines, err = h.medicineQueries.ListMedicines(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}
	if medicines == nil {
		medicines = []queries.MedicineView{}
	}

	c.JSON(http.StatusOK, medicines)
}

// @Summary Get a medicine
// @Tags medicines
// @Produce json
// @Param id path int true "Medicine ID"
// @Success 200 {object} queries.MedicineView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /medicines/{id} [get]
func (h *MedicineHandler) GetMedicine(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.medicineQueries.GetMedicineByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMedicineNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Medicine not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Register a medicine
// @Tags medicines
// @Accept json
// @Produce json
// @Param request body reqdto.CreateMedicineRequest true "Medicine"
// @Success 201 {object} queries.MedicineView
// @Failure 400 {object} httperr.Response
// @Router /medicines [post]
func (h *MedicineHandler) CreateMedicine(c *gin.Context) {
	var req reqdto.CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid request format", nil)
		return
	}

	view, err := h.catalogCommands.CreateMedicine(c.Request.Context(), commands.CreateMedicineParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeValidation, "Medicine validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}
