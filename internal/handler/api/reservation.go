package api

import (
	"errors"
	"net/http"

	"medilocate/internal/domain/reservation"
	reqdto "medilocate/internal/handler/dto/request"
	resdto "medilocate/internal/handler/dto/response"
	"medilocate/internal/handler/httperr"
	"medilocate/internal/usecase/commands"
	"medilocate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Reserve a quantity of a medicine at a shop
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid request format", nil)
		return
	}

	view, err := h.reservationCommands.CreateReservation(c.Request.Context(), req.ToParams())
	if err != nil {
		var stockErr *commands.InsufficientStockError
		switch {
		case errors.Is(err, commands.ErrMedicineNotCarried):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotAvailable, "Medicine not available at this pharmacy", nil)
		case errors.As(err, &stockErr):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeInsufficientStock, "Insufficient stock for requested quantity",
				gin.H{"available_stock": stockErr.Available, "requested": stockErr.Requested})
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeValidation, "Reservation validation failed", validationDetail(err))
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Reservation not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description All reservations, newest first
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	views, err := h.reservationQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	response := make([]*resdto.ReservationResponse, len(views))
	for i := range views {
		response[i] = resdto.FromReservationView(&views[i])
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update reservation status
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "New status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/status [put]
func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid request format", nil)
		return
	}

	view, err := h.reservationCommands.SetReservationStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeValidation, "Invalid reservation status", gin.H{"field": "status"})
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Reservation not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// validationDetail maps domain validation sentinels to the offending field so
// clients can highlight it.
func validationDetail(err error) any {
	switch {
	case errors.Is(err, reservation.ErrEmptyCustomerName):
		return gin.H{"field": "customer_name"}
	case errors.Is(err, reservation.ErrInvalidPhone):
		return gin.H{"field": "customer_phone"}
	case errors.Is(err, reservation.ErrInvalidEmail):
		return gin.H{"field": "customer_email"}
	case errors.Is(err, reservation.ErrInvalidQuantity):
		return gin.H{"field": "quantity"}
	default:
		return nil
	}
}
