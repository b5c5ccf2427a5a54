package api

import (
	"net/http"
	"strconv"

	"medilocate/internal/handler/httperr"
	"medilocate/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errInvalidIDParam = errs.New("invalid id parameter")

// parseIDParam reads a path parameter as an int64 and aborts the request with
// a validation error when it is not a number.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidIDParam,
			httperr.CodeValidation, "Invalid "+name+" format", gin.H{"param": name})
		return 0, false
	}
	return id, true
}
