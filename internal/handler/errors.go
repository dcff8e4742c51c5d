package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/facuvd/horarios-backend-go/internal/service"
	"github.com/facuvd/horarios-backend-go/internal/timeutil"
	"github.com/facuvd/horarios-backend-go/pkg/response"
)

// writeServiceError maps the service error taxonomy to status codes:
// malformed input 400, missing results 404, conflicts 409, anything
// else 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, timeutil.ErrMalformedTime),
		errors.Is(err, service.ErrInvalidDayType),
		errors.Is(err, service.ErrValidation):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, service.ErrNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, service.ErrConflict):
		response.Error(c, http.StatusConflict, err.Error(), nil)
	default:
		response.Error(c, http.StatusInternalServerError, "Internal error", err)
	}
}
