package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/facuvd/horarios-backend-go/internal/models"
	"github.com/facuvd/horarios-backend-go/internal/service"
	"github.com/facuvd/horarios-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for trips
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// GetTripsByRoute handles GET /api/v1/routes/:id/trips
func (h *TripHandler) GetTripsByRoute(c *gin.Context) {
	routeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid route ID", err)
		return
	}

	trips, err := h.service.GetTripsByRoute(routeID, c.Query("day_type"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, trips)
}

// CreateTrip handles POST /api/v1/routes/:id/trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	routeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid route ID", err)
		return
	}

	var req models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	trip, err := h.service.CreateTrip(routeID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, trip)
}

// DeleteTrip handles DELETE /api/v1/trips/:id
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid trip ID", err)
		return
	}

	if err := h.service.DeleteTrip(id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
