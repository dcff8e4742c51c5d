package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/facuvd/horarios-backend-go/internal/models"
	"github.com/facuvd/horarios-backend-go/internal/service"
	"github.com/facuvd/horarios-backend-go/pkg/response"
)

// ScheduleHandler handles the timetable search endpoints
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(service *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// FindDirect handles GET /api/v1/schedules/direct
func (h *ScheduleHandler) FindDirect(c *gin.Context) {
	var q models.ScheduleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	trips, err := h.service.FindDirect(q.Origin, q.Destination, q.DayType, q.NotBefore)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, trips)
}

// FindConnections handles GET /api/v1/schedules/connections
func (h *ScheduleHandler) FindConnections(c *gin.Context) {
	var q models.ScheduleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	connections, err := h.service.FindConnections(q.Origin, q.Destination, q.DayType, q.NotBefore)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, connections)
}

// FindCorridorConnections handles GET /api/v1/schedules/corridor
func (h *ScheduleHandler) FindCorridorConnections(c *gin.Context) {
	var q models.CorridorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	connections, err := h.service.FindCorridorConnections(q.RouteA, q.RouteB, q.DayType, q.NotBefore)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, connections)
}

// GetLocations handles GET /api/v1/locations
func (h *ScheduleHandler) GetLocations(c *gin.Context) {
	locations, err := h.service.Locations()
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, locations)
}
