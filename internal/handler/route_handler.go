package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/facuvd/horarios-backend-go/internal/models"
	"github.com/facuvd/horarios-backend-go/internal/service"
	"github.com/facuvd/horarios-backend-go/pkg/response"
)

// RouteHandler handles HTTP requests for routes
type RouteHandler struct {
	service *service.RouteService
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(service *service.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// GetRoutes handles GET /api/v1/routes
func (h *RouteHandler) GetRoutes(c *gin.Context) {
	var filter models.RouteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	routes, err := h.service.GetRoutes(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, routes)
}

// GetRouteByID handles GET /api/v1/routes/:id
func (h *RouteHandler) GetRouteByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid route ID", err)
		return
	}

	route, err := h.service.GetRouteByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, route)
}

// CreateRoute handles POST /api/v1/routes
func (h *RouteHandler) CreateRoute(c *gin.Context) {
	var req models.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	route, err := h.service.CreateRoute(req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, route)
}

// DeleteRoute handles DELETE /api/v1/routes/:id
func (h *RouteHandler) DeleteRoute(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid route ID", err)
		return
	}

	if err := h.service.DeleteRoute(id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
