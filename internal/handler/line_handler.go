package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/facuvd/horarios-backend-go/internal/models"
	"github.com/facuvd/horarios-backend-go/internal/service"
	"github.com/facuvd/horarios-backend-go/pkg/response"
)

// LineHandler handles HTTP requests for lines
type LineHandler struct {
	service *service.LineService
}

// NewLineHandler creates a new line handler
func NewLineHandler(service *service.LineService) *LineHandler {
	return &LineHandler{service: service}
}

// GetLines handles GET /api/v1/lines
func (h *LineHandler) GetLines(c *gin.Context) {
	lines, err := h.service.GetLines()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, lines)
}

// GetLineByID handles GET /api/v1/lines/:id
func (h *LineHandler) GetLineByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid line ID", err)
		return
	}

	line, err := h.service.GetLineByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, line)
}

// CreateLine handles POST /api/v1/lines
func (h *LineHandler) CreateLine(c *gin.Context) {
	var req models.CreateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	line, err := h.service.CreateLine(req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, line)
}

// UpdateLine handles PUT /api/v1/lines/:id
func (h *LineHandler) UpdateLine(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid line ID", err)
		return
	}

	var req models.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	line, err := h.service.UpdateLine(id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, line)
}

// DeleteLine handles DELETE /api/v1/lines/:id
func (h *LineHandler) DeleteLine(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid line ID", err)
		return
	}

	if err := h.service.DeleteLine(id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
