package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/facuvd/horarios-backend-go/internal/auth"
	"github.com/facuvd/horarios-backend-go/internal/models"
	"github.com/facuvd/horarios-backend-go/internal/service"
	"github.com/facuvd/horarios-backend-go/pkg/response"
)

// AuthHandler handles registration, login and the current-user lookup
type AuthHandler struct {
	users  *service.UserService
	tokens *auth.TokenManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users *service.UserService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.users.Register(req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, user)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.users.Authenticate(req)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			response.Error(c, http.StatusUnauthorized, err.Error(), nil)
			return
		}
		writeServiceError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.Username, user.Role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	response.Success(c, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := auth.ClaimsFrom(c)
	if claims == nil {
		response.Error(c, http.StatusUnauthorized, "Missing bearer token", nil)
		return
	}

	user, err := h.users.GetByUsername(claims.Username)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, user)
}
