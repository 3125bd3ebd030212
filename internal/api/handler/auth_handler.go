package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/andrewarnaud1/mymanager/internal/dto"
	"github.com/andrewarnaud1/mymanager/internal/service"
	"github.com/andrewarnaud1/mymanager/pkg/response"
)

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	svc service.AuthService
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	tokens, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, tokens)
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	if err := h.svc.Logout(c.Request.Context(), &req); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, nil)
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	account, err := h.svc.GetCurrentAccount(c.Request.Context(), MustGetAccountID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, account)
}
