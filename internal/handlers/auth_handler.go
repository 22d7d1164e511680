package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnhq/backend/internal/api/dto"
)

// ==============================================
// SERVICE INTERFACE (for testing)
// ==============================================

type AuthenticationService interface {
	AuthenticateWithOTP(ctx context.Context, phone, code string) *dto.AuthenticateResponse
}

// ==============================================
// HANDLER (HTTP Layer ONLY)
// ==============================================

type AuthHandler struct {
	service AuthenticationService
}

func NewAuthHandler(service AuthenticationService) *AuthHandler {
	return &AuthHandler{service: service}
}

// ==============================================
// ENDPOINTS
// ==============================================

// Authenticate handles POST /api/v1/auth/login - OTP verification plus
// sign-in or registration in one call.
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req dto.AuthenticateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp := h.service.AuthenticateWithOTP(c.Request.Context(), req.Phone, req.Code)
	if !resp.Success {
		status := http.StatusUnauthorized
		if resp.Step == dto.StepUnknown {
			status = http.StatusInternalServerError
		}
		c.JSON(status, resp)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// ==============================================
// ROUTE REGISTRATION
// ==============================================

func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1/auth")
	{
		v1.POST("/login", h.Authenticate)
	}
}
