package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnhq/backend/internal/api/dto"
)

// ==============================================
// SERVICE INTERFACE (for testing)
// ==============================================

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, identityID string) (*dto.ProfileResponse, error)
	AddStats(ctx context.Context, identityID string, req dto.AddStatsRequest) (*dto.ProfileResponse, error)
}

// ==============================================
// HANDLER (HTTP Layer ONLY)
// ==============================================

type ProfileHandler struct {
	service   ProfileServiceInterface
	jwtSecret string
}

func NewProfileHandler(service ProfileServiceInterface, jwtSecret string) *ProfileHandler {
	return &ProfileHandler{service: service, jwtSecret: jwtSecret}
}

// ==============================================
// ENDPOINTS
// ==============================================

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	identityID, ok := identityFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized", errors.New("missing identity"))
		return
	}

	resp, err := h.service.GetProfile(c.Request.Context(), identityID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// AddStats handles POST /api/v1/profile/stats
func (h *ProfileHandler) AddStats(c *gin.Context) {
	identityID, ok := identityFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized", errors.New("missing identity"))
		return
	}

	var req dto.AddStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.service.AddStats(c.Request.Context(), identityID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// ==============================================
// ROUTE REGISTRATION
// ==============================================

func (h *ProfileHandler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1/profile")
	v1.Use(AuthMiddleware(h.jwtSecret))
	{
		v1.GET("", h.GetProfile)
		v1.POST("/stats", h.AddStats)
	}
}
