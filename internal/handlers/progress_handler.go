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

type ProgressServiceInterface interface {
	RecordSession(ctx context.Context, identityID string, req dto.UpsertProgressRequest) (*dto.ProgressDTO, error)
	ListOngoing(ctx context.Context, identityID string) (*dto.ProgressListResponse, error)
}

// ==============================================
// HANDLER (HTTP Layer ONLY)
// ==============================================

type ProgressHandler struct {
	service   ProgressServiceInterface
	jwtSecret string
}

func NewProgressHandler(service ProgressServiceInterface, jwtSecret string) *ProgressHandler {
	return &ProgressHandler{service: service, jwtSecret: jwtSecret}
}

// ==============================================
// ENDPOINTS
// ==============================================

// RecordSession handles POST /api/v1/progress
func (h *ProgressHandler) RecordSession(c *gin.Context) {
	identityID, ok := identityFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized", errors.New("missing identity"))
		return
	}

	var req dto.UpsertProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.service.RecordSession(c.Request.Context(), identityID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// ListOngoing handles GET /api/v1/progress
func (h *ProgressHandler) ListOngoing(c *gin.Context) {
	identityID, ok := identityFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized", errors.New("missing identity"))
		return
	}

	resp, err := h.service.ListOngoing(c.Request.Context(), identityID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// ==============================================
// ROUTE REGISTRATION
// ==============================================

func (h *ProgressHandler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1/progress")
	v1.Use(AuthMiddleware(h.jwtSecret))
	{
		v1.POST("", h.RecordSession)
		v1.GET("", h.ListOngoing)
	}
}
