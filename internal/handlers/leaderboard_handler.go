package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/learnhq/backend/internal/api/dto"
)

// ==============================================
// SERVICE INTERFACE (for testing)
// ==============================================

type LeaderboardServiceInterface interface {
	GetTop(ctx context.Context, board string, limit int64) (*dto.LeaderboardResponse, error)
}

// ==============================================
// HANDLER (HTTP Layer ONLY)
// ==============================================

type LeaderboardHandler struct {
	service LeaderboardServiceInterface
}

func NewLeaderboardHandler(service LeaderboardServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

// ==============================================
// ENDPOINTS
// ==============================================

// GetTop handles GET /api/v1/leaderboard/:board
func (h *LeaderboardHandler) GetTop(c *gin.Context) {
	board := c.Param("board")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	resp, err := h.service.GetTop(c.Request.Context(), board, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// ==============================================
// ROUTE REGISTRATION
// ==============================================

func (h *LeaderboardHandler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/leaderboard/:board", h.GetTop)
	}
}
