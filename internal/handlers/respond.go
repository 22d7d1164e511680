package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnhq/backend/internal/repository"
	"github.com/learnhq/backend/internal/service"
)

// respondSuccess sends a successful JSON response
func respondSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// respondError sends an error JSON response
func respondError(c *gin.Context, statusCode int, message string, err error) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"message": err.Error(),
	})
}

// respondServiceError maps service errors to appropriate HTTP status codes and responses
func respondServiceError(c *gin.Context, err error) {
	statusCode, message := mapServiceError(err)
	c.JSON(statusCode, gin.H{
		"error":   message,
		"message": err.Error(),
	})
}

// mapServiceError maps service errors to HTTP status codes and user-friendly messages
func mapServiceError(err error) (int, string) {
	switch {
	// Validation errors (400 Bad Request)
	case errors.Is(err, service.ErrUnknownBoard):
		return http.StatusBadRequest, "Unknown leaderboard"

	// Not found errors (404 Not Found)
	case errors.Is(err, repository.ErrProfileNotFound):
		return http.StatusNotFound, "Profile not found"
	case errors.Is(err, repository.ErrIdentityNotFound):
		return http.StatusNotFound, "Identity not found"
	case errors.Is(err, repository.ErrProgressNotFound):
		return http.StatusNotFound, "Topic progress not found"

	// Default (500 Internal Server Error)
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
