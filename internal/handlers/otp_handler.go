package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnhq/backend/internal/api/dto"
	"github.com/learnhq/backend/internal/models"
	"github.com/learnhq/backend/internal/otp"
)

// ==============================================
// SERVICE INTERFACE (for testing)
// ==============================================

type OTPService interface {
	SendOTP(ctx context.Context, phone string) *dto.SendOTPResponse
	VerifyOTP(ctx context.Context, code, sessionID string) *dto.VerifyOTPResponse
	ResendOTP(ctx context.Context) *dto.SendOTPResponse
}

// ==============================================
// HANDLER (HTTP Layer ONLY)
// ==============================================

// OTPHandler is the SMS proxy surface: browsers post phone numbers here and
// never see the provider or its API key.
type OTPHandler struct {
	service          OTPService
	apiKeyConfigured bool
}

// NewOTPHandler wires the OTP manager. apiKeyConfigured=false makes every
// send/verify fail with a generic configuration error; the missing key's name
// never leaves the server.
func NewOTPHandler(service OTPService, apiKeyConfigured bool) *OTPHandler {
	return &OTPHandler{service: service, apiKeyConfigured: apiKeyConfigured}
}

// ==============================================
// ENDPOINTS
// ==============================================

// SendOTP handles POST /api/v1/otp/send
func (h *OTPHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	// Reject malformed numbers before any upstream call.
	if !otp.ValidatePhoneNumber(req.Phone) {
		c.JSON(http.StatusBadRequest, dto.SendOTPResponse{
			Success: false,
			Error:   models.ErrInvalidPhoneFormat.Error(),
		})
		return
	}

	if !h.apiKeyConfigured {
		c.JSON(http.StatusInternalServerError, dto.SendOTPResponse{
			Success: false,
			Error:   models.ErrConfigMissing.Error(),
		})
		return
	}

	resp := h.service.SendOTP(c.Request.Context(), req.Phone)
	if !resp.Success {
		c.JSON(http.StatusBadGateway, resp)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// VerifyOTP handles POST /api/v1/otp/verify
func (h *OTPHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	if !h.apiKeyConfigured {
		c.JSON(http.StatusInternalServerError, dto.VerifyOTPResponse{
			Success: false,
			Error:   models.ErrConfigMissing.Error(),
		})
		return
	}

	resp := h.service.VerifyOTP(c.Request.Context(), req.Code, req.SessionID)
	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// ResendOTP handles POST /api/v1/otp/resend
func (h *OTPHandler) ResendOTP(c *gin.Context) {
	if !h.apiKeyConfigured {
		c.JSON(http.StatusInternalServerError, dto.SendOTPResponse{
			Success: false,
			Error:   models.ErrConfigMissing.Error(),
		})
		return
	}

	resp := h.service.ResendOTP(c.Request.Context())
	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// ==============================================
// ROUTE REGISTRATION
// ==============================================

func (h *OTPHandler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1/otp")
	{
		v1.POST("/send", h.SendOTP)
		v1.POST("/verify", h.VerifyOTP)
		v1.POST("/resend", h.ResendOTP)
	}
}
