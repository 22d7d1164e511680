package dto

// ==============================================
// OTP REQUEST DTOs
// ==============================================

// SendOTPRequest - Start an OTP challenge for a phone number
type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required"` // validated as 10 digits in the service
}

// VerifyOTPRequest - Check a code against the active session
type VerifyOTPRequest struct {
	SessionID string `json:"sessionId,omitempty"` // optional; falls back to the stored session
	Code      string `json:"code" binding:"required"`
}

// ==============================================
// OTP RESPONSE DTOs
// ==============================================

// SendOTPResponse
type SendOTPResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Error     string `json:"error,omitempty"`
}

// VerifyOTPResponse
type VerifyOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
