package dto

// ==============================================
// AUTH STEP TAGS
// ==============================================

// Step identifies where an authentication attempt failed so the caller can
// branch its messaging.
const (
	StepOTPVerification = "otp_verification"
	StepSignIn          = "signin"
	StepRegistration    = "registration"
	StepUnknown         = "unknown"
)

// ==============================================
// AUTH REQUEST DTOs
// ==============================================

// AuthenticateRequest - Phone + OTP code login/registration
type AuthenticateRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

// ==============================================
// AUTH RESPONSE DTOs
// ==============================================

// AuthenticateResponse - Result of the full OTP + identity flow
type AuthenticateResponse struct {
	Success     bool   `json:"success"`
	UserExists  bool   `json:"user_exists"`
	IdentityID  string `json:"identity_id,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
	ExpiresIn   int    `json:"expires_in,omitempty"` // seconds
	TokenType   string `json:"token_type,omitempty"` // "Bearer"
	Step        string `json:"step,omitempty"`       // set on failure
	Error       string `json:"error,omitempty"`
}
