package models

import (
	"errors"
	"fmt"
)

// ==============================================
// CUSTOM ERROR TYPES
// ==============================================

// AppError represents a structured application error
type AppError struct {
	Code    string // Error code for client
	Message string // Human-readable message
	Err     error  // Underlying error (for logging)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ==============================================
// PREDEFINED ERRORS
// ==============================================

// Phone / OTP Errors
var (
	ErrInvalidPhoneFormat = errors.New("Invalid phone number format")
	ErrInvalidCodeFormat  = errors.New("OTP must be exactly 6 digits")
	ErrNoSession          = errors.New("No OTP session found")
	ErrNoPhoneNumber      = errors.New("No phone number found")
	ErrOTPInvalid         = errors.New("invalid OTP")
	ErrSendFailed         = errors.New("failed to send OTP")
)

// Identity Errors
var (
	ErrIdentityNotFound  = errors.New("identity not found")
	ErrIdentityMismatch  = errors.New("identity id does not match phone mapping")
	ErrMappingNotFound   = errors.New("phone mapping not found")
	ErrMappingExists     = errors.New("phone number already registered")
	ErrInvalidCredential = errors.New("invalid credentials")
)

// Profile / Progress Errors
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrProgressNotFound = errors.New("topic progress not found")
	ErrInvalidProgress  = errors.New("progress must be between 0 and 100")
)

// Connectivity Errors
var (
	ErrProviderUnavailable = errors.New("Network error. Please check your connection and try again.")
	ErrConfigMissing       = errors.New("server configuration error")
)
