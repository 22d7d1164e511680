package sms

import (
	"context"
	"strings"
)

// ==============================================
// PROVIDER INTERFACE
// ==============================================

// Provider dispatches and verifies SMS one-time passwords. Implementations:
// Client (real provider over HTTP) and Stub (no SMS account needed).
type Provider interface {
	// SendOTP asks the provider to text a code to the given 10-digit phone
	// number and returns the opaque session id identifying the challenge.
	SendOTP(ctx context.Context, phone string) (sessionID string, err error)

	// VerifyOTP checks a user-entered code against an outstanding session.
	VerifyOTP(ctx context.Context, sessionID, code string) error
}

// ==============================================
// ERROR NORMALIZATION
// ==============================================

// User-facing replacements for known provider error categories. Billing
// problems are deliberately hidden behind a generic unavailability message.
const (
	msgInvalidNumber = "The phone number you entered is invalid. Please check and try again."
	msgDNDBlocked    = "Your number has DND (Do Not Disturb) enabled. Please disable DND or try a different number."
	msgRateLimited   = "Too many OTP requests. Please wait a few minutes before trying again."
	msgUnavailable   = "SMS service is temporarily unavailable. Please try again later."
)

// NormalizeProviderError maps known provider error substrings to fixed
// user-facing text. Matching is case-insensitive; unrecognized messages pass
// through unchanged.
func NormalizeProviderError(raw string) string {
	lower := strings.ToLower(raw)

	switch {
	case strings.Contains(lower, "invalid number"), strings.Contains(lower, "invalid mobile"):
		return msgInvalidNumber
	case strings.Contains(lower, "dnd"), strings.Contains(lower, "do-not-disturb"), strings.Contains(lower, "do not disturb"):
		return msgDNDBlocked
	case strings.Contains(lower, "rate limit"), strings.Contains(lower, "too many requests"):
		return msgRateLimited
	case strings.Contains(lower, "insufficient"), strings.Contains(lower, "low balance"):
		return msgUnavailable
	default:
		return raw
	}
}
