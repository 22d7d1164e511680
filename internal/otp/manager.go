package otp

import (
	"context"
	"log"

	"github.com/learnhq/backend/internal/api/dto"
	"github.com/learnhq/backend/internal/models"
	"github.com/learnhq/backend/internal/sms"
)

// ==============================================
// OTP SESSION MANAGER
// ==============================================

// Manager mediates between callers and the SMS provider: it issues OTP
// challenges, tracks the single active session, and validates user-entered
// codes. Every public operation returns a result value; failures never
// propagate as errors past this boundary.
type Manager struct {
	provider sms.Provider
	store    SessionStore
}

func NewManager(provider sms.Provider, store SessionStore) *Manager {
	return &Manager{provider: provider, store: store}
}

// ==============================================
// SEND
// ==============================================

// SendOTP dispatches a one-time code to the given phone number. On success
// the new session replaces any previously stored one.
func (m *Manager) SendOTP(ctx context.Context, phone string) *dto.SendOTPResponse {
	if !ValidatePhoneNumber(phone) {
		return &dto.SendOTPResponse{Success: false, Error: models.ErrInvalidPhoneFormat.Error()}
	}

	digits := NormalizePhone(phone)

	sessionID, err := m.provider.SendOTP(ctx, digits)
	if err != nil {
		if detail, ok := sms.IsProviderError(err); ok {
			return &dto.SendOTPResponse{Success: false, Error: sms.NormalizeProviderError(detail)}
		}
		log.Printf("OTP send failed: %v", err)
		return &dto.SendOTPResponse{Success: false, Error: models.ErrProviderUnavailable.Error()}
	}

	session := models.OTPSession{SessionID: sessionID, PhoneNumber: digits}
	if err := m.store.Put(ctx, session); err != nil {
		log.Printf("failed to persist OTP session: %v", err)
		return &dto.SendOTPResponse{Success: false, Error: models.ErrSendFailed.Error()}
	}

	return &dto.SendOTPResponse{
		Success:   true,
		SessionID: sessionID,
		Phone:     digits,
		Message:   "OTP sent successfully. Please check your phone.",
	}
}

// ==============================================
// VERIFY
// ==============================================

// VerifyOTP checks a 6-digit code against the active session. sessionID may
// be empty, in which case the stored session is used. A successful
// verification consumes the session; a failed one leaves it intact so the
// user can retry with another code.
func (m *Manager) VerifyOTP(ctx context.Context, code, sessionID string) *dto.VerifyOTPResponse {
	if !ValidateCode(code) {
		return &dto.VerifyOTPResponse{Success: false, Error: models.ErrInvalidCodeFormat.Error()}
	}

	if sessionID == "" {
		session, err := m.store.Get(ctx)
		if err != nil {
			log.Printf("failed to read OTP session: %v", err)
			return &dto.VerifyOTPResponse{Success: false, Error: models.ErrNoSession.Error()}
		}
		if session == nil {
			return &dto.VerifyOTPResponse{Success: false, Error: models.ErrNoSession.Error()}
		}
		sessionID = session.SessionID
	}

	if err := m.provider.VerifyOTP(ctx, sessionID, code); err != nil {
		if detail, ok := sms.IsProviderError(err); ok {
			return &dto.VerifyOTPResponse{Success: false, Error: sms.NormalizeProviderError(detail)}
		}
		log.Printf("OTP verify failed: %v", err)
		return &dto.VerifyOTPResponse{Success: false, Error: models.ErrProviderUnavailable.Error()}
	}

	// Exactly-once consumption: the session is gone after a success.
	if err := m.store.Clear(ctx); err != nil {
		log.Printf("failed to clear OTP session: %v", err)
	}

	return &dto.VerifyOTPResponse{Success: true, Message: "OTP verified successfully."}
}

// ==============================================
// RESEND
// ==============================================

// ResendOTP re-sends a code to the phone number of the stored session. The
// previous session id becomes permanently unusable whether or not the
// original SMS arrived.
func (m *Manager) ResendOTP(ctx context.Context) *dto.SendOTPResponse {
	session, err := m.store.Get(ctx)
	if err != nil {
		log.Printf("failed to read OTP session: %v", err)
		return &dto.SendOTPResponse{Success: false, Error: models.ErrNoPhoneNumber.Error()}
	}
	if session == nil {
		return &dto.SendOTPResponse{Success: false, Error: models.ErrNoPhoneNumber.Error()}
	}

	return m.SendOTP(ctx, session.PhoneNumber)
}

// ActiveSession exposes the stored session, if any. Used by handlers that
// need the phone number tied to the outstanding challenge.
func (m *Manager) ActiveSession(ctx context.Context) (*models.OTPSession, error) {
	return m.store.Get(ctx)
}
