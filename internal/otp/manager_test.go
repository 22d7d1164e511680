package otp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhq/backend/internal/models"
	"github.com/learnhq/backend/internal/sms"
)

// ==============================================
// MOCK PROVIDER
// ==============================================

type MockProvider struct {
	SendOTPFunc   func(ctx context.Context, phone string) (string, error)
	VerifyOTPFunc func(ctx context.Context, sessionID, code string) error

	sendCalls   int
	verifyCalls int
}

func (m *MockProvider) SendOTP(ctx context.Context, phone string) (string, error) {
	m.sendCalls++
	if m.SendOTPFunc != nil {
		return m.SendOTPFunc(ctx, phone)
	}
	return "session-1", nil
}

func (m *MockProvider) VerifyOTP(ctx context.Context, sessionID, code string) error {
	m.verifyCalls++
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, sessionID, code)
	}
	return nil
}

// ==============================================
// SEND
// ==============================================

func TestSendOTP_InvalidPhoneMakesNoNetworkCall(t *testing.T) {
	provider := &MockProvider{}
	manager := NewManager(provider, NewMemoryStore())

	resp := manager.SendOTP(context.Background(), "12345")

	assert.False(t, resp.Success)
	assert.Equal(t, models.ErrInvalidPhoneFormat.Error(), resp.Error)
	assert.Equal(t, 0, provider.sendCalls)
}

func TestSendOTP_PersistsSingleSession(t *testing.T) {
	provider := &MockProvider{
		SendOTPFunc: func(_ context.Context, phone string) (string, error) {
			return "abc123", nil
		},
	}
	store := NewMemoryStore()
	manager := NewManager(provider, store)

	resp := manager.SendOTP(context.Background(), "(987) 654-3210")

	require.True(t, resp.Success)
	assert.Equal(t, "abc123", resp.SessionID)
	assert.Equal(t, "9876543210", resp.Phone)

	session, err := store.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "abc123", session.SessionID)
	assert.Equal(t, "9876543210", session.PhoneNumber)
}

func TestSendOTP_SecondSendReplacesSession(t *testing.T) {
	calls := 0
	provider := &MockProvider{
		SendOTPFunc: func(_ context.Context, _ string) (string, error) {
			calls++
			if calls == 1 {
				return "first", nil
			}
			return "second", nil
		},
	}
	store := NewMemoryStore()
	manager := NewManager(provider, store)

	require.True(t, manager.SendOTP(context.Background(), "9876543210").Success)
	require.True(t, manager.SendOTP(context.Background(), "9876543210").Success)

	session, err := store.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "second", session.SessionID)
}

func TestSendOTP_ProviderErrorIsNormalized(t *testing.T) {
	provider := &MockProvider{
		SendOTPFunc: func(_ context.Context, _ string) (string, error) {
			return "", &sms.ProviderError{Detail: "blocked: DND number"}
		},
	}
	manager := NewManager(provider, NewMemoryStore())

	resp := manager.SendOTP(context.Background(), "9876543210")

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "DND")
	assert.NotContains(t, resp.Error, "blocked")
}

func TestSendOTP_TransportErrorBecomesGenericMessage(t *testing.T) {
	provider := &MockProvider{
		SendOTPFunc: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("dial tcp: connection refused")
		},
	}
	manager := NewManager(provider, NewMemoryStore())

	resp := manager.SendOTP(context.Background(), "9876543210")

	assert.False(t, resp.Success)
	assert.Equal(t, models.ErrProviderUnavailable.Error(), resp.Error)
}

// ==============================================
// VERIFY
// ==============================================

func TestVerifyOTP_RejectsBadCodeWithoutNetworkCall(t *testing.T) {
	provider := &MockProvider{}
	store := NewMemoryStore()
	store.Put(context.Background(), models.OTPSession{SessionID: "abc123", PhoneNumber: "9876543210"})
	manager := NewManager(provider, store)

	for _, code := range []string{"12345", "1234567", "12345a", ""} {
		resp := manager.VerifyOTP(context.Background(), code, "")
		assert.False(t, resp.Success)
		assert.Equal(t, models.ErrInvalidCodeFormat.Error(), resp.Error)
	}
	assert.Equal(t, 0, provider.verifyCalls)
}

func TestVerifyOTP_NoSession(t *testing.T) {
	manager := NewManager(&MockProvider{}, NewMemoryStore())

	resp := manager.VerifyOTP(context.Background(), "123456", "")

	assert.False(t, resp.Success)
	assert.Equal(t, models.ErrNoSession.Error(), resp.Error)
}

func TestVerifyOTP_SuccessClearsSession(t *testing.T) {
	store := NewMemoryStore()
	store.Put(context.Background(), models.OTPSession{SessionID: "abc123", PhoneNumber: "9876543210"})
	manager := NewManager(&MockProvider{}, store)

	resp := manager.VerifyOTP(context.Background(), "654321", "")

	require.True(t, resp.Success)
	session, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestVerifyOTP_FailureKeepsSessionForRetry(t *testing.T) {
	provider := &MockProvider{
		VerifyOTPFunc: func(_ context.Context, sessionID, code string) error {
			if code != "654321" {
				return &sms.ProviderError{Detail: "OTP Mismatch"}
			}
			return nil
		},
	}
	store := NewMemoryStore()
	store.Put(context.Background(), models.OTPSession{SessionID: "abc123", PhoneNumber: "9876543210"})
	manager := NewManager(provider, store)

	// Wrong code: session must survive.
	resp := manager.VerifyOTP(context.Background(), "111111", "")
	assert.False(t, resp.Success)

	session, err := store.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "abc123", session.SessionID)

	// Correct code against the same session: success, then cleared.
	resp = manager.VerifyOTP(context.Background(), "654321", "")
	require.True(t, resp.Success)

	session, err = store.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

// ==============================================
// RESEND
// ==============================================

func TestResendOTP_NoSession(t *testing.T) {
	manager := NewManager(&MockProvider{}, NewMemoryStore())

	resp := manager.ResendOTP(context.Background())

	assert.False(t, resp.Success)
	assert.Equal(t, models.ErrNoPhoneNumber.Error(), resp.Error)
}

func TestResendOTP_SupersedesPreviousSession(t *testing.T) {
	calls := 0
	provider := &MockProvider{
		SendOTPFunc: func(_ context.Context, phone string) (string, error) {
			calls++
			if calls == 1 {
				return "old-session", nil
			}
			return "new-session", nil
		},
	}
	store := NewMemoryStore()
	manager := NewManager(provider, store)

	require.True(t, manager.SendOTP(context.Background(), "9876543210").Success)
	resp := manager.ResendOTP(context.Background())

	require.True(t, resp.Success)
	assert.Equal(t, "new-session", resp.SessionID)

	session, err := store.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "new-session", session.SessionID)
	assert.Equal(t, "9876543210", session.PhoneNumber)
}
