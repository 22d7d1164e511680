package sms

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// StubCode is the only code the stub accepts. Used when SMS_MODE=disabled so
// the full login flow works locally without a provider account.
const StubCode = "123456"

// Stub implements Provider without sending anything. Each SendOTP issues a
// fresh session id; VerifyOTP accepts StubCode against any issued session.
type Stub struct {
	mu       sync.Mutex
	sessions map[string]string // sessionID -> phone
}

func NewStub() *Stub {
	return &Stub{sessions: make(map[string]string)}
}

func (s *Stub) SendOTP(_ context.Context, phone string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := uuid.NewString()
	s.sessions[sessionID] = phone
	return sessionID, nil
}

func (s *Stub) VerifyOTP(_ context.Context, sessionID, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return &ProviderError{Detail: "OTP Expired"}
	}
	if code != StubCode {
		return &ProviderError{Detail: "OTP Mismatch"}
	}
	delete(s.sessions, sessionID)
	return nil
}
