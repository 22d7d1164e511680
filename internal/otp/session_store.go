package otp

import (
	"context"
	"sync"

	"github.com/learnhq/backend/internal/models"
)

// ==============================================
// SESSION STORE
// ==============================================

// SessionStore holds the single outstanding OTP session. Semantics are
// last-write-wins: Put replaces whatever was there, Clear empties the slot,
// Get returns (nil, nil) when the slot is empty.
type SessionStore interface {
	Get(ctx context.Context) (*models.OTPSession, error)
	Put(ctx context.Context, session models.OTPSession) error
	Clear(ctx context.Context) error
}

// ==============================================
// IN-MEMORY STORE
// ==============================================

// MemoryStore is a process-local SessionStore. Used in tests and in
// single-instance deployments with no Redis.
type MemoryStore struct {
	mu      sync.Mutex
	session *models.OTPSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (*models.OTPSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, nil
	}
	copied := *s.session
	return &copied, nil
}

func (s *MemoryStore) Put(_ context.Context, session models.OTPSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &session
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return nil
}
