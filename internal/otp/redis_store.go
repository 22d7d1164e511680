package otp

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnhq/backend/internal/models"
)

const (
	sessionIDKey    = "otp:session:id"
	sessionPhoneKey = "otp:session:phone"

	// Abandoned sessions expire on their own; a fresh send resets the TTL.
	sessionTTL = 10 * time.Minute
)

// RedisStore keeps the OTP session in Redis as two keys, one for the session
// id and one for the phone number, each with a sliding expiry.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context) (*models.OTPSession, error) {
	sessionID, err := s.client.Get(ctx, sessionIDKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	phone, err := s.client.Get(ctx, sessionPhoneKey).Result()
	if err == redis.Nil {
		// Half a session is no session.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.OTPSession{SessionID: sessionID, PhoneNumber: phone}, nil
}

func (s *RedisStore) Put(ctx context.Context, session models.OTPSession) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionIDKey, session.SessionID, sessionTTL)
	pipe.Set(ctx, sessionPhoneKey, session.PhoneNumber, sessionTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, sessionIDKey, sessionPhoneKey).Err()
}
