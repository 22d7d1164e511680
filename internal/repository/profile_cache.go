package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnhq/backend/internal/models"
)

const (
	profileCacheKeyPrefix = "profile:stats:"

	// Cached profiles only dodge redundant reads; the database row is always
	// the source of truth, so the TTL stays short.
	profileCacheTTL = 5 * time.Minute
)

// ProfileCache caches profile statistics in Redis (TTL 5 minutes).
type ProfileCache struct {
	client *redis.Client
}

func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

// Get returns the cached profile, or (nil, nil) if not found.
func (c *ProfileCache) Get(ctx context.Context, identityID string) (*models.UserProfile, error) {
	data, err := c.client.Get(ctx, profileCacheKeyPrefix+identityID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Set stores the profile with the fixed 5-minute TTL.
func (c *ProfileCache) Set(ctx context.Context, profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, profileCacheKeyPrefix+profile.IdentityID, data, profileCacheTTL).Err()
}

// Invalidate drops the cached copy after any profile mutation.
func (c *ProfileCache) Invalidate(ctx context.Context, identityID string) error {
	return c.client.Del(ctx, profileCacheKeyPrefix+identityID).Err()
}
