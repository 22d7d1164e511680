package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	LeaderboardXPKey     = "leaderboard:xp"
	LeaderboardStreakKey = "leaderboard:streak"
)

// LeaderboardEntry is one ranked row from a leaderboard ZSet.
type LeaderboardEntry struct {
	IdentityID string
	Score      int64
	Rank       int64
}

// LeaderboardRepository handles Redis ZSet operations for leaderboards
type LeaderboardRepository struct {
	client *redis.Client
}

func NewLeaderboardRepository(client *redis.Client) *LeaderboardRepository {
	return &LeaderboardRepository{client: client}
}

// UpdateXP sets the identity's score on the XP leaderboard
func (r *LeaderboardRepository) UpdateXP(ctx context.Context, identityID string, xp int64) error {
	return r.client.ZAdd(ctx, LeaderboardXPKey, redis.Z{
		Score:  float64(xp), // ZSet scores are float64
		Member: identityID,
	}).Err()
}

// UpdateStreak sets the identity's score on the streak leaderboard
func (r *LeaderboardRepository) UpdateStreak(ctx context.Context, identityID string, streak int64) error {
	return r.client.ZAdd(ctx, LeaderboardStreakKey, redis.Z{
		Score:  float64(streak),
		Member: identityID,
	}).Err()
}

// GetTop returns the top N entries of the given board, highest score first,
// with 1-indexed ranks.
func (r *LeaderboardRepository) GetTop(ctx context.Context, key string, limit int64) ([]LeaderboardEntry, error) {
	results, err := r.client.ZRevRangeWithScores(ctx, key, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, len(results))
	for i, result := range results {
		entries[i] = LeaderboardEntry{
			IdentityID: result.Member.(string),
			Score:      int64(result.Score),
			Rank:       int64(i) + 1,
		}
	}

	return entries, nil
}
