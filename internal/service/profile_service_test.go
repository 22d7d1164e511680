package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhq/backend/internal/api/dto"
	"github.com/learnhq/backend/internal/models"
)

// ==============================================
// MOCKS
// ==============================================

type MockProfileRepository struct {
	GetProfileFunc func(ctx context.Context, identityID string) (*models.UserProfile, error)
	AddStatsFunc   func(ctx context.Context, identityID string, xp, coins, studyHours int, extendStreak bool) (*models.UserProfile, error)

	getCalls int
}

func (m *MockProfileRepository) GetProfile(ctx context.Context, identityID string) (*models.UserProfile, error) {
	m.getCalls++
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, identityID)
	}
	return &models.UserProfile{IdentityID: identityID, XP: models.DefaultXP, Coins: models.DefaultCoins, LastLoginAt: time.Now()}, nil
}

func (m *MockProfileRepository) UpdateLastLogin(ctx context.Context, identityID string) error {
	return nil
}

func (m *MockProfileRepository) AddStats(ctx context.Context, identityID string, xp, coins, studyHours int, extendStreak bool) (*models.UserProfile, error) {
	if m.AddStatsFunc != nil {
		return m.AddStatsFunc(ctx, identityID, xp, coins, studyHours, extendStreak)
	}
	return &models.UserProfile{IdentityID: identityID, XP: xp, Coins: coins, StudyHours: studyHours, LastLoginAt: time.Now()}, nil
}

type MockProfileCache struct {
	store       map[string]*models.UserProfile
	invalidated []string
}

func NewMockProfileCache() *MockProfileCache {
	return &MockProfileCache{store: make(map[string]*models.UserProfile)}
}

func (m *MockProfileCache) Get(_ context.Context, identityID string) (*models.UserProfile, error) {
	return m.store[identityID], nil
}

func (m *MockProfileCache) Set(_ context.Context, profile *models.UserProfile) error {
	m.store[profile.IdentityID] = profile
	return nil
}

func (m *MockProfileCache) Invalidate(_ context.Context, identityID string) error {
	m.invalidated = append(m.invalidated, identityID)
	delete(m.store, identityID)
	return nil
}

type MockLeaderboardUpdater struct {
	xpUpdates     map[string]int64
	streakUpdates map[string]int64
}

func NewMockLeaderboardUpdater() *MockLeaderboardUpdater {
	return &MockLeaderboardUpdater{xpUpdates: make(map[string]int64), streakUpdates: make(map[string]int64)}
}

func (m *MockLeaderboardUpdater) UpdateXP(_ context.Context, identityID string, xp int64) error {
	m.xpUpdates[identityID] = xp
	return nil
}

func (m *MockLeaderboardUpdater) UpdateStreak(_ context.Context, identityID string, streak int64) error {
	m.streakUpdates[identityID] = streak
	return nil
}

// ==============================================
// GET PROFILE
// ==============================================

func TestGetProfile_CacheMissReadsDatabaseThenCaches(t *testing.T) {
	repo := &MockProfileRepository{}
	cache := NewMockProfileCache()
	svc := NewProfileService(repo, cache, NewMockLeaderboardUpdater())

	resp, err := svc.GetProfile(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultXP, resp.XP)
	assert.Equal(t, 1, repo.getCalls)

	// Second read hits the cache, not the database.
	_, err = svc.GetProfile(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)
}

// ==============================================
// ADD STATS
// ==============================================

func TestAddStats_InvalidatesCacheAndFeedsLeaderboards(t *testing.T) {
	repo := &MockProfileRepository{
		AddStatsFunc: func(_ context.Context, identityID string, xp, coins, studyHours int, extendStreak bool) (*models.UserProfile, error) {
			return &models.UserProfile{
				IdentityID: identityID,
				XP:         120,
				Coins:      15,
				Streaks:    4,
				StudyHours: 7,
				LastLoginAt: time.Now(),
			}, nil
		},
	}
	cache := NewMockProfileCache()
	cache.Set(context.Background(), &models.UserProfile{IdentityID: "id-1", XP: 100})
	board := NewMockLeaderboardUpdater()
	svc := NewProfileService(repo, cache, board)

	resp, err := svc.AddStats(context.Background(), "id-1", dto.AddStatsRequest{XP: 20, Coins: 10, Streak: true})
	require.NoError(t, err)

	assert.Equal(t, 120, resp.XP)
	assert.Contains(t, cache.invalidated, "id-1")
	assert.Equal(t, int64(120), board.xpUpdates["id-1"])
	assert.Equal(t, int64(4), board.streakUpdates["id-1"])
}
