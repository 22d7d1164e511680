package service

import (
	"context"
	"log"
	"time"

	"github.com/learnhq/backend/internal/api/dto"
	"github.com/learnhq/backend/internal/models"
)

// ==============================================
// DEPENDENCY INTERFACES (for testing)
// ==============================================

type ProfileRepositoryInterface interface {
	GetProfile(ctx context.Context, identityID string) (*models.UserProfile, error)
	UpdateLastLogin(ctx context.Context, identityID string) error
	AddStats(ctx context.Context, identityID string, xp, coins, studyHours int, extendStreak bool) (*models.UserProfile, error)
}

type ProfileCacheInterface interface {
	Get(ctx context.Context, identityID string) (*models.UserProfile, error)
	Set(ctx context.Context, profile *models.UserProfile) error
	Invalidate(ctx context.Context, identityID string) error
}

type LeaderboardUpdater interface {
	UpdateXP(ctx context.Context, identityID string, xp int64) error
	UpdateStreak(ctx context.Context, identityID string, streak int64) error
}

// ==============================================
// PROFILE SERVICE
// ==============================================

type ProfileService struct {
	profileRepo ProfileRepositoryInterface
	cache       ProfileCacheInterface
	leaderboard LeaderboardUpdater
}

func NewProfileService(
	profileRepo ProfileRepositoryInterface,
	cache ProfileCacheInterface,
	leaderboard LeaderboardUpdater,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		cache:       cache,
		leaderboard: leaderboard,
	}
}

// GetProfile reads through the 5-minute cache. A cache miss or cache error
// always falls back to the database; the cache is never the source of truth.
func (s *ProfileService) GetProfile(ctx context.Context, identityID string) (*dto.ProfileResponse, error) {
	cached, err := s.cache.Get(ctx, identityID)
	if err != nil {
		log.Printf("profile cache read failed: %v", err)
	}
	if cached != nil {
		return profileToDTO(cached), nil
	}

	profile, err := s.profileRepo.GetProfile(ctx, identityID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, profile); err != nil {
		log.Printf("profile cache write failed: %v", err)
	}

	return profileToDTO(profile), nil
}

// AddStats applies gameplay rewards, invalidates the cache, and pushes the
// new totals onto the leaderboards.
func (s *ProfileService) AddStats(ctx context.Context, identityID string, req dto.AddStatsRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.AddStats(ctx, identityID, req.XP, req.Coins, req.StudyHours, req.Streak)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, identityID); err != nil {
		log.Printf("profile cache invalidation failed: %v", err)
	}

	if err := s.leaderboard.UpdateXP(ctx, identityID, int64(profile.XP)); err != nil {
		log.Printf("leaderboard xp update failed: %v", err)
	}
	if err := s.leaderboard.UpdateStreak(ctx, identityID, int64(profile.Streaks)); err != nil {
		log.Printf("leaderboard streak update failed: %v", err)
	}

	return profileToDTO(profile), nil
}

func profileToDTO(p *models.UserProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		IdentityID:  p.IdentityID,
		XP:          p.XP,
		Coins:       p.Coins,
		Streaks:     p.Streaks,
		StudyHours:  p.StudyHours,
		LastLoginAt: p.LastLoginAt.Format(time.RFC3339),
	}
}
