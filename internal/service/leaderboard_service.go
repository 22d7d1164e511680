package service

import (
	"context"
	"errors"
	"log"

	"github.com/learnhq/backend/internal/api/dto"
	"github.com/learnhq/backend/internal/models"
	"github.com/learnhq/backend/internal/repository"
)

// ==============================================
// DEPENDENCY INTERFACES (for testing)
// ==============================================

type LeaderboardReader interface {
	GetTop(ctx context.Context, key string, limit int64) ([]repository.LeaderboardEntry, error)
}

type IdentityLookup interface {
	GetIdentityByID(ctx context.Context, id string) (*models.Identity, error)
}

// ==============================================
// LEADERBOARD SERVICE
// ==============================================

var ErrUnknownBoard = errors.New("unknown leaderboard")

const defaultLeaderboardSize = 20

type LeaderboardService struct {
	leaderboardRepo LeaderboardReader
	identityRepo    IdentityLookup
}

func NewLeaderboardService(leaderboardRepo LeaderboardReader, identityRepo IdentityLookup) *LeaderboardService {
	return &LeaderboardService{
		leaderboardRepo: leaderboardRepo,
		identityRepo:    identityRepo,
	}
}

// GetTop returns the ranked entries for the named board ("xp" or "streak"),
// resolving display names from the identity store.
func (s *LeaderboardService) GetTop(ctx context.Context, board string, limit int64) (*dto.LeaderboardResponse, error) {
	var key string
	switch board {
	case "xp":
		key = repository.LeaderboardXPKey
	case "streak":
		key = repository.LeaderboardStreakKey
	default:
		return nil, ErrUnknownBoard
	}

	if limit <= 0 || limit > 100 {
		limit = defaultLeaderboardSize
	}

	entries, err := s.leaderboardRepo.GetTop(ctx, key, limit)
	if err != nil {
		return nil, err
	}

	resp := &dto.LeaderboardResponse{Board: board, Entries: make([]dto.LeaderboardEntryDTO, len(entries))}
	for i, entry := range entries {
		name := entry.IdentityID
		identity, err := s.identityRepo.GetIdentityByID(ctx, entry.IdentityID)
		if err != nil {
			// Stale board member; keep the row but fall back to the id.
			log.Printf("leaderboard name lookup failed for %s: %v", entry.IdentityID, err)
		} else {
			name = identity.DisplayName
		}

		resp.Entries[i] = dto.LeaderboardEntryDTO{
			IdentityID:  entry.IdentityID,
			DisplayName: name,
			Score:       entry.Score,
			Rank:        entry.Rank,
		}
	}

	return resp, nil
}
