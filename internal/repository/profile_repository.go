package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learnhq/backend/internal/models"
)

// ==============================================
// ERRORS
// ==============================================

var ErrProfileNotFound = errors.New("profile not found")

// ==============================================
// PROFILE REPOSITORY
// ==============================================

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, identityID string) (*models.UserProfile, error) {
	query := `
		SELECT identity_id, xp, coins, streaks, study_hours, last_login_at
		FROM user_profiles
		WHERE identity_id = $1
	`

	var profile models.UserProfile
	err := r.db.QueryRow(ctx, query, identityID).Scan(
		&profile.IdentityID,
		&profile.XP,
		&profile.Coins,
		&profile.Streaks,
		&profile.StudyHours,
		&profile.LastLoginAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// UpdateLastLogin refreshes the login timestamp on a successful sign-in.
func (r *ProfileRepository) UpdateLastLogin(ctx context.Context, identityID string) error {
	query := `
		UPDATE user_profiles
		SET last_login_at = NOW()
		WHERE identity_id = $1
	`

	tag, err := r.db.Exec(ctx, query, identityID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// AddStats applies gameplay rewards and returns the updated profile. Streak
// extension is an increment; all counters stay non-negative by construction.
func (r *ProfileRepository) AddStats(ctx context.Context, identityID string, xp, coins, studyHours int, extendStreak bool) (*models.UserProfile, error) {
	streakDelta := 0
	if extendStreak {
		streakDelta = 1
	}

	query := `
		UPDATE user_profiles
		SET xp = xp + $2,
		    coins = coins + $3,
		    study_hours = study_hours + $4,
		    streaks = streaks + $5
		WHERE identity_id = $1
		RETURNING identity_id, xp, coins, streaks, study_hours, last_login_at
	`

	var profile models.UserProfile
	err := r.db.QueryRow(ctx, query, identityID, xp, coins, studyHours, streakDelta).Scan(
		&profile.IdentityID,
		&profile.XP,
		&profile.Coins,
		&profile.Streaks,
		&profile.StudyHours,
		&profile.LastLoginAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}

	return &profile, nil
}
