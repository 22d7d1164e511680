package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learnhq/backend/internal/models"
)

// ==============================================
// ERRORS
// ==============================================

var ErrProgressNotFound = errors.New("topic progress not found")

// ==============================================
// PROGRESS REPOSITORY
// ==============================================

type ProgressRepository struct {
	db *pgxpool.Pool
}

func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Upsert records a completed practice/test session. Best score only ever
// goes up; progress and difficulty take the latest value.
func (r *ProgressRepository) Upsert(ctx context.Context, p *models.TopicProgress) error {
	query := `
		INSERT INTO topic_progress (
			identity_id, topic_id, category, subcategory, topic,
			progress_pct, best_score, difficulty, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (identity_id, topic_id) DO UPDATE
		SET progress_pct = EXCLUDED.progress_pct,
		    best_score   = GREATEST(topic_progress.best_score, EXCLUDED.best_score),
		    difficulty   = EXCLUDED.difficulty,
		    updated_at   = NOW()
		RETURNING best_score, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		p.IdentityID,
		p.TopicID,
		p.Category,
		p.Subcategory,
		p.Topic,
		p.ProgressPct,
		p.BestScore,
		p.Difficulty,
	).Scan(&p.BestScore, &p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert topic progress: %w", err)
	}

	return nil
}

// ListByIdentity returns the user's progress records, most recently updated
// first, for the "ongoing programs" view.
func (r *ProgressRepository) ListByIdentity(ctx context.Context, identityID string, limit int) ([]models.TopicProgress, error) {
	query := `
		SELECT identity_id, topic_id, category, subcategory, topic,
		       progress_pct, best_score, difficulty, updated_at
		FROM topic_progress
		WHERE identity_id = $1
		ORDER BY updated_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, identityID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list topic progress: %w", err)
	}
	defer rows.Close()

	var items []models.TopicProgress
	for rows.Next() {
		var p models.TopicProgress
		err := rows.Scan(
			&p.IdentityID,
			&p.TopicID,
			&p.Category,
			&p.Subcategory,
			&p.Topic,
			&p.ProgressPct,
			&p.BestScore,
			&p.Difficulty,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan topic progress: %w", err)
		}
		items = append(items, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read topic progress rows: %w", err)
	}

	return items, nil
}
