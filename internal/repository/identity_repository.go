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

var (
	ErrIdentityNotFound = errors.New("identity not found")
	ErrMappingNotFound  = errors.New("phone mapping not found")
)

// ==============================================
// IDENTITY REPOSITORY
// ==============================================

type IdentityRepository struct {
	db *pgxpool.Pool
}

func NewIdentityRepository(db *pgxpool.Pool) *IdentityRepository {
	return &IdentityRepository{db: db}
}

// ==============================================
// LOOKUPS
// ==============================================

func (r *IdentityRepository) GetIdentityByID(ctx context.Context, id string) (*models.Identity, error) {
	query := `
		SELECT id, display_name, credential_hash, created_at, updated_at
		FROM identities
		WHERE id = $1
	`

	var identity models.Identity
	err := r.db.QueryRow(ctx, query, id).Scan(
		&identity.ID,
		&identity.DisplayName,
		&identity.CredentialHash,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return &identity, nil
}

// GetMappingByPhone looks up the phone-to-identity mapping. The phone key is
// the normalized, country-code-prefixed number.
func (r *IdentityRepository) GetMappingByPhone(ctx context.Context, phone string) (*models.PhoneMapping, error) {
	query := `
		SELECT phone, identity_id, created_at, updated_at
		FROM phone_mappings
		WHERE phone = $1
	`

	var mapping models.PhoneMapping
	err := r.db.QueryRow(ctx, query, phone).Scan(
		&mapping.Phone,
		&mapping.IdentityID,
		&mapping.CreatedAt,
		&mapping.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to get phone mapping: %w", err)
	}

	return &mapping, nil
}

// ==============================================
// REGISTRATION
// ==============================================

// RegisterIdentity provisions a new identity atomically: the identity row,
// its phone mapping, and the default profile are created in one transaction.
// Either all three exist afterwards or none do.
func (r *IdentityRepository) RegisterIdentity(ctx context.Context, identity *models.Identity, phone string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	identityQuery := `
		INSERT INTO identities (id, display_name, credential_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRow(ctx, identityQuery,
		identity.ID,
		identity.DisplayName,
		identity.CredentialHash,
	).Scan(&identity.CreatedAt, &identity.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}

	mappingQuery := `
		INSERT INTO phone_mappings (phone, identity_id)
		VALUES ($1, $2)
	`
	if _, err := tx.Exec(ctx, mappingQuery, phone, identity.ID); err != nil {
		return fmt.Errorf("failed to create phone mapping: %w", err)
	}

	profileQuery := `
		INSERT INTO user_profiles (identity_id, xp, coins, streaks, study_hours, last_login_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err = tx.Exec(ctx, profileQuery,
		identity.ID,
		models.DefaultXP,
		models.DefaultCoins,
		models.DefaultStreak,
		models.DefaultHours,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit registration: %w", err)
	}

	return nil
}
