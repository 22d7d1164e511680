package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhq/backend/internal/api/dto"
	"github.com/learnhq/backend/internal/models"
)

// ==============================================
// MOCK REPOSITORY
// ==============================================

type MockProgressRepository struct {
	UpsertFunc         func(ctx context.Context, p *models.TopicProgress) error
	ListByIdentityFunc func(ctx context.Context, identityID string, limit int) ([]models.TopicProgress, error)
}

func (m *MockProgressRepository) Upsert(ctx context.Context, p *models.TopicProgress) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, p)
	}
	return nil
}

func (m *MockProgressRepository) ListByIdentity(ctx context.Context, identityID string, limit int) ([]models.TopicProgress, error) {
	if m.ListByIdentityFunc != nil {
		return m.ListByIdentityFunc(ctx, identityID, limit)
	}
	return nil, nil
}

// ==============================================
// TOPIC ID DERIVATION
// ==============================================

func TestDeriveTopicID(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		subcategory string
		topic       string
		want        string
	}{
		{"simple", "Math", "Algebra", "Quadratics", "math_algebra_quadratics"},
		{"spaces collapse to hyphens", "Computer Science", "Data  Structures", "Binary Trees", "computer-science_data-structures_binary-trees"},
		{"surrounding whitespace trimmed", "  Math ", " Algebra", "Quadratics ", "math_algebra_quadratics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTopicID(tt.category, tt.subcategory, tt.topic))
		})
	}
}

func TestDeriveTopicID_Deterministic(t *testing.T) {
	a := DeriveTopicID("Science", "Physics", "Optics")
	b := DeriveTopicID("science", "PHYSICS", "optics")
	assert.Equal(t, a, b)
}

// ==============================================
// RECORD SESSION
// ==============================================

func TestRecordSession_ClampsProgress(t *testing.T) {
	var stored *models.TopicProgress
	repo := &MockProgressRepository{
		UpsertFunc: func(_ context.Context, p *models.TopicProgress) error {
			stored = p
			return nil
		},
	}
	svc := NewProgressService(repo)

	_, err := svc.RecordSession(context.Background(), "id-1", dto.UpsertProgressRequest{
		Category:    "Math",
		Subcategory: "Algebra",
		Topic:       "Quadratics",
		ProgressPct: 250,
		Score:       80,
		Difficulty:  "medium",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 100, stored.ProgressPct)
	assert.Equal(t, "math_algebra_quadratics", stored.TopicID)
	assert.Equal(t, "id-1", stored.IdentityID)
}
