package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/learnhq/backend/internal/api/dto"
	"github.com/learnhq/backend/internal/models"
)

// ==============================================
// DEPENDENCY INTERFACES (for testing)
// ==============================================

type ProgressRepositoryInterface interface {
	Upsert(ctx context.Context, p *models.TopicProgress) error
	ListByIdentity(ctx context.Context, identityID string, limit int) ([]models.TopicProgress, error)
}

// ==============================================
// TOPIC ID DERIVATION
// ==============================================

var topicIDSeparators = regexp.MustCompile(`\s+`)

// DeriveTopicID builds the deterministic topic key: each segment is
// lowercased, trimmed, and space-collapsed to hyphens, then the three
// segments are joined with underscores. Same names, same id, always.
func DeriveTopicID(category, subcategory, topic string) string {
	segments := []string{category, subcategory, topic}
	for i, s := range segments {
		s = strings.ToLower(strings.TrimSpace(s))
		segments[i] = topicIDSeparators.ReplaceAllString(s, "-")
	}
	return strings.Join(segments, "_")
}

// ==============================================
// PROGRESS SERVICE
// ==============================================

const defaultProgressListLimit = 50

type ProgressService struct {
	progressRepo ProgressRepositoryInterface
}

func NewProgressService(progressRepo ProgressRepositoryInterface) *ProgressService {
	return &ProgressService{progressRepo: progressRepo}
}

// RecordSession stores the outcome of a completed practice or test session.
func (s *ProgressService) RecordSession(ctx context.Context, identityID string, req dto.UpsertProgressRequest) (*dto.ProgressDTO, error) {
	progress := &models.TopicProgress{
		IdentityID:  identityID,
		TopicID:     DeriveTopicID(req.Category, req.Subcategory, req.Topic),
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Topic:       req.Topic,
		ProgressPct: clampPct(req.ProgressPct),
		BestScore:   req.Score,
		Difficulty:  req.Difficulty,
	}

	if err := s.progressRepo.Upsert(ctx, progress); err != nil {
		return nil, err
	}

	return progressToDTO(progress), nil
}

// ListOngoing returns the user's progress records, most recent first.
func (s *ProgressService) ListOngoing(ctx context.Context, identityID string) (*dto.ProgressListResponse, error) {
	items, err := s.progressRepo.ListByIdentity(ctx, identityID, defaultProgressListLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProgressListResponse{Items: make([]dto.ProgressDTO, len(items))}
	for i := range items {
		resp.Items[i] = *progressToDTO(&items[i])
	}
	return resp, nil
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func progressToDTO(p *models.TopicProgress) *dto.ProgressDTO {
	return &dto.ProgressDTO{
		TopicID:     p.TopicID,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Topic:       p.Topic,
		ProgressPct: p.ProgressPct,
		BestScore:   p.BestScore,
		Difficulty:  p.Difficulty,
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}
