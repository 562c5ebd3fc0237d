package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/RubachokBoss/learnbook/internal/repository"
	"github.com/RubachokBoss/learnbook/internal/service/integration"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultSharedContentLimit = 20
	MaxSharedContentLimit     = 100
)

type ContentService interface {
	ListShared(ctx context.Context, limit int) ([]models.SharedContent, error)
	Share(ctx context.Context, content *models.SharedContent) (*models.SharedContent, error)
	RecordView(ctx context.Context, id string) (*models.SharedContent, error)
	RecordLike(ctx context.Context, id string) (*models.SharedContent, error)
}

type contentService struct {
	repo      repository.SharedContentRepository
	publisher integration.EventPublisher
	logger    zerolog.Logger
}

func NewContentService(store *repository.Store, publisher integration.EventPublisher, logger zerolog.Logger) ContentService {
	return &contentService{
		repo:      store.SharedContent,
		publisher: publisher,
		logger:    logger,
	}
}

// ClampLimit maps a requested page size onto [1, MaxSharedContentLimit];
// non-positive values select the default.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultSharedContentLimit
	case limit > MaxSharedContentLimit:
		return MaxSharedContentLimit
	default:
		return limit
	}
}

func (s *contentService) ListShared(ctx context.Context, limit int) ([]models.SharedContent, error) {
	items, err := s.repo.List(ctx, ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list shared content: %w", err)
	}
	return items, nil
}

func (s *contentService) Share(ctx context.Context, c *models.SharedContent) (*models.SharedContent, error) {
	err := firstErr(
		required("user_id", c.UserID),
		required("content_type", c.ContentType),
		required("title", c.Title),
	)
	if err != nil {
		return nil, err
	}

	c.ID = uuid.New().String()
	c.Views = 0
	c.Likes = 0
	c.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to share content: %w", err)
	}

	s.logger.Info().
		Str("content_id", c.ID).
		Str("user_id", c.UserID).
		Str("content_type", c.ContentType).
		Msg("Content shared")

	publish(ctx, s.publisher, s.logger, models.Event{
		Type:     models.EventContentShared,
		EntityID: c.ID,
		UserID:   c.UserID,
	})

	return c, nil
}

func (s *contentService) RecordView(ctx context.Context, id string) (*models.SharedContent, error) {
	c, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to record view: %w", err)
	}
	if c == nil {
		return nil, ErrContentNotFound
	}
	return c, nil
}

func (s *contentService) RecordLike(ctx context.Context, id string) (*models.SharedContent, error) {
	c, err := s.repo.IncrementLikes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to record like: %w", err)
	}
	if c == nil {
		return nil, ErrContentNotFound
	}
	return c, nil
}
