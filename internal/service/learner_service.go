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

// Values used for preference fields a client leaves unset.
const (
	DefaultSubject          = "math"
	DefaultDifficulty       = 2
	DefaultLanguage         = "en"
	DefaultLearningStyle    = "visual"
	DefaultDailyGoalMinutes = 30
)

type LearnerService interface {
	GetPreferences(ctx context.Context, userID string) (*models.UserPreferences, error)
	SavePreferences(ctx context.Context, prefs *models.UserPreferences) (*models.UserPreferences, error)
	ListProgress(ctx context.Context, userID string, filter models.ProgressFilter) ([]models.UserProgress, error)
	SaveProgress(ctx context.Context, progress *models.UserProgress) (*models.UserProgress, error)
	ListAchievements(ctx context.Context, userID string) ([]models.Achievement, error)
	AwardAchievement(ctx context.Context, achievement *models.Achievement) (*models.Achievement, error)
}

type learnerService struct {
	preferences  repository.PreferencesRepository
	progress     repository.ProgressRepository
	achievements repository.AchievementRepository
	publisher    integration.EventPublisher
	logger       zerolog.Logger
}

func NewLearnerService(store *repository.Store, publisher integration.EventPublisher, logger zerolog.Logger) LearnerService {
	return &learnerService{
		preferences:  store.Preferences,
		progress:     store.Progress,
		achievements: store.Achievements,
		publisher:    publisher,
		logger:       logger,
	}
}

func (s *learnerService) GetPreferences(ctx context.Context, userID string) (*models.UserPreferences, error) {
	prefs, err := s.preferences.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	if prefs == nil {
		return nil, ErrPreferencesNotFound
	}
	return prefs, nil
}

func (s *learnerService) SavePreferences(ctx context.Context, prefs *models.UserPreferences) (*models.UserPreferences, error) {
	err := firstErr(
		required("user_id", prefs.UserID),
		nonNegative("preferred_difficulty", prefs.PreferredDifficulty),
		nonNegative("daily_goal_minutes", prefs.DailyGoalMinutes),
	)
	if err != nil {
		return nil, err
	}

	applyPreferenceDefaults(prefs)
	if prefs.ID == "" {
		prefs.ID = uuid.New().String()
	}
	prefs.UpdatedAt = time.Now().UTC()

	if err := s.preferences.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	s.logger.Info().
		Str("user_id", prefs.UserID).
		Msg("Preferences saved")

	return prefs, nil
}

func applyPreferenceDefaults(p *models.UserPreferences) {
	if p.PreferredSubject == "" {
		p.PreferredSubject = DefaultSubject
	}
	if p.PreferredDifficulty == 0 {
		p.PreferredDifficulty = DefaultDifficulty
	}
	if p.PreferredLanguage == "" {
		p.PreferredLanguage = DefaultLanguage
	}
	if p.LearningStyle == "" {
		p.LearningStyle = DefaultLearningStyle
	}
	if p.DailyGoalMinutes == 0 {
		p.DailyGoalMinutes = DefaultDailyGoalMinutes
	}
}

func (s *learnerService) ListProgress(ctx context.Context, userID string, filter models.ProgressFilter) ([]models.UserProgress, error) {
	progress, err := s.progress.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	return progress, nil
}

func (s *learnerService) SaveProgress(ctx context.Context, p *models.UserProgress) (*models.UserProgress, error) {
	err := firstErr(
		required("user_id", p.UserID),
		required("subject", p.Subject),
		nonNegative("grade", p.Grade),
		nonNegative("problems_attempted", p.ProblemsAttempted),
		nonNegative("problems_correct", p.ProblemsCorrect),
		nonNegative("current_streak", p.CurrentStreak),
	)
	if err != nil {
		return nil, err
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.progress.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	s.logger.Info().
		Str("user_id", p.UserID).
		Str("subject", p.Subject).
		Int("grade", p.Grade).
		Msg("Progress saved")

	return p, nil
}

func (s *learnerService) ListAchievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	achievements, err := s.achievements.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return achievements, nil
}

func (s *learnerService) AwardAchievement(ctx context.Context, a *models.Achievement) (*models.Achievement, error) {
	err := firstErr(
		required("user_id", a.UserID),
		required("achievement_type", a.AchievementType),
		required("title", a.Title),
	)
	if err != nil {
		return nil, err
	}

	a.ID = uuid.New().String()
	if a.EarnedAt.IsZero() {
		a.EarnedAt = time.Now().UTC()
	}

	if err := s.achievements.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to award achievement: %w", err)
	}

	s.logger.Info().
		Str("user_id", a.UserID).
		Str("achievement_type", a.AchievementType).
		Msg("Achievement awarded")

	publish(ctx, s.publisher, s.logger, models.Event{
		Type:     models.EventAchievementAwarded,
		EntityID: a.ID,
		UserID:   a.UserID,
	})

	return a, nil
}
