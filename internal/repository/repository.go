package repository

import (
	"context"
	"errors"
	"time"

	"github.com/RubachokBoss/learnbook/internal/models"
)

// ErrDuplicate is returned when a unique key is already taken.
var ErrDuplicate = errors.New("duplicate key")

// Lookups return (nil, nil) when the row does not exist.

type PreferencesRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserPreferences, error)
	Upsert(ctx context.Context, prefs *models.UserPreferences) error
}

type ProgressRepository interface {
	List(ctx context.Context, userID string, filter models.ProgressFilter) ([]models.UserProgress, error)
	Upsert(ctx context.Context, progress *models.UserProgress) error
}

type AchievementRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Achievement, error)
	Create(ctx context.Context, achievement *models.Achievement) error
}

type SharedContentRepository interface {
	List(ctx context.Context, limit int) ([]models.SharedContent, error)
	Create(ctx context.Context, content *models.SharedContent) error
	IncrementViews(ctx context.Context, id string) (*models.SharedContent, error)
	IncrementLikes(ctx context.Context, id string) (*models.SharedContent, error)
}

// CatalogRepository stores append-only records read through filter F.
type CatalogRepository[T any, F any] interface {
	List(ctx context.Context, filter F) ([]T, error)
	Create(ctx context.Context, record *T) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.CollaborativeSession) error
	GetBySessionID(ctx context.Context, sessionID string) (*models.CollaborativeSession, error)
	Update(ctx context.Context, sessionID string, patch models.SessionPatch, updatedAt time.Time) (*models.CollaborativeSession, error)
}

type ParticipantRepository interface {
	ListBySession(ctx context.Context, sessionID string) ([]models.Participant, error)
	Create(ctx context.Context, participant *models.Participant) error
}

type MessageRepository interface {
	ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	Create(ctx context.Context, message *models.ChatMessage) error
}

// Store bundles every repository behind one storage driver.
type Store struct {
	Driver         string
	Preferences    PreferencesRepository
	Progress       ProgressRepository
	Achievements   AchievementRepository
	SharedContent  SharedContentRepository
	TutorScripts   CatalogRepository[models.TutorScript, models.TutorScriptFilter]
	CodingProblems CatalogRepository[models.CodingProblem, models.CodingProblemFilter]
	ARProblems     CatalogRepository[models.ARProblem, models.ARProblemFilter]
	Stories        CatalogRepository[models.Story, models.StoryFilter]
	VoiceQuizzes   CatalogRepository[models.VoiceQuiz, models.VoiceQuizFilter]
	Sessions       SessionRepository
	Participants   ParticipantRepository
	Messages       MessageRepository

	Ping func(ctx context.Context) error
}
