package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/RubachokBoss/learnbook/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Catalog serves one append-only content collection.
type Catalog[T any, F any] struct {
	name     string
	repo     repository.CatalogRepository[T, F]
	validate func(*T) error
	stamp    func(rec *T, id string, at time.Time)
	logger   zerolog.Logger
}

func (c *Catalog[T, F]) Name() string {
	return c.name
}

func (c *Catalog[T, F]) List(ctx context.Context, filter F) ([]T, error) {
	records, err := c.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.name, err)
	}
	return records, nil
}

func (c *Catalog[T, F]) Create(ctx context.Context, record *T) (*T, error) {
	if err := c.validate(record); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	c.stamp(record, id, time.Now().UTC())

	if err := c.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", c.name, err)
	}

	c.logger.Info().
		Str("catalog", c.name).
		Str("id", id).
		Msg("Catalog record created")

	return record, nil
}

type Catalogs struct {
	TutorScripts   *Catalog[models.TutorScript, models.TutorScriptFilter]
	CodingProblems *Catalog[models.CodingProblem, models.CodingProblemFilter]
	ARProblems     *Catalog[models.ARProblem, models.ARProblemFilter]
	Stories        *Catalog[models.Story, models.StoryFilter]
	VoiceQuizzes   *Catalog[models.VoiceQuiz, models.VoiceQuizFilter]
}

func NewCatalogs(store *repository.Store, logger zerolog.Logger) *Catalogs {
	return &Catalogs{
		TutorScripts: &Catalog[models.TutorScript, models.TutorScriptFilter]{
			name: "tutor script",
			repo: store.TutorScripts,
			validate: func(s *models.TutorScript) error {
				return firstErr(
					required("tone", s.Tone),
					required("subject", s.Subject),
					required("script", s.Script),
					nonNegative("grade", s.Grade),
				)
			},
			stamp:  func(s *models.TutorScript, id string, at time.Time) { s.ID, s.CreatedAt = id, at },
			logger: logger,
		},
		CodingProblems: &Catalog[models.CodingProblem, models.CodingProblemFilter]{
			name: "coding problem",
			repo: store.CodingProblems,
			validate: func(p *models.CodingProblem) error {
				return firstErr(
					required("title", p.Title),
					required("language", p.Language),
					required("difficulty", p.Difficulty),
				)
			},
			stamp:  func(p *models.CodingProblem, id string, at time.Time) { p.ID, p.CreatedAt = id, at },
			logger: logger,
		},
		ARProblems: &Catalog[models.ARProblem, models.ARProblemFilter]{
			name: "AR problem",
			repo: store.ARProblems,
			validate: func(p *models.ARProblem) error {
				return firstErr(
					required("subject", p.Subject),
					required("question", p.Question),
					required("answer", p.Answer),
					nonNegative("grade", p.Grade),
				)
			},
			stamp:  func(p *models.ARProblem, id string, at time.Time) { p.ID, p.CreatedAt = id, at },
			logger: logger,
		},
		Stories: &Catalog[models.Story, models.StoryFilter]{
			name: "story",
			repo: store.Stories,
			validate: func(s *models.Story) error {
				return firstErr(
					required("title", s.Title),
					required("content", s.Content),
					required("language", s.Language),
					nonNegative("grade_level", s.GradeLevel),
				)
			},
			stamp:  func(s *models.Story, id string, at time.Time) { s.ID, s.CreatedAt = id, at },
			logger: logger,
		},
		VoiceQuizzes: &Catalog[models.VoiceQuiz, models.VoiceQuizFilter]{
			name: "voice quiz",
			repo: store.VoiceQuizzes,
			validate: func(q *models.VoiceQuiz) error {
				return firstErr(
					required("question", q.Question),
					required("answer", q.Answer),
					required("language", q.Language),
				)
			},
			stamp:  func(q *models.VoiceQuiz, id string, at time.Time) { q.ID, q.CreatedAt = id, at },
			logger: logger,
		},
	}
}
