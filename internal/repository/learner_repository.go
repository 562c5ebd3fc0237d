package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/RubachokBoss/learnbook/internal/models"
)

type preferencesRepository struct {
	*PostgresRepository
}

func (r *preferencesRepository) GetByUserID(ctx context.Context, userID string) (*models.UserPreferences, error) {
	query := `
		SELECT id, user_id, preferred_subject, preferred_difficulty, preferred_language,
		       learning_style, daily_goal_minutes, updated_at
		FROM user_preferences
		WHERE user_id = $1
	`

	prefs := &models.UserPreferences{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&prefs.ID,
		&prefs.UserID,
		&prefs.PreferredSubject,
		&prefs.PreferredDifficulty,
		&prefs.PreferredLanguage,
		&prefs.LearningStyle,
		&prefs.DailyGoalMinutes,
		&prefs.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return prefs, nil
}

// Upsert keeps the existing row id for a user and writes it back into prefs.
func (r *preferencesRepository) Upsert(ctx context.Context, prefs *models.UserPreferences) error {
	query := `
		INSERT INTO user_preferences (id, user_id, preferred_subject, preferred_difficulty,
		                              preferred_language, learning_style, daily_goal_minutes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			preferred_subject    = EXCLUDED.preferred_subject,
			preferred_difficulty = EXCLUDED.preferred_difficulty,
			preferred_language   = EXCLUDED.preferred_language,
			learning_style       = EXCLUDED.learning_style,
			daily_goal_minutes   = EXCLUDED.daily_goal_minutes,
			updated_at           = EXCLUDED.updated_at
		RETURNING id
	`

	return r.db.QueryRowContext(ctx, query,
		prefs.ID,
		prefs.UserID,
		prefs.PreferredSubject,
		prefs.PreferredDifficulty,
		prefs.PreferredLanguage,
		prefs.LearningStyle,
		prefs.DailyGoalMinutes,
		prefs.UpdatedAt,
	).Scan(&prefs.ID)
}

type progressRepository struct {
	*PostgresRepository
}

func (r *progressRepository) List(ctx context.Context, userID string, filter models.ProgressFilter) ([]models.UserProgress, error) {
	var c conditions
	c.eq("user_id", userID)
	c.str("subject", filter.Subject)
	c.int("grade", filter.Grade)

	query := `
		SELECT id, user_id, subject, grade, problems_attempted, problems_correct,
		       current_streak, updated_at
		FROM user_progress` + c.where() + `
		ORDER BY subject, grade
	`

	rows, err := r.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	progress := []models.UserProgress{}
	for rows.Next() {
		var p models.UserProgress
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Subject,
			&p.Grade,
			&p.ProblemsAttempted,
			&p.ProblemsCorrect,
			&p.CurrentStreak,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}

	return progress, rows.Err()
}

func (r *progressRepository) Upsert(ctx context.Context, p *models.UserProgress) error {
	query := `
		INSERT INTO user_progress (id, user_id, subject, grade, problems_attempted,
		                           problems_correct, current_streak, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, subject, grade) DO UPDATE SET
			problems_attempted = EXCLUDED.problems_attempted,
			problems_correct   = EXCLUDED.problems_correct,
			current_streak     = EXCLUDED.current_streak,
			updated_at         = EXCLUDED.updated_at
		RETURNING id
	`

	return r.db.QueryRowContext(ctx, query,
		p.ID,
		p.UserID,
		p.Subject,
		p.Grade,
		p.ProblemsAttempted,
		p.ProblemsCorrect,
		p.CurrentStreak,
		p.UpdatedAt,
	).Scan(&p.ID)
}

type achievementRepository struct {
	*PostgresRepository
}

func (r *achievementRepository) ListByUser(ctx context.Context, userID string) ([]models.Achievement, error) {
	query := `
		SELECT id, user_id, achievement_type, title, description, metadata, earned_at
		FROM user_achievements
		WHERE user_id = $1
		ORDER BY earned_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := []models.Achievement{}
	for rows.Next() {
		var a models.Achievement
		var metadata []byte
		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.AchievementType,
			&a.Title,
			&a.Description,
			&metadata,
			&a.EarnedAt,
		)
		if err != nil {
			return nil, err
		}
		a.Metadata = metadata
		achievements = append(achievements, a)
	}

	return achievements, rows.Err()
}

func (r *achievementRepository) Create(ctx context.Context, a *models.Achievement) error {
	query := `
		INSERT INTO user_achievements (id, user_id, achievement_type, title, description, metadata, earned_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.AchievementType,
		a.Title,
		a.Description,
		jsonArg(a.Metadata),
		a.EarnedAt,
	)

	return err
}
