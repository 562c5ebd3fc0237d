package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/RubachokBoss/learnbook/internal/models"
)

type sharedContentRepository struct {
	*PostgresRepository
}

const sharedContentColumns = `id, user_id, content_type, title, content, views, likes, created_at`

func scanSharedContent(row interface{ Scan(...any) error }) (*models.SharedContent, error) {
	var c models.SharedContent
	var content []byte
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.ContentType,
		&c.Title,
		&content,
		&c.Views,
		&c.Likes,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Content = content
	return &c, nil
}

func (r *sharedContentRepository) List(ctx context.Context, limit int) ([]models.SharedContent, error) {
	query := `SELECT ` + sharedContentColumns + `
		FROM shared_content
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.SharedContent{}
	for rows.Next() {
		c, err := scanSharedContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}

	return items, rows.Err()
}

func (r *sharedContentRepository) Create(ctx context.Context, c *models.SharedContent) error {
	query := `
		INSERT INTO shared_content (id, user_id, content_type, title, content, views, likes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.ContentType,
		c.Title,
		jsonArg(c.Content),
		c.Views,
		c.Likes,
		c.CreatedAt,
	)

	return err
}

func (r *sharedContentRepository) IncrementViews(ctx context.Context, id string) (*models.SharedContent, error) {
	return r.increment(ctx, `UPDATE shared_content SET views = views + 1 WHERE id = $1 RETURNING `+sharedContentColumns, id)
}

func (r *sharedContentRepository) IncrementLikes(ctx context.Context, id string) (*models.SharedContent, error) {
	return r.increment(ctx, `UPDATE shared_content SET likes = likes + 1 WHERE id = $1 RETURNING `+sharedContentColumns, id)
}

func (r *sharedContentRepository) increment(ctx context.Context, query, id string) (*models.SharedContent, error) {
	c, err := scanSharedContent(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

type tutorScriptRepository struct {
	*PostgresRepository
}

func (r *tutorScriptRepository) List(ctx context.Context, f models.TutorScriptFilter) ([]models.TutorScript, error) {
	var c conditions
	c.str("tone", f.Tone)
	c.int("grade", f.Grade)
	c.str("subject", f.Subject)

	query := `SELECT id, title, tone, grade, subject, script, created_at
		FROM tutor_scripts` + c.where() + `
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scripts := []models.TutorScript{}
	for rows.Next() {
		var s models.TutorScript
		if err := rows.Scan(&s.ID, &s.Title, &s.Tone, &s.Grade, &s.Subject, &s.Script, &s.CreatedAt); err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}

	return scripts, rows.Err()
}

func (r *tutorScriptRepository) Create(ctx context.Context, s *models.TutorScript) error {
	query := `
		INSERT INTO tutor_scripts (id, title, tone, grade, subject, script, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query, s.ID, s.Title, s.Tone, s.Grade, s.Subject, s.Script, s.CreatedAt)
	return err
}

type codingProblemRepository struct {
	*PostgresRepository
}

func (r *codingProblemRepository) List(ctx context.Context, f models.CodingProblemFilter) ([]models.CodingProblem, error) {
	var c conditions
	c.str("language", f.Language)
	c.str("difficulty", f.Difficulty)

	query := `SELECT id, title, description, language, difficulty, starter_code, solution, test_cases, created_at
		FROM coding_problems` + c.where() + `
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	problems := []models.CodingProblem{}
	for rows.Next() {
		var p models.CodingProblem
		var testCases []byte
		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.Language,
			&p.Difficulty,
			&p.StarterCode,
			&p.Solution,
			&testCases,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		p.TestCases = testCases
		problems = append(problems, p)
	}

	return problems, rows.Err()
}

func (r *codingProblemRepository) Create(ctx context.Context, p *models.CodingProblem) error {
	query := `
		INSERT INTO coding_problems (id, title, description, language, difficulty, starter_code, solution, test_cases, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Title,
		p.Description,
		p.Language,
		p.Difficulty,
		p.StarterCode,
		p.Solution,
		jsonArg(p.TestCases),
		p.CreatedAt,
	)

	return err
}

type arProblemRepository struct {
	*PostgresRepository
}

func (r *arProblemRepository) List(ctx context.Context, f models.ARProblemFilter) ([]models.ARProblem, error) {
	var c conditions
	c.str("subject", f.Subject)
	c.int("grade", f.Grade)

	query := `SELECT id, subject, grade, question, answer, model_url, created_at
		FROM ar_problems` + c.where() + `
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	problems := []models.ARProblem{}
	for rows.Next() {
		var p models.ARProblem
		if err := rows.Scan(&p.ID, &p.Subject, &p.Grade, &p.Question, &p.Answer, &p.ModelURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}

	return problems, rows.Err()
}

func (r *arProblemRepository) Create(ctx context.Context, p *models.ARProblem) error {
	query := `
		INSERT INTO ar_problems (id, subject, grade, question, answer, model_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query, p.ID, p.Subject, p.Grade, p.Question, p.Answer, p.ModelURL, p.CreatedAt)
	return err
}

type storyRepository struct {
	*PostgresRepository
}

func (r *storyRepository) List(ctx context.Context, f models.StoryFilter) ([]models.Story, error) {
	var c conditions
	c.str("language", f.Language)
	c.int("grade_level", f.GradeLevel)

	query := `SELECT id, title, content, language, grade_level, created_at
		FROM stories` + c.where() + `
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stories := []models.Story{}
	for rows.Next() {
		var s models.Story
		if err := rows.Scan(&s.ID, &s.Title, &s.Content, &s.Language, &s.GradeLevel, &s.CreatedAt); err != nil {
			return nil, err
		}
		stories = append(stories, s)
	}

	return stories, rows.Err()
}

func (r *storyRepository) Create(ctx context.Context, s *models.Story) error {
	query := `
		INSERT INTO stories (id, title, content, language, grade_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query, s.ID, s.Title, s.Content, s.Language, s.GradeLevel, s.CreatedAt)
	return err
}

type voiceQuizRepository struct {
	*PostgresRepository
}

func (r *voiceQuizRepository) List(ctx context.Context, f models.VoiceQuizFilter) ([]models.VoiceQuiz, error) {
	var c conditions
	c.str("language", f.Language)
	c.str("difficulty", f.Difficulty)
	c.str("subject", f.Subject)

	query := `SELECT id, question, answer, options, language, difficulty, subject, created_at
		FROM voice_quizzes` + c.where() + `
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quizzes := []models.VoiceQuiz{}
	for rows.Next() {
		var q models.VoiceQuiz
		var options []byte
		err := rows.Scan(
			&q.ID,
			&q.Question,
			&q.Answer,
			&options,
			&q.Language,
			&q.Difficulty,
			&q.Subject,
			&q.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		q.Options = options
		quizzes = append(quizzes, q)
	}

	return quizzes, rows.Err()
}

func (r *voiceQuizRepository) Create(ctx context.Context, q *models.VoiceQuiz) error {
	query := `
		INSERT INTO voice_quizzes (id, question, answer, options, language, difficulty, subject, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		q.ID,
		q.Question,
		q.Answer,
		jsonArg(q.Options),
		q.Language,
		q.Difficulty,
		q.Subject,
		q.CreatedAt,
	)

	return err
}
