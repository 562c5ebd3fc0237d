package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RubachokBoss/learnbook/internal/models"
)

type sessionRepository struct {
	*PostgresRepository
}

const sessionColumns = `id, session_id, creator_id, title, language, code, is_active, created_at, updated_at`

func scanSession(row interface{ Scan(...any) error }) (*models.CollaborativeSession, error) {
	s := &models.CollaborativeSession{}
	err := row.Scan(
		&s.ID,
		&s.SessionID,
		&s.CreatorID,
		&s.Title,
		&s.Language,
		&s.Code,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) Create(ctx context.Context, s *models.CollaborativeSession) error {
	query := `
		INSERT INTO collaborative_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.SessionID,
		s.CreatorID,
		s.Title,
		s.Language,
		s.Code,
		s.IsActive,
		s.CreatedAt,
		s.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}

	return err
}

func (r *sessionRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.CollaborativeSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM collaborative_sessions WHERE session_id = $1`
	return scanSession(r.db.QueryRowContext(ctx, query, sessionID))
}

// Update writes only the non-nil fields of patch.
func (r *sessionRepository) Update(ctx context.Context, sessionID string, patch models.SessionPatch, updatedAt time.Time) (*models.CollaborativeSession, error) {
	sets := []string{"updated_at = $1"}
	args := []any{updatedAt}

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Language != nil {
		set("language", *patch.Language)
	}
	if patch.Code != nil {
		set("code", *patch.Code)
	}
	if patch.IsActive != nil {
		set("is_active", *patch.IsActive)
	}

	args = append(args, sessionID)
	query := fmt.Sprintf(
		`UPDATE collaborative_sessions SET %s WHERE session_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), sessionColumns,
	)

	return scanSession(r.db.QueryRowContext(ctx, query, args...))
}

type participantRepository struct {
	*PostgresRepository
}

func (r *participantRepository) ListBySession(ctx context.Context, sessionID string) ([]models.Participant, error) {
	query := `
		SELECT id, session_id, user_id, user_name, joined_at
		FROM session_participants
		WHERE session_id = $1
		ORDER BY joined_at
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.SessionID, &p.UserID, &p.UserName, &p.JoinedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}

	return participants, rows.Err()
}

func (r *participantRepository) Create(ctx context.Context, p *models.Participant) error {
	query := `
		INSERT INTO session_participants (id, session_id, user_id, user_name, joined_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query, p.ID, p.SessionID, p.UserID, p.UserName, p.JoinedAt)
	return err
}

type messageRepository struct {
	*PostgresRepository
}

func (r *messageRepository) ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	query := `
		SELECT id, session_id, user_id, user_name, message, created_at
		FROM session_messages
		WHERE session_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.UserID, &m.UserName, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (r *messageRepository) Create(ctx context.Context, m *models.ChatMessage) error {
	query := `
		INSERT INTO session_messages (id, session_id, user_id, user_name, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query, m.ID, m.SessionID, m.UserID, m.UserName, m.Message, m.CreatedAt)
	return err
}
