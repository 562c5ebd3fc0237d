package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RubachokBoss/learnbook/internal/config"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPostgresRepository(db *sql.DB, logger zerolog.Logger) *PostgresRepository {
	return &PostgresRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}

// NewPostgresStore wires every repository to db.
func NewPostgresStore(db *sql.DB, logger zerolog.Logger) *Store {
	base := NewPostgresRepository(db, logger)

	return &Store{
		Driver:         config.StorageDriverPostgres,
		Preferences:    &preferencesRepository{base},
		Progress:       &progressRepository{base},
		Achievements:   &achievementRepository{base},
		SharedContent:  &sharedContentRepository{base},
		TutorScripts:   &tutorScriptRepository{base},
		CodingProblems: &codingProblemRepository{base},
		ARProblems:     &arProblemRepository{base},
		Stories:        &storyRepository{base},
		VoiceQuizzes:   &voiceQuizRepository{base},
		Sessions:       &sessionRepository{base},
		Participants:   &participantRepository{base},
		Messages:       &messageRepository{base},
		Ping:           base.Ping,
	}
}

// conditions accumulates "column = $n" clauses for optional filters.
type conditions struct {
	clauses []string
	args    []any
}

func (c *conditions) eq(column string, value any) {
	c.args = append(c.args, value)
	c.clauses = append(c.clauses, fmt.Sprintf("%s = $%d", column, len(c.args)))
}

func (c *conditions) str(column, value string) {
	if value != "" {
		c.eq(column, value)
	}
}

func (c *conditions) int(column string, value int) {
	if value != 0 {
		c.eq(column, value)
	}
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// jsonArg stores an empty document as NULL. lib/pq sends []byte as bytea, so
// JSONB values go over the wire as text.
func jsonArg(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
