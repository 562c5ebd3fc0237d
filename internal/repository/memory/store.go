// Package memory is a process-local storage driver. Data is lost on restart;
// it backs development runs and tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/RubachokBoss/learnbook/internal/config"
	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/RubachokBoss/learnbook/internal/repository"
)

func NewStore() *repository.Store {
	return &repository.Store{
		Driver:         config.StorageDriverMemory,
		Preferences:    &preferences{rows: map[string]models.UserPreferences{}},
		Progress:       &progress{},
		Achievements:   &achievements{},
		SharedContent:  &sharedContent{},
		TutorScripts:   newCatalog(matchTutorScript),
		CodingProblems: newCatalog(matchCodingProblem),
		ARProblems:     newCatalog(matchARProblem),
		Stories:        newCatalog(matchStory),
		VoiceQuizzes:   newCatalog(matchVoiceQuiz),
		Sessions:       &sessions{rows: map[string]*models.CollaborativeSession{}},
		Participants:   &participants{},
		Messages:       &messages{},
		Ping:           func(context.Context) error { return nil },
	}
}

// table is an append-only list guarded by a mutex.
type table[T any] struct {
	mu   sync.RWMutex
	rows []T
}

func (t *table[T]) insert(v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, v)
}

// selectRows returns matching rows in insertion order, or newest first when
// reverse is set. The result is never nil.
func (t *table[T]) selectRows(keep func(T) bool, reverse bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := []T{}
	for _, v := range t.rows {
		if keep(v) {
			out = append(out, v)
		}
	}
	if reverse {
		slices.Reverse(out)
	}
	return out
}

type preferences struct {
	mu   sync.RWMutex
	rows map[string]models.UserPreferences
}

func (r *preferences) GetByUserID(_ context.Context, userID string) (*models.UserPreferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.rows[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *preferences) Upsert(_ context.Context, prefs *models.UserPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.rows[prefs.UserID]; ok {
		prefs.ID = existing.ID
	}
	r.rows[prefs.UserID] = *prefs
	return nil
}

type progress struct {
	table[models.UserProgress]
}

func (r *progress) List(_ context.Context, userID string, f models.ProgressFilter) ([]models.UserProgress, error) {
	out := r.selectRows(func(p models.UserProgress) bool {
		return p.UserID == userID &&
			(f.Subject == "" || p.Subject == f.Subject) &&
			(f.Grade == 0 || p.Grade == f.Grade)
	}, false)

	slices.SortFunc(out, func(a, b models.UserProgress) int {
		if a.Subject != b.Subject {
			if a.Subject < b.Subject {
				return -1
			}
			return 1
		}
		return a.Grade - b.Grade
	})
	return out, nil
}

func (r *progress) Upsert(_ context.Context, p *models.UserProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, row := range r.rows {
		if row.UserID == p.UserID && row.Subject == p.Subject && row.Grade == p.Grade {
			p.ID = row.ID
			r.rows[i] = *p
			return nil
		}
	}
	r.rows = append(r.rows, *p)
	return nil
}

type achievements struct {
	table[models.Achievement]
}

func (r *achievements) ListByUser(_ context.Context, userID string) ([]models.Achievement, error) {
	return r.selectRows(func(a models.Achievement) bool { return a.UserID == userID }, true), nil
}

func (r *achievements) Create(_ context.Context, a *models.Achievement) error {
	r.insert(*a)
	return nil
}

type sharedContent struct {
	table[models.SharedContent]
}

func (r *sharedContent) List(_ context.Context, limit int) ([]models.SharedContent, error) {
	out := r.selectRows(func(models.SharedContent) bool { return true }, true)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *sharedContent) Create(_ context.Context, c *models.SharedContent) error {
	r.insert(*c)
	return nil
}

func (r *sharedContent) IncrementViews(_ context.Context, id string) (*models.SharedContent, error) {
	return r.update(id, func(c *models.SharedContent) { c.Views++ }), nil
}

func (r *sharedContent) IncrementLikes(_ context.Context, id string) (*models.SharedContent, error) {
	return r.update(id, func(c *models.SharedContent) { c.Likes++ }), nil
}

func (r *sharedContent) update(id string, fn func(*models.SharedContent)) *models.SharedContent {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		if r.rows[i].ID == id {
			fn(&r.rows[i])
			c := r.rows[i]
			return &c
		}
	}
	return nil
}

type sessions struct {
	mu   sync.RWMutex
	rows map[string]*models.CollaborativeSession
}

func (r *sessions) Create(_ context.Context, s *models.CollaborativeSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[s.SessionID]; ok {
		return repository.ErrDuplicate
	}
	stored := *s
	r.rows[s.SessionID] = &stored
	return nil
}

func (r *sessions) GetBySessionID(_ context.Context, sessionID string) (*models.CollaborativeSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.rows[sessionID]
	if !ok {
		return nil, nil
	}
	out := *s
	return &out, nil
}

func (r *sessions) Update(_ context.Context, sessionID string, patch models.SessionPatch, updatedAt time.Time) (*models.CollaborativeSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.rows[sessionID]
	if !ok {
		return nil, nil
	}

	if patch.Title != nil {
		s.Title = *patch.Title
	}
	if patch.Language != nil {
		s.Language = *patch.Language
	}
	if patch.Code != nil {
		s.Code = *patch.Code
	}
	if patch.IsActive != nil {
		s.IsActive = *patch.IsActive
	}
	s.UpdatedAt = updatedAt

	out := *s
	return &out, nil
}

type participants struct {
	table[models.Participant]
}

func (r *participants) ListBySession(_ context.Context, sessionID string) ([]models.Participant, error) {
	return r.selectRows(func(p models.Participant) bool { return p.SessionID == sessionID }, false), nil
}

func (r *participants) Create(_ context.Context, p *models.Participant) error {
	r.insert(*p)
	return nil
}

type messages struct {
	table[models.ChatMessage]
}

func (r *messages) ListBySession(_ context.Context, sessionID string) ([]models.ChatMessage, error) {
	return r.selectRows(func(m models.ChatMessage) bool { return m.SessionID == sessionID }, false), nil
}

func (r *messages) Create(_ context.Context, m *models.ChatMessage) error {
	r.insert(*m)
	return nil
}
