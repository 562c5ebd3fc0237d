package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/RubachokBoss/learnbook/internal/repository/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event *models.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultSharedContentLimit, ClampLimit(0))
	assert.Equal(t, DefaultSharedContentLimit, ClampLimit(-5))
	assert.Equal(t, 7, ClampLimit(7))
	assert.Equal(t, MaxSharedContentLimit, ClampLimit(1000))
}

func TestSavePreferencesFillsDefaultsAndKeepsID(t *testing.T) {
	ctx := context.Background()
	svc := NewLearnerService(memory.NewStore(), &recordingPublisher{}, zerolog.Nop())

	first, err := svc.SavePreferences(ctx, &models.UserPreferences{UserID: "u1", LearningStyle: "auditory"})
	require.NoError(t, err)
	assert.Equal(t, "math", first.PreferredSubject)
	assert.Equal(t, 2, first.PreferredDifficulty)
	assert.Equal(t, "auditory", first.LearningStyle)
	assert.Equal(t, 30, first.DailyGoalMinutes)

	second, err := svc.SavePreferences(ctx, &models.UserPreferences{UserID: "u1", PreferredSubject: "art"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := svc.GetPreferences(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "art", got.PreferredSubject)
}

func TestGetPreferencesNotFound(t *testing.T) {
	svc := NewLearnerService(memory.NewStore(), nil, zerolog.Nop())

	_, err := svc.GetPreferences(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "preferences not found", err.Error())
}

func TestValidationErrors(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	learner := NewLearnerService(store, nil, zerolog.Nop())
	content := NewContentService(store, nil, zerolog.Nop())
	catalogs := NewCatalogs(store, zerolog.Nop())

	_, err := learner.SavePreferences(ctx, &models.UserPreferences{})
	assertValidation(t, err, "user_id")

	_, err = learner.SaveProgress(ctx, &models.UserProgress{UserID: "u1", Subject: "math", ProblemsCorrect: -1})
	assertValidation(t, err, "problems_correct")

	_, err = learner.AwardAchievement(ctx, &models.Achievement{UserID: "u1", Title: "Streak"})
	assertValidation(t, err, "achievement_type")

	_, err = content.Share(ctx, &models.SharedContent{UserID: "u1", Title: "x"})
	assertValidation(t, err, "content_type")

	_, err = catalogs.Stories.Create(ctx, &models.Story{Title: "The Fox", Language: "en"})
	assertValidation(t, err, "content")
}

func assertValidation(t *testing.T, err error, field string) {
	t.Helper()

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "expected validation error, got %v", err)
	assert.Equal(t, field, validationErr.Field)
}

func TestProgressUpsertByKey(t *testing.T) {
	ctx := context.Background()
	svc := NewLearnerService(memory.NewStore(), nil, zerolog.Nop())

	_, err := svc.SaveProgress(ctx, &models.UserProgress{UserID: "u1", Subject: "math", Grade: 3, ProblemsAttempted: 4})
	require.NoError(t, err)
	_, err = svc.SaveProgress(ctx, &models.UserProgress{UserID: "u1", Subject: "math", Grade: 3, ProblemsAttempted: 9})
	require.NoError(t, err)
	_, err = svc.SaveProgress(ctx, &models.UserProgress{UserID: "u1", Subject: "art", Grade: 3})
	require.NoError(t, err)

	all, err := svc.ListProgress(ctx, "u1", models.ProgressFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	math, err := svc.ListProgress(ctx, "u1", models.ProgressFilter{Subject: "math"})
	require.NoError(t, err)
	require.Len(t, math, 1)
	assert.Equal(t, 9, math[0].ProblemsAttempted)
}

func TestShareIgnoresClientCounters(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := NewContentService(memory.NewStore(), pub, zerolog.Nop())

	shared, err := svc.Share(ctx, &models.SharedContent{UserID: "u1", ContentType: "note", Title: "Fractions", Views: 99, Likes: 5})
	require.NoError(t, err)
	assert.Zero(t, shared.Views)
	assert.Zero(t, shared.Likes)

	viewed, err := svc.RecordView(ctx, shared.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, viewed.Views)

	liked, err := svc.RecordLike(ctx, shared.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)
	assert.Equal(t, 1, liked.Views)

	_, err = svc.RecordLike(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{models.EventContentShared}, pub.types())
}

func TestListSharedHonoursLimit(t *testing.T) {
	ctx := context.Background()
	svc := NewContentService(memory.NewStore(), nil, zerolog.Nop())

	for _, title := range []string{"a", "b", "c"} {
		_, err := svc.Share(ctx, &models.SharedContent{UserID: "u1", ContentType: "note", Title: title})
		require.NoError(t, err)
	}

	items, err := svc.ListShared(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "c", items[0].Title)
	assert.Equal(t, "b", items[1].Title)
}

func TestCatalogFilters(t *testing.T) {
	ctx := context.Background()
	catalogs := NewCatalogs(memory.NewStore(), zerolog.Nop())

	for _, s := range []models.TutorScript{
		{Tone: "friendly", Grade: 3, Subject: "math", Script: "a"},
		{Tone: "friendly", Grade: 4, Subject: "math", Script: "b"},
		{Tone: "formal", Grade: 3, Subject: "math", Script: "c"},
	} {
		_, err := catalogs.TutorScripts.Create(ctx, &s)
		require.NoError(t, err)
	}

	got, err := catalogs.TutorScripts.List(ctx, models.TutorScriptFilter{Tone: "friendly", Grade: 3})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Script)
	assert.NotEmpty(t, got[0].ID)

	all, err := catalogs.TutorScripts.List(ctx, models.TutorScriptFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := NewSessionService(memory.NewStore(), pub, zerolog.Nop())

	session, err := svc.CreateSession(ctx, &models.CreateSessionRequest{SessionID: "abc", CreatorID: "u1"})
	require.NoError(t, err)
	assert.True(t, session.IsActive)
	assert.NotEmpty(t, session.ID)

	_, err = svc.CreateSession(ctx, &models.CreateSessionRequest{SessionID: "abc", CreatorID: "u2"})
	assert.ErrorIs(t, err, ErrConflict)

	inactive := false
	code := "fmt.Println()"
	updated, err := svc.UpdateSession(ctx, "abc", models.SessionPatch{IsActive: &inactive, Code: &code})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, code, updated.Code)
	assert.Empty(t, updated.Title)

	_, err = svc.Join(ctx, "abc", &models.Participant{UserID: "u2", UserName: "Sam"})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, "abc", &models.ChatMessage{UserID: "u2", Message: "first"})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, "abc", &models.ChatMessage{UserID: "u1", Message: "second"})
	require.NoError(t, err)

	messages, err := svc.ListMessages(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Message)
	assert.Equal(t, "abc", messages[0].SessionID)

	assert.Equal(t, []string{models.EventSessionCreated, models.EventMessageSent, models.EventMessageSent}, pub.types())
}

func TestCreateSessionGeneratesID(t *testing.T) {
	svc := NewSessionService(memory.NewStore(), nil, zerolog.Nop())

	session, err := svc.CreateSession(context.Background(), &models.CreateSessionRequest{CreatorID: "u1"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
}

func TestSessionChildrenRequireSession(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(memory.NewStore(), nil, zerolog.Nop())

	_, err := svc.Join(ctx, "missing", &models.Participant{UserID: "u2"})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.ListMessages(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.UpdateSession(ctx, "missing", models.SessionPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}
