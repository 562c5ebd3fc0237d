package httpd

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/RubachokBoss/learnbook/internal/repository/memory"
	"github.com/RubachokBoss/learnbook/internal/service"
	"github.com/RubachokBoss/learnbook/internal/service/integration"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	log := zerolog.Nop()
	pub := integration.NopPublisher{}

	h := NewHandler(
		service.NewLearnerService(store, pub, log),
		service.NewContentService(store, pub, log),
		service.NewCatalogs(store, log),
		service.NewSessionService(store, pub, log),
		store.Driver,
		log,
	)

	router := chi.NewRouter()
	h.RegisterRoutes(router)
	return router
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newRouter(t), http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[models.HealthResponse](t, rec)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "memory", health.Storage)
}

func TestPreferencesRoundTrip(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodGet, "/api/user-preferences/u1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"preferences not found"}`, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/user-preferences/u1", `{"user_id":"someone-else","preferred_subject":"science"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/user-preferences/u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	prefs := decode[models.UserPreferences](t, rec)
	assert.Equal(t, "u1", prefs.UserID)
	assert.Equal(t, "science", prefs.PreferredSubject)
	assert.Equal(t, 30, prefs.DailyGoalMinutes)
}

func TestMalformedBody(t *testing.T) {
	rec := do(t, newRouter(t), http.MethodPost, "/api/user-progress/u1", `{"subject":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
}

func TestValidationFailure(t *testing.T) {
	rec := do(t, newRouter(t), http.MethodPost, "/api/user-achievements/u1", `{"title":"Streak"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"achievement_type is required"}`, rec.Body.String())
}

func TestProgressQueryFilters(t *testing.T) {
	router := newRouter(t)

	for _, body := range []string{
		`{"subject":"math","grade":3,"problems_attempted":5}`,
		`{"subject":"math","grade":4}`,
		`{"subject":"art","grade":3}`,
	} {
		rec := do(t, router, http.MethodPost, "/api/user-progress/u1", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := do(t, router, http.MethodGet, "/api/user-progress/u1?subject=math&grade=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decode[[]models.UserProgress](t, rec)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].ProblemsAttempted)

	rec = do(t, router, http.MethodGet, "/api/user-progress/u1?grade=abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"grade must be an integer"}`, rec.Body.String())
}

func TestSharedContentCounters(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodPost, "/api/shared-content", `{"user_id":"u1","content_type":"note","title":"Fractions","views":50}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	shared := decode[models.SharedContent](t, rec)
	assert.Zero(t, shared.Views)

	rec = do(t, router, http.MethodPost, "/api/shared-content/"+shared.ID+"/view", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[models.SharedContent](t, rec).Views)

	rec = do(t, router, http.MethodPost, "/api/shared-content/missing/like", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/shared-content?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.SharedContent](t, rec), 1)
}

func TestCatalogRoutes(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodGet, "/api/stories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/stories", `{"title":"The Fox","content":"Once","language":"en","grade_level":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = do(t, router, http.MethodPost, "/api/stories", `{"title":"Le Renard","content":"Il","language":"fr","grade_level":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/stories?language=en&gradeLevel=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stories := decode[[]models.Story](t, rec)
	require.Len(t, stories, 1)
	assert.Equal(t, "The Fox", stories[0].Title)

	rec = do(t, router, http.MethodPost, "/api/coding-problems", `{"title":"FizzBuzz","language":"go","difficulty":"easy","test_cases":[{"in":3,"out":"Fizz"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/coding-problems?difficulty=easy", "")
	require.Equal(t, http.StatusOK, rec.Code)
	problems := decode[[]models.CodingProblem](t, rec)
	require.Len(t, problems, 1)
	assert.JSONEq(t, `[{"in":3,"out":"Fizz"}]`, string(problems[0].TestCases))

	rec = do(t, router, http.MethodGet, "/api/tutor-scripts?grade=three", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionEndpoints(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodPost, "/api/collaborative-sessions", `{"session_id":"abc","creator_id":"u1","title":"Pairing"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/collaborative-sessions", `{"session_id":"abc","creator_id":"u2"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/collaborative-sessions/abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	session := decode[models.CollaborativeSession](t, rec)
	assert.Equal(t, "abc", session.SessionID)
	assert.True(t, session.IsActive)

	rec = do(t, router, http.MethodPatch, "/api/collaborative-sessions/abc", `{"code":"x := 1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	session = decode[models.CollaborativeSession](t, rec)
	assert.Equal(t, "x := 1", session.Code)
	assert.Equal(t, "Pairing", session.Title)

	rec = do(t, router, http.MethodPut, "/api/collaborative-sessions/abc", `{"is_active":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[models.CollaborativeSession](t, rec).IsActive)

	rec = do(t, router, http.MethodPost, "/api/collaborative-sessions/abc/participants", `{"user_id":"u2","user_name":"Sam"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/collaborative-sessions/abc/participants", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Participant](t, rec), 1)

	rec = do(t, router, http.MethodPost, "/api/collaborative-sessions/abc/messages", `{"user_id":"u2","message":"hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/collaborative-sessions/abc/messages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	messages := decode[[]models.ChatMessage](t, rec)
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].Message)
}

func TestUnknownSessionChildren(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodPost, "/api/collaborative-sessions/nope/participants", `{"user_id":"u2"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"session not found"}`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/collaborative-sessions/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEscapedPathParams(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodPost, "/api/user-preferences/class%2F7", `{"preferred_subject":"art"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "class/7", decode[models.UserPreferences](t, rec).UserID)

	rec = do(t, router, http.MethodGet, "/api/user-preferences/class%2F7", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "art", decode[models.UserPreferences](t, rec).PreferredSubject)

	rec = do(t, router, http.MethodPost, "/api/collaborative-sessions", `{"session_id":"team/a","creator_id":"u1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/collaborative-sessions/team%2Fa/messages", `{"user_id":"u1","message":"hi"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "team/a", decode[models.ChatMessage](t, rec).SessionID)
}

func TestLiteralPercentInPathParam(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodPost, "/api/user-preferences/a%2541", `{}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "a%41", decode[models.UserPreferences](t, rec).UserID)
}
