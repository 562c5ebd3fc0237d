package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RubachokBoss/learnbook/internal/apiclient"
	"github.com/RubachokBoss/learnbook/internal/config"
	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, secret string) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.StorageDriverMemory},
		Auth:    config.AuthConfig{JWTSecret: secret},
		Server:  config.ServerConfig{RequestTimeout: 5 * time.Second},
	}

	application, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(application.Router())
	t.Cleanup(srv.Close)
	return srv
}

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestSessionCreateThenGetEndToEnd(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, "")
	client := apiclient.New(apiclient.Config{BaseURL: srv.URL})

	created, err := client.Sessions.Create(ctx, &models.CreateSessionRequest{SessionID: "abc", CreatorID: "u1"})
	require.NoError(t, err)

	got, err := client.Sessions.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "abc", got.SessionID)

	_, err = client.Participants.Join(ctx, "missing", &models.Participant{UserID: "u2"})
	require.Error(t, err)
	assert.Equal(t, "session not found", err.Error())
	assert.Equal(t, http.StatusNotFound, apiclient.StatusCode(err))
}

func TestBearerAuthGuardsAPI(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, "test-secret")

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	anonymous := apiclient.New(apiclient.Config{BaseURL: srv.URL})
	_, err = anonymous.Stories.List(ctx, models.StoryFilter{})
	require.Error(t, err)
	assert.Equal(t, "Unauthorized", err.Error())
	assert.Equal(t, http.StatusUnauthorized, apiclient.StatusCode(err))

	forged := apiclient.New(apiclient.Config{BaseURL: srv.URL, Token: signToken(t, "other-secret", "u1")})
	_, err = forged.Stories.List(ctx, models.StoryFilter{})
	assert.Equal(t, http.StatusUnauthorized, apiclient.StatusCode(err))

	authed := apiclient.New(apiclient.Config{BaseURL: srv.URL, Token: signToken(t, "test-secret", "u1")})
	stories, err := authed.Stories.List(ctx, models.StoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, stories)
}

func TestUnknownStorageDriverFailsValidation(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}}
	assert.Error(t, cfg.Validate())
}

func TestIdentifiersWithSlashRoundTrip(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, "")
	client := apiclient.New(apiclient.Config{BaseURL: srv.URL})

	_, err := client.Preferences.Save(ctx, &models.UserPreferences{UserID: "school/42", LearningStyle: "reading"})
	require.NoError(t, err)

	prefs, err := client.Preferences.Get(ctx, "school/42")
	require.NoError(t, err)
	assert.Equal(t, "school/42", prefs.UserID)
	assert.Equal(t, "reading", prefs.LearningStyle)

	_, err = client.Sessions.Create(ctx, &models.CreateSessionRequest{SessionID: "room/1", CreatorID: "u1"})
	require.NoError(t, err)

	joined, err := client.Participants.Join(ctx, "room/1", &models.Participant{UserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, "room/1", joined.SessionID)
}
