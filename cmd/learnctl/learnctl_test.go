package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/RubachokBoss/learnbook/internal/app"
	"github.com/RubachokBoss/learnbook/internal/config"
	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverMemory}}
	application, err := app.New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(application.Router())
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestSessionCreateThenGet(t *testing.T) {
	srv := newServer(t)

	_, err := execute(t, "--base-url", srv.URL, "session", "create", "--id", "abc", "--creator", "u1", "--title", "pairing")
	require.NoError(t, err)

	out, err := execute(t, "--base-url", srv.URL, "session", "get", "abc")
	require.NoError(t, err)

	var session models.CollaborativeSession
	require.NoError(t, json.Unmarshal([]byte(out), &session))
	assert.Equal(t, "abc", session.SessionID)
	assert.Equal(t, "pairing", session.Title)
	assert.True(t, session.IsActive)
}

func TestPrefsGetMissingFails(t *testing.T) {
	srv := newServer(t)

	_, err := execute(t, "--base-url", srv.URL, "prefs", "get", "nobody")
	require.Error(t, err)
	assert.Equal(t, "preferences not found", err.Error())
}

func TestPrefsGetLegacyPrintsDefaults(t *testing.T) {
	srv := newServer(t)

	out, err := execute(t, "--base-url", srv.URL, "--legacy", "--log-level", "disabled", "prefs", "get", "nobody")
	require.NoError(t, err)

	var prefs models.UserPreferences
	require.NoError(t, json.Unmarshal([]byte(out), &prefs))
	assert.Equal(t, "nobody", prefs.UserID)
	assert.Equal(t, "math", prefs.PreferredSubject)
	assert.Equal(t, 30, prefs.DailyGoalMinutes)
}

func TestCatalogRejectsUnknownKind(t *testing.T) {
	_, err := execute(t, "catalog", "recipes")
	require.Error(t, err)
}

func TestCatalogStoriesEmpty(t *testing.T) {
	srv := newServer(t)

	out, err := execute(t, "--base-url", srv.URL, "catalog", "stories", "--language", "en", "--grade-level", "2")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}
