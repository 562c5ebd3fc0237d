package apiclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryOmitsZeroValuesAndKeepsOrder(t *testing.T) {
	assert.Equal(t, "/api/tutor-scripts", tutorScriptParams(models.TutorScriptFilter{}).apply("/api/tutor-scripts"))
	assert.Equal(t, "tone=friendly&grade=3", tutorScriptParams(models.TutorScriptFilter{Tone: "friendly", Grade: 3}).encode())
	assert.Equal(t, "grade=3&subject=math", tutorScriptParams(models.TutorScriptFilter{Grade: 3, Subject: "math"}).encode())
	assert.Equal(t, "language=en&gradeLevel=2", storyParams(models.StoryFilter{Language: "en", GradeLevel: 2}).encode())
	assert.Equal(t, "language=fr&difficulty=easy&subject=science",
		voiceQuizParams(models.VoiceQuizFilter{Language: "fr", Difficulty: "easy", Subject: "science"}).encode())
}

func TestQueryEscapesValues(t *testing.T) {
	assert.Equal(t, "subject=art+%26+design", newQuery().str("subject", "art & design").encode())
	assert.Equal(t, "/u%2F1/participants", segment("u/1", "participants"))
}

func TestResourcePaths(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		call   func(c *Client) error
		method string
		uri    string
	}{
		{"preferences get", func(c *Client) error {
			_, err := c.Preferences.Get(ctx, "u1")
			return err
		}, http.MethodGet, "/api/user-preferences/u1"},
		{"preferences save", func(c *Client) error {
			_, err := c.Preferences.Save(ctx, &models.UserPreferences{UserID: "u1"})
			return err
		}, http.MethodPost, "/api/user-preferences/u1"},
		{"progress filtered", func(c *Client) error {
			_, err := c.Progress.Get(ctx, "u1", models.ProgressFilter{Subject: "math", Grade: 4})
			return err
		}, http.MethodGet, "/api/user-progress/u1?subject=math&grade=4"},
		{"progress save", func(c *Client) error {
			_, err := c.Progress.Save(ctx, &models.UserProgress{UserID: "u1"})
			return err
		}, http.MethodPost, "/api/user-progress/u1"},
		{"achievements list", func(c *Client) error {
			_, err := c.Achievements.List(ctx, "u1")
			return err
		}, http.MethodGet, "/api/user-achievements/u1"},
		{"achievements award", func(c *Client) error {
			_, err := c.Achievements.Award(ctx, &models.Achievement{UserID: "u1"})
			return err
		}, http.MethodPost, "/api/user-achievements/u1"},
		{"shared content default", func(c *Client) error {
			_, err := c.SharedContent.List(ctx, 0)
			return err
		}, http.MethodGet, "/api/shared-content"},
		{"shared content limit", func(c *Client) error {
			_, err := c.SharedContent.List(ctx, 5)
			return err
		}, http.MethodGet, "/api/shared-content?limit=5"},
		{"tutor scripts", func(c *Client) error {
			_, err := c.TutorScripts.List(ctx, models.TutorScriptFilter{Tone: "friendly", Grade: 3})
			return err
		}, http.MethodGet, "/api/tutor-scripts?tone=friendly&grade=3"},
		{"coding problems", func(c *Client) error {
			_, err := c.CodingProblems.List(ctx, models.CodingProblemFilter{Language: "go"})
			return err
		}, http.MethodGet, "/api/coding-problems?language=go"},
		{"ar problems save", func(c *Client) error {
			_, err := c.ARProblems.Save(ctx, &models.ARProblem{Subject: "geometry"})
			return err
		}, http.MethodPost, "/api/ar-problems"},
		{"stories", func(c *Client) error {
			_, err := c.Stories.List(ctx, models.StoryFilter{GradeLevel: 2})
			return err
		}, http.MethodGet, "/api/stories?gradeLevel=2"},
		{"voice quizzes", func(c *Client) error {
			_, err := c.VoiceQuizzes.List(ctx, models.VoiceQuizFilter{Difficulty: "easy"})
			return err
		}, http.MethodGet, "/api/voice-quizzes?difficulty=easy"},
		{"session create", func(c *Client) error {
			_, err := c.Sessions.Create(ctx, &models.CreateSessionRequest{SessionID: "abc"})
			return err
		}, http.MethodPost, "/api/collaborative-sessions"},
		{"session get", func(c *Client) error {
			_, err := c.Sessions.Get(ctx, "abc")
			return err
		}, http.MethodGet, "/api/collaborative-sessions/abc"},
		{"session update", func(c *Client) error {
			_, err := c.Sessions.Update(ctx, "abc", &models.SessionPatch{})
			return err
		}, http.MethodPatch, "/api/collaborative-sessions/abc"},
		{"participants", func(c *Client) error {
			_, err := c.Participants.List(ctx, "abc")
			return err
		}, http.MethodGet, "/api/collaborative-sessions/abc/participants"},
		{"join", func(c *Client) error {
			_, err := c.Participants.Join(ctx, "abc", &models.Participant{UserID: "u2"})
			return err
		}, http.MethodPost, "/api/collaborative-sessions/abc/participants"},
		{"messages", func(c *Client) error {
			_, err := c.Messages.List(ctx, "abc")
			return err
		}, http.MethodGet, "/api/collaborative-sessions/abc/messages"},
		{"send", func(c *Client) error {
			_, err := c.Messages.Send(ctx, "abc", &models.ChatMessage{Message: "hi"})
			return err
		}, http.MethodPost, "/api/collaborative-sessions/abc/messages"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, rec := newTestGateway(t, http.StatusOK, `null`, Config{})

			require.NoError(t, tc.call(NewWithGateway(g)))
			assert.Equal(t, tc.method, rec.method)
			assert.Equal(t, tc.uri, rec.uri)
		})
	}
}

func TestResourceErrorsPropagateUnchanged(t *testing.T) {
	g, _ := newTestGateway(t, http.StatusNotFound, `{"error":"session not found"}`, Config{})

	session, err := NewWithGateway(g).Sessions.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, session)
	assert.Equal(t, "session not found", err.Error())
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}
