package apiclient

import (
	"context"
	"net/http"

	"github.com/RubachokBoss/learnbook/internal/models"
)

const sessionsPath = "/api/collaborative-sessions"

type SessionsClient struct {
	gateway *Gateway
}

func (c *SessionsClient) Create(ctx context.Context, req *models.CreateSessionRequest) (*models.CollaborativeSession, error) {
	return Do[*models.CollaborativeSession](ctx, c.gateway, sessionsPath,
		WithMethod(http.MethodPost),
		WithBody(req),
	)
}

func (c *SessionsClient) Get(ctx context.Context, sessionID string) (*models.CollaborativeSession, error) {
	return Do[*models.CollaborativeSession](ctx, c.gateway, sessionsPath+segment(sessionID))
}

// Update sends a partial patch; fields left nil are untouched.
func (c *SessionsClient) Update(ctx context.Context, sessionID string, patch *models.SessionPatch) (*models.CollaborativeSession, error) {
	return Do[*models.CollaborativeSession](ctx, c.gateway, sessionsPath+segment(sessionID),
		WithMethod(http.MethodPatch),
		WithBody(patch),
	)
}

type ParticipantsClient struct {
	gateway *Gateway
}

func (c *ParticipantsClient) List(ctx context.Context, sessionID string) ([]models.Participant, error) {
	return Do[[]models.Participant](ctx, c.gateway, sessionsPath+segment(sessionID, "participants"))
}

func (c *ParticipantsClient) Join(ctx context.Context, sessionID string, p *models.Participant) (*models.Participant, error) {
	return Do[*models.Participant](ctx, c.gateway, sessionsPath+segment(sessionID, "participants"),
		WithMethod(http.MethodPost),
		WithBody(p),
	)
}

type MessagesClient struct {
	gateway *Gateway
}

func (c *MessagesClient) List(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	return Do[[]models.ChatMessage](ctx, c.gateway, sessionsPath+segment(sessionID, "messages"))
}

func (c *MessagesClient) Send(ctx context.Context, sessionID string, m *models.ChatMessage) (*models.ChatMessage, error) {
	return Do[*models.ChatMessage](ctx, c.gateway, sessionsPath+segment(sessionID, "messages"),
		WithMethod(http.MethodPost),
		WithBody(m),
	)
}
