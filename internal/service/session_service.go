package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/RubachokBoss/learnbook/internal/repository"
	"github.com/RubachokBoss/learnbook/internal/service/integration"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type SessionService interface {
	CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*models.CollaborativeSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.CollaborativeSession, error)
	UpdateSession(ctx context.Context, sessionID string, patch models.SessionPatch) (*models.CollaborativeSession, error)
	ListParticipants(ctx context.Context, sessionID string) ([]models.Participant, error)
	Join(ctx context.Context, sessionID string, p *models.Participant) (*models.Participant, error)
	ListMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	SendMessage(ctx context.Context, sessionID string, m *models.ChatMessage) (*models.ChatMessage, error)
}

type sessionService struct {
	sessions     repository.SessionRepository
	participants repository.ParticipantRepository
	messages     repository.MessageRepository
	publisher    integration.EventPublisher
	logger       zerolog.Logger
}

func NewSessionService(store *repository.Store, publisher integration.EventPublisher, logger zerolog.Logger) SessionService {
	return &sessionService{
		sessions:     store.Sessions,
		participants: store.Participants,
		messages:     store.Messages,
		publisher:    publisher,
		logger:       logger,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*models.CollaborativeSession, error) {
	if err := required("creator_id", req.CreatorID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &models.CollaborativeSession{
		ID:        uuid.New().String(),
		SessionID: req.SessionID,
		CreatorID: req.CreatorID,
		Title:     req.Title,
		Language:  req.Language,
		Code:      req.Code,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if session.SessionID == "" {
		session.SessionID = uuid.New().String()
	}
	if req.IsActive != nil {
		session.IsActive = *req.IsActive
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSessionExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info().
		Str("session_id", session.SessionID).
		Str("creator_id", session.CreatorID).
		Msg("Collaborative session created")

	publish(ctx, s.publisher, s.logger, models.Event{
		Type:      models.EventSessionCreated,
		EntityID:  session.ID,
		UserID:    session.CreatorID,
		SessionID: session.SessionID,
	})

	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*models.CollaborativeSession, error) {
	session, err := s.sessions.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, sessionID string, patch models.SessionPatch) (*models.CollaborativeSession, error) {
	if patch.Empty() {
		return s.GetSession(ctx, sessionID)
	}

	session, err := s.sessions.Update(ctx, sessionID, patch, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	s.logger.Debug().
		Str("session_id", sessionID).
		Msg("Collaborative session updated")

	return session, nil
}

// requireSession fails with ErrSessionNotFound unless sessionID exists.
func (s *sessionService) requireSession(ctx context.Context, sessionID string) error {
	_, err := s.GetSession(ctx, sessionID)
	return err
}

func (s *sessionService) ListParticipants(ctx context.Context, sessionID string) ([]models.Participant, error) {
	if err := s.requireSession(ctx, sessionID); err != nil {
		return nil, err
	}

	participants, err := s.participants.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

func (s *sessionService) Join(ctx context.Context, sessionID string, p *models.Participant) (*models.Participant, error) {
	if err := required("user_id", p.UserID); err != nil {
		return nil, err
	}
	if err := s.requireSession(ctx, sessionID); err != nil {
		return nil, err
	}

	p.ID = uuid.New().String()
	p.SessionID = sessionID
	p.JoinedAt = time.Now().UTC()

	if err := s.participants.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to add participant: %w", err)
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("user_id", p.UserID).
		Msg("Participant joined")

	return p, nil
}

func (s *sessionService) ListMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	if err := s.requireSession(ctx, sessionID); err != nil {
		return nil, err
	}

	messages, err := s.messages.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (s *sessionService) SendMessage(ctx context.Context, sessionID string, m *models.ChatMessage) (*models.ChatMessage, error) {
	err := firstErr(
		required("user_id", m.UserID),
		required("message", m.Message),
	)
	if err != nil {
		return nil, err
	}
	if err := s.requireSession(ctx, sessionID); err != nil {
		return nil, err
	}

	m.ID = uuid.New().String()
	m.SessionID = sessionID
	m.CreatedAt = time.Now().UTC()

	if err := s.messages.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	publish(ctx, s.publisher, s.logger, models.Event{
		Type:      models.EventMessageSent,
		EntityID:  m.ID,
		UserID:    m.UserID,
		SessionID: sessionID,
	})

	return m, nil
}
