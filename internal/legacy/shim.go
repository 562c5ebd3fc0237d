// Package legacy keeps call sites written against the old single-object data
// API working on top of apiclient. Its methods never return errors: failures
// are logged and replaced by the value recorded in Fallbacks.
package legacy

import (
	"context"
	"errors"

	"github.com/RubachokBoss/learnbook/internal/apiclient"
	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/rs/zerolog"
)

var (
	errEmptyRecord = errors.New("response did not contain a record")
	errNilInput    = errors.New("nil input")
)

// Reporter receives every error the shim swallows.
type Reporter interface {
	Report(ctx context.Context, op Operation, err error)
}

type Option func(*Shim)

func WithReporter(r Reporter) Option {
	return func(s *Shim) {
		s.reporter = r
	}
}

type Shim struct {
	client   *apiclient.Client
	logger   zerolog.Logger
	reporter Reporter
}

func New(client *apiclient.Client, logger zerolog.Logger, opts ...Option) *Shim {
	s := &Shim{
		client: client,
		logger: logger.With().Str("component", "legacy").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run executes call and substitutes the operation's fallback on failure.
func run[T any](ctx context.Context, s *Shim, op Operation, userID string, call func(context.Context) (T, error)) T {
	v, err := call(ctx)
	if err == nil {
		return v
	}

	kind := Fallbacks[op]
	s.logger.Error().
		Err(err).
		Str("operation", string(op)).
		Int("status", apiclient.StatusCode(err)).
		Stringer("fallback", kind).
		Msg("Legacy call failed")

	if s.reporter != nil {
		s.reporter.Report(ctx, op, err)
	}

	return fallbackValue[T](kind, userID)
}

// userOf reads the acting user from rec, or "" when rec is nil.
func userOf[T any](rec *T, get func(*T) string) string {
	if rec == nil {
		return ""
	}
	return get(rec)
}

func idOf[T any](rec *T, id func(*T) string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errEmptyRecord
	}
	return id(rec), nil
}

func (s *Shim) GetUserPreferences(ctx context.Context, userID string) *models.UserPreferences {
	return run(ctx, s, OpGetUserPreferences, userID, func(ctx context.Context) (*models.UserPreferences, error) {
		prefs, err := s.client.Preferences.Get(ctx, userID)
		if err == nil && prefs == nil {
			err = errEmptyRecord
		}
		return prefs, err
	})
}

func (s *Shim) SaveUserPreferences(ctx context.Context, prefs *models.UserPreferences) bool {
	userID := userOf(prefs, func(p *models.UserPreferences) string { return p.UserID })
	return run(ctx, s, OpSaveUserPreferences, userID, func(ctx context.Context) (bool, error) {
		if prefs == nil {
			return false, errNilInput
		}
		_, err := s.client.Preferences.Save(ctx, prefs)
		return err == nil, err
	})
}

func (s *Shim) GetUserProgress(ctx context.Context, userID, subject string, grade int) []models.UserProgress {
	return run(ctx, s, OpGetUserProgress, userID, func(ctx context.Context) ([]models.UserProgress, error) {
		return s.client.Progress.Get(ctx, userID, models.ProgressFilter{Subject: subject, Grade: grade})
	})
}

func (s *Shim) UpdateUserProgress(ctx context.Context, progress *models.UserProgress) bool {
	userID := userOf(progress, func(p *models.UserProgress) string { return p.UserID })
	return run(ctx, s, OpUpdateUserProgress, userID, func(ctx context.Context) (bool, error) {
		if progress == nil {
			return false, errNilInput
		}
		_, err := s.client.Progress.Save(ctx, progress)
		return err == nil, err
	})
}

func (s *Shim) GetUserAchievements(ctx context.Context, userID string) []models.Achievement {
	return run(ctx, s, OpGetUserAchievements, userID, func(ctx context.Context) ([]models.Achievement, error) {
		return s.client.Achievements.List(ctx, userID)
	})
}

func (s *Shim) AwardAchievement(ctx context.Context, a *models.Achievement) bool {
	userID := userOf(a, func(a *models.Achievement) string { return a.UserID })
	return run(ctx, s, OpAwardAchievement, userID, func(ctx context.Context) (bool, error) {
		if a == nil {
			return false, errNilInput
		}
		_, err := s.client.Achievements.Award(ctx, a)
		return err == nil, err
	})
}

func (s *Shim) GetSharedContent(ctx context.Context, limit int) []models.SharedContent {
	return run(ctx, s, OpGetSharedContent, "", func(ctx context.Context) ([]models.SharedContent, error) {
		return s.client.SharedContent.List(ctx, limit)
	})
}

// ShareContent returns the id of the created item, or "" on failure.
func (s *Shim) ShareContent(ctx context.Context, c *models.SharedContent) string {
	userID := userOf(c, func(c *models.SharedContent) string { return c.UserID })
	return run(ctx, s, OpShareContent, userID, func(ctx context.Context) (string, error) {
		if c == nil {
			return "", errNilInput
		}
		rec, err := s.client.SharedContent.Share(ctx, c)
		return idOf(rec, func(r *models.SharedContent) string { return r.ID }, err)
	})
}

func (s *Shim) GetTutorScripts(ctx context.Context, tone string, grade int, subject string) []models.TutorScript {
	return run(ctx, s, OpGetTutorScripts, "", func(ctx context.Context) ([]models.TutorScript, error) {
		return s.client.TutorScripts.List(ctx, models.TutorScriptFilter{Tone: tone, Grade: grade, Subject: subject})
	})
}

func (s *Shim) SaveTutorScript(ctx context.Context, script *models.TutorScript) string {
	return run(ctx, s, OpSaveTutorScript, "", func(ctx context.Context) (string, error) {
		if script == nil {
			return "", errNilInput
		}
		rec, err := s.client.TutorScripts.Save(ctx, script)
		return idOf(rec, func(r *models.TutorScript) string { return r.ID }, err)
	})
}

func (s *Shim) GetCodingProblems(ctx context.Context, language, difficulty string) []models.CodingProblem {
	return run(ctx, s, OpGetCodingProblems, "", func(ctx context.Context) ([]models.CodingProblem, error) {
		return s.client.CodingProblems.List(ctx, models.CodingProblemFilter{Language: language, Difficulty: difficulty})
	})
}

func (s *Shim) SaveCodingProblem(ctx context.Context, problem *models.CodingProblem) string {
	return run(ctx, s, OpSaveCodingProblem, "", func(ctx context.Context) (string, error) {
		if problem == nil {
			return "", errNilInput
		}
		rec, err := s.client.CodingProblems.Save(ctx, problem)
		return idOf(rec, func(r *models.CodingProblem) string { return r.ID }, err)
	})
}

func (s *Shim) GetARProblems(ctx context.Context, subject string, grade int) []models.ARProblem {
	return run(ctx, s, OpGetARProblems, "", func(ctx context.Context) ([]models.ARProblem, error) {
		return s.client.ARProblems.List(ctx, models.ARProblemFilter{Subject: subject, Grade: grade})
	})
}

func (s *Shim) SaveARProblem(ctx context.Context, problem *models.ARProblem) string {
	return run(ctx, s, OpSaveARProblem, "", func(ctx context.Context) (string, error) {
		if problem == nil {
			return "", errNilInput
		}
		rec, err := s.client.ARProblems.Save(ctx, problem)
		return idOf(rec, func(r *models.ARProblem) string { return r.ID }, err)
	})
}

func (s *Shim) GetStories(ctx context.Context, language string, gradeLevel int) []models.Story {
	return run(ctx, s, OpGetStories, "", func(ctx context.Context) ([]models.Story, error) {
		return s.client.Stories.List(ctx, models.StoryFilter{Language: language, GradeLevel: gradeLevel})
	})
}

func (s *Shim) SaveStory(ctx context.Context, story *models.Story) string {
	return run(ctx, s, OpSaveStory, "", func(ctx context.Context) (string, error) {
		if story == nil {
			return "", errNilInput
		}
		rec, err := s.client.Stories.Save(ctx, story)
		return idOf(rec, func(r *models.Story) string { return r.ID }, err)
	})
}

func (s *Shim) GetVoiceQuizzes(ctx context.Context, language, difficulty, subject string) []models.VoiceQuiz {
	return run(ctx, s, OpGetVoiceQuizzes, "", func(ctx context.Context) ([]models.VoiceQuiz, error) {
		return s.client.VoiceQuizzes.List(ctx, models.VoiceQuizFilter{Language: language, Difficulty: difficulty, Subject: subject})
	})
}

func (s *Shim) SaveVoiceQuiz(ctx context.Context, quiz *models.VoiceQuiz) string {
	return run(ctx, s, OpSaveVoiceQuiz, "", func(ctx context.Context) (string, error) {
		if quiz == nil {
			return "", errNilInput
		}
		rec, err := s.client.VoiceQuizzes.Save(ctx, quiz)
		return idOf(rec, func(r *models.VoiceQuiz) string { return r.ID }, err)
	})
}

// CreateCollaborativeSession returns the storage id of the new session.
func (s *Shim) CreateCollaborativeSession(ctx context.Context, req *models.CreateSessionRequest) string {
	userID := userOf(req, func(r *models.CreateSessionRequest) string { return r.CreatorID })
	return run(ctx, s, OpCreateCollaborativeSession, userID, func(ctx context.Context) (string, error) {
		if req == nil {
			return "", errNilInput
		}
		rec, err := s.client.Sessions.Create(ctx, req)
		return idOf(rec, func(r *models.CollaborativeSession) string { return r.ID }, err)
	})
}

func (s *Shim) GetCollaborativeSession(ctx context.Context, sessionID string) *models.CollaborativeSession {
	return run(ctx, s, OpGetCollaborativeSession, "", func(ctx context.Context) (*models.CollaborativeSession, error) {
		return s.client.Sessions.Get(ctx, sessionID)
	})
}

func (s *Shim) UpdateCollaborativeSession(ctx context.Context, sessionID string, patch *models.SessionPatch) bool {
	return run(ctx, s, OpUpdateCollaborativeSession, "", func(ctx context.Context) (bool, error) {
		if patch == nil {
			return false, errNilInput
		}
		_, err := s.client.Sessions.Update(ctx, sessionID, patch)
		return err == nil, err
	})
}

func (s *Shim) JoinSession(ctx context.Context, sessionID, userID, userName string) bool {
	return run(ctx, s, OpJoinSession, userID, func(ctx context.Context) (bool, error) {
		_, err := s.client.Participants.Join(ctx, sessionID, &models.Participant{
			SessionID: sessionID,
			UserID:    userID,
			UserName:  userName,
		})
		return err == nil, err
	})
}

func (s *Shim) GetSessionParticipants(ctx context.Context, sessionID string) []models.Participant {
	return run(ctx, s, OpGetSessionParticipants, "", func(ctx context.Context) ([]models.Participant, error) {
		return s.client.Participants.List(ctx, sessionID)
	})
}

func (s *Shim) SendChatMessage(ctx context.Context, sessionID, userID, userName, message string) bool {
	return run(ctx, s, OpSendChatMessage, userID, func(ctx context.Context) (bool, error) {
		_, err := s.client.Messages.Send(ctx, sessionID, &models.ChatMessage{
			SessionID: sessionID,
			UserID:    userID,
			UserName:  userName,
			Message:   message,
		})
		return err == nil, err
	})
}

func (s *Shim) GetChatMessages(ctx context.Context, sessionID string) []models.ChatMessage {
	return run(ctx, s, OpGetChatMessages, "", func(ctx context.Context) ([]models.ChatMessage, error) {
		return s.client.Messages.List(ctx, sessionID)
	})
}
