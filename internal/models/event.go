package models

import "time"

const (
	EventAchievementAwarded = "achievement.awarded"
	EventContentShared      = "content.shared"
	EventSessionCreated     = "session.created"
	EventMessageSent        = "session.message.sent"
)

// Event is the envelope published to the broker.
type Event struct {
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id"`
	UserID     string    `json:"user_id,omitempty"`
	SessionID  string    `json:"session_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
