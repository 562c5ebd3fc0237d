package models

import "time"

// CollaborativeSession is addressed by SessionID; ID is the storage key.
type CollaborativeSession struct {
	ID        string    `json:"id,omitempty" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	CreatorID string    `json:"creator_id" db:"creator_id"`
	Title     string    `json:"title" db:"title"`
	Language  string    `json:"language" db:"language"`
	Code      string    `json:"code" db:"code"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at,omitzero" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitzero" db:"updated_at"`
}

type Participant struct {
	ID        string    `json:"id,omitempty" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	UserName  string    `json:"user_name" db:"user_name"`
	JoinedAt  time.Time `json:"joined_at,omitzero" db:"joined_at"`
}

type ChatMessage struct {
	ID        string    `json:"id,omitempty" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	UserName  string    `json:"user_name" db:"user_name"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at,omitzero" db:"created_at"`
}
