package models

import (
	"encoding/json"
	"time"
)

type UserPreferences struct {
	ID                  string    `json:"id,omitempty" db:"id"`
	UserID              string    `json:"user_id" db:"user_id"`
	PreferredSubject    string    `json:"preferred_subject" db:"preferred_subject"`
	PreferredDifficulty int       `json:"preferred_difficulty" db:"preferred_difficulty"`
	PreferredLanguage   string    `json:"preferred_language" db:"preferred_language"`
	LearningStyle       string    `json:"learning_style" db:"learning_style"`
	DailyGoalMinutes    int       `json:"daily_goal_minutes" db:"daily_goal_minutes"`
	UpdatedAt           time.Time `json:"updated_at,omitzero" db:"updated_at"`
}

// UserProgress holds the counters for one (user, subject, grade) triple.
type UserProgress struct {
	ID                string    `json:"id,omitempty" db:"id"`
	UserID            string    `json:"user_id" db:"user_id"`
	Subject           string    `json:"subject" db:"subject"`
	Grade             int       `json:"grade" db:"grade"`
	ProblemsAttempted int       `json:"problems_attempted" db:"problems_attempted"`
	ProblemsCorrect   int       `json:"problems_correct" db:"problems_correct"`
	CurrentStreak     int       `json:"current_streak" db:"current_streak"`
	UpdatedAt         time.Time `json:"updated_at,omitzero" db:"updated_at"`
}

type Achievement struct {
	ID              string          `json:"id,omitempty" db:"id"`
	UserID          string          `json:"user_id" db:"user_id"`
	AchievementType string          `json:"achievement_type" db:"achievement_type"`
	Title           string          `json:"title" db:"title"`
	Description     string          `json:"description,omitempty" db:"description"`
	Metadata        json.RawMessage `json:"metadata,omitempty" db:"metadata"`
	EarnedAt        time.Time       `json:"earned_at,omitzero" db:"earned_at"`
}

type ProgressFilter struct {
	Subject string
	Grade   int
}
