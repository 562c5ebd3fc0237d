package models

import (
	"encoding/json"
	"time"
)

// SharedContent is created by learners; Views and Likes only change server-side.
type SharedContent struct {
	ID          string          `json:"id,omitempty" db:"id"`
	UserID      string          `json:"user_id" db:"user_id"`
	ContentType string          `json:"content_type" db:"content_type"`
	Title       string          `json:"title" db:"title"`
	Content     json.RawMessage `json:"content,omitempty" db:"content"`
	Views       int             `json:"views" db:"views"`
	Likes       int             `json:"likes" db:"likes"`
	CreatedAt   time.Time       `json:"created_at,omitzero" db:"created_at"`
}

type TutorScript struct {
	ID        string    `json:"id,omitempty" db:"id"`
	Title     string    `json:"title" db:"title"`
	Tone      string    `json:"tone" db:"tone"`
	Grade     int       `json:"grade" db:"grade"`
	Subject   string    `json:"subject" db:"subject"`
	Script    string    `json:"script" db:"script"`
	CreatedAt time.Time `json:"created_at,omitzero" db:"created_at"`
}

type CodingProblem struct {
	ID          string          `json:"id,omitempty" db:"id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Language    string          `json:"language" db:"language"`
	Difficulty  string          `json:"difficulty" db:"difficulty"`
	StarterCode string          `json:"starter_code,omitempty" db:"starter_code"`
	Solution    string          `json:"solution,omitempty" db:"solution"`
	TestCases   json.RawMessage `json:"test_cases,omitempty" db:"test_cases"`
	CreatedAt   time.Time       `json:"created_at,omitzero" db:"created_at"`
}

type ARProblem struct {
	ID        string    `json:"id,omitempty" db:"id"`
	Subject   string    `json:"subject" db:"subject"`
	Grade     int       `json:"grade" db:"grade"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	ModelURL  string    `json:"model_url,omitempty" db:"model_url"`
	CreatedAt time.Time `json:"created_at,omitzero" db:"created_at"`
}

type Story struct {
	ID         string    `json:"id,omitempty" db:"id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	Language   string    `json:"language" db:"language"`
	GradeLevel int       `json:"grade_level" db:"grade_level"`
	CreatedAt  time.Time `json:"created_at,omitzero" db:"created_at"`
}

type VoiceQuiz struct {
	ID         string          `json:"id,omitempty" db:"id"`
	Question   string          `json:"question" db:"question"`
	Answer     string          `json:"answer" db:"answer"`
	Options    json.RawMessage `json:"options,omitempty" db:"options"`
	Language   string          `json:"language" db:"language"`
	Difficulty string          `json:"difficulty" db:"difficulty"`
	Subject    string          `json:"subject" db:"subject"`
	CreatedAt  time.Time       `json:"created_at,omitzero" db:"created_at"`
}

// Catalog filters. A zero field means "not filtered".

type TutorScriptFilter struct {
	Tone    string
	Grade   int
	Subject string
}

type CodingProblemFilter struct {
	Language   string
	Difficulty string
}

type ARProblemFilter struct {
	Subject string
	Grade   int
}

type StoryFilter struct {
	Language   string
	GradeLevel int
}

type VoiceQuizFilter struct {
	Language   string
	Difficulty string
	Subject    string
}
