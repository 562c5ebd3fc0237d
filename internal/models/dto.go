package models

// Data Transfer Objects

type CreateSessionRequest struct {
	SessionID string `json:"session_id,omitempty"`
	CreatorID string `json:"creator_id"`
	Title     string `json:"title,omitempty"`
	Language  string `json:"language,omitempty"`
	Code      string `json:"code,omitempty"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

// SessionPatch carries only the fields being changed.
type SessionPatch struct {
	Title    *string `json:"title,omitempty"`
	Language *string `json:"language,omitempty"`
	Code     *string `json:"code,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (p SessionPatch) Empty() bool {
	return p.Title == nil && p.Language == nil && p.Code == nil && p.IsActive == nil
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Storage   string `json:"storage"`
	Timestamp string `json:"timestamp"`
}
