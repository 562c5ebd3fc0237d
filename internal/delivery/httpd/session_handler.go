package httpd

import (
	"net/http"

	"github.com/RubachokBoss/learnbook/internal/models"
)

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.sessionService.CreateSession(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.GetSession(r.Context(), pathParam(r, "sessionId"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var patch models.SessionPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	session, err := h.sessionService.UpdateSession(r.Context(), pathParam(r, "sessionId"), patch)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) GetParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.sessionService.ListParticipants(r.Context(), pathParam(r, "sessionId"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, participants)
}

func (h *Handler) JoinSession(w http.ResponseWriter, r *http.Request) {
	var participant models.Participant
	if !decodeJSON(w, r, &participant) {
		return
	}

	joined, err := h.sessionService.Join(r.Context(), pathParam(r, "sessionId"), &participant)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, joined)
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.sessionService.ListMessages(r.Context(), pathParam(r, "sessionId"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var message models.ChatMessage
	if !decodeJSON(w, r, &message) {
		return
	}

	sent, err := h.sessionService.SendMessage(r.Context(), pathParam(r, "sessionId"), &message)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, sent)
}
