package httpd

import (
	"net/http"

	"github.com/RubachokBoss/learnbook/internal/models"
)

func (h *Handler) GetSharedContent(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.contentService.ListShared(r.Context(), limit)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) ShareContent(w http.ResponseWriter, r *http.Request) {
	var content models.SharedContent
	if !decodeJSON(w, r, &content) {
		return
	}

	shared, err := h.contentService.Share(r.Context(), &content)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, shared)
}

func (h *Handler) RecordView(w http.ResponseWriter, r *http.Request) {
	content, err := h.contentService.RecordView(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, content)
}

func (h *Handler) RecordLike(w http.ResponseWriter, r *http.Request) {
	content, err := h.contentService.RecordLike(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, content)
}
