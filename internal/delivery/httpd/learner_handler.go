package httpd

import (
	"net/http"

	"github.com/RubachokBoss/learnbook/internal/models"
)

func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.learnerService.GetPreferences(r.Context(), pathParam(r, "userId"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}

func (h *Handler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	var prefs models.UserPreferences
	if !decodeJSON(w, r, &prefs) {
		return
	}
	prefs.UserID = pathParam(r, "userId")

	saved, err := h.learnerService.SavePreferences(r.Context(), &prefs)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	grade, err := queryInt(r, "grade")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := models.ProgressFilter{
		Subject: r.URL.Query().Get("subject"),
		Grade:   grade,
	}

	progress, err := h.learnerService.ListProgress(r.Context(), pathParam(r, "userId"), filter)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, progress)
}

func (h *Handler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	var progress models.UserProgress
	if !decodeJSON(w, r, &progress) {
		return
	}
	progress.UserID = pathParam(r, "userId")

	saved, err := h.learnerService.SaveProgress(r.Context(), &progress)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

func (h *Handler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.learnerService.ListAchievements(r.Context(), pathParam(r, "userId"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, achievements)
}

func (h *Handler) AwardAchievement(w http.ResponseWriter, r *http.Request) {
	var achievement models.Achievement
	if !decodeJSON(w, r, &achievement) {
		return
	}
	achievement.UserID = pathParam(r, "userId")

	awarded, err := h.learnerService.AwardAchievement(r.Context(), &achievement)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, awarded)
}
