package httpd

import (
	"net/http"

	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/RubachokBoss/learnbook/internal/service"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) registerCatalogRoutes(api chi.Router) {
	api.Get("/tutor-scripts", listCatalog(h, h.catalogs.TutorScripts, tutorScriptFilter))
	api.Post("/tutor-scripts", createInCatalog(h, h.catalogs.TutorScripts))

	api.Get("/coding-problems", listCatalog(h, h.catalogs.CodingProblems, codingProblemFilter))
	api.Post("/coding-problems", createInCatalog(h, h.catalogs.CodingProblems))

	api.Get("/ar-problems", listCatalog(h, h.catalogs.ARProblems, arProblemFilter))
	api.Post("/ar-problems", createInCatalog(h, h.catalogs.ARProblems))

	api.Get("/stories", listCatalog(h, h.catalogs.Stories, storyFilter))
	api.Post("/stories", createInCatalog(h, h.catalogs.Stories))

	api.Get("/voice-quizzes", listCatalog(h, h.catalogs.VoiceQuizzes, voiceQuizFilter))
	api.Post("/voice-quizzes", createInCatalog(h, h.catalogs.VoiceQuizzes))
}

func listCatalog[T any, F any](h *Handler, catalog *service.Catalog[T, F], parse func(*http.Request) (F, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parse(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		records, err := catalog.List(r.Context(), filter)
		if err != nil {
			h.handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

func createInCatalog[T any, F any](h *Handler, catalog *service.Catalog[T, F]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var record T
		if !decodeJSON(w, r, &record) {
			return
		}

		created, err := catalog.Create(r.Context(), &record)
		if err != nil {
			h.handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func tutorScriptFilter(r *http.Request) (models.TutorScriptFilter, error) {
	q := r.URL.Query()
	grade, err := queryInt(r, "grade")
	return models.TutorScriptFilter{Tone: q.Get("tone"), Grade: grade, Subject: q.Get("subject")}, err
}

func codingProblemFilter(r *http.Request) (models.CodingProblemFilter, error) {
	q := r.URL.Query()
	return models.CodingProblemFilter{Language: q.Get("language"), Difficulty: q.Get("difficulty")}, nil
}

func arProblemFilter(r *http.Request) (models.ARProblemFilter, error) {
	grade, err := queryInt(r, "grade")
	return models.ARProblemFilter{Subject: r.URL.Query().Get("subject"), Grade: grade}, err
}

func storyFilter(r *http.Request) (models.StoryFilter, error) {
	gradeLevel, err := queryInt(r, "gradeLevel")
	return models.StoryFilter{Language: r.URL.Query().Get("language"), GradeLevel: gradeLevel}, err
}

func voiceQuizFilter(r *http.Request) (models.VoiceQuizFilter, error) {
	q := r.URL.Query()
	return models.VoiceQuizFilter{
		Language:   q.Get("language"),
		Difficulty: q.Get("difficulty"),
		Subject:    q.Get("subject"),
	}, nil
}
