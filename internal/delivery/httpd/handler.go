package httpd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/RubachokBoss/learnbook/internal/middleware"
	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/RubachokBoss/learnbook/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	learnerService service.LearnerService
	contentService service.ContentService
	catalogs       *service.Catalogs
	sessionService service.SessionService
	storage        string
	logger         zerolog.Logger
}

func NewHandler(
	learnerService service.LearnerService,
	contentService service.ContentService,
	catalogs *service.Catalogs,
	sessionService service.SessionService,
	storage string,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		learnerService: learnerService,
		contentService: contentService,
		catalogs:       catalogs,
		sessionService: sessionService,
		storage:        storage,
		logger:         logger,
	}
}

// RegisterRoutes mounts the API. Middlewares in apiMiddleware wrap /api only.
func (h *Handler) RegisterRoutes(router chi.Router, apiMiddleware ...func(http.Handler) http.Handler) {
	router.Get("/health", h.HealthCheck)

	router.Route("/api", func(api chi.Router) {
		api.Use(apiMiddleware...)

		api.Route("/user-preferences/{userId}", func(r chi.Router) {
			r.Get("/", h.GetPreferences)
			r.Post("/", h.SavePreferences)
		})

		api.Route("/user-progress/{userId}", func(r chi.Router) {
			r.Get("/", h.GetProgress)
			r.Post("/", h.SaveProgress)
		})

		api.Route("/user-achievements/{userId}", func(r chi.Router) {
			r.Get("/", h.GetAchievements)
			r.Post("/", h.AwardAchievement)
		})

		api.Route("/shared-content", func(r chi.Router) {
			r.Get("/", h.GetSharedContent)
			r.Post("/", h.ShareContent)
			r.Post("/{id}/view", h.RecordView)
			r.Post("/{id}/like", h.RecordLike)
		})

		h.registerCatalogRoutes(api)

		api.Route("/collaborative-sessions", func(r chi.Router) {
			r.Post("/", h.CreateSession)
			r.Get("/{sessionId}", h.GetSession)
			r.Patch("/{sessionId}", h.UpdateSession)
			r.Put("/{sessionId}", h.UpdateSession)
			r.Get("/{sessionId}/participants", h.GetParticipants)
			r.Post("/{sessionId}/participants", h.JoinSession)
			r.Get("/{sessionId}/messages", h.GetMessages)
			r.Post("/{sessionId}/messages", h.SendMessage)
		})
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Service:   "learnbook",
		Storage:   h.storage,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError uses the {"error": message} body the API client parses.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func queryInt(r *http.Request, key string) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}

// pathParam returns the decoded route parameter. chi matches on RawPath when
// the request escaped a reserved character such as "/", and then hands back
// the escaped segment.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log := zerolog.Ctx(r.Context())
		if log.GetLevel() == zerolog.Disabled {
			log = &h.logger
		}
		log.Error().
			Err(err).
			Str("path", r.URL.Path).
			Str("subject", middleware.SubjectFromContext(r.Context())).
			Msg("Service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
