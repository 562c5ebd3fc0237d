package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/RubachokBoss/learnbook/internal/models"
)

// writeError answers with the {"error": message} body used across the API.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}
