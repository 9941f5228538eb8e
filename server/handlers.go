package server

import (
	"encoding/json"
	"net/http"

	"AuraFM/config"
	"AuraFM/core/library"
	"AuraFM/logger"
)

// APIHandler bundles the dependencies of the HTTP handlers.
type APIHandler struct {
	lib *library.Store
	cfg *config.Config
}

// NewAPIHandler creates the handler set.
func NewAPIHandler(lib *library.Store, cfg *config.Config) *APIHandler {
	return &APIHandler{lib: lib, cfg: cfg}
}

// writeJSON writes payload with a status code. Encoding failures are logged;
// by then the status line is already out, so nothing else can be done.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Warn("failed to encode response", logger.ErrorField(err))
	}
}

// writeError writes a JSON error body.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
