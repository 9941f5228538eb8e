package server

import (
	"net/http"
	"strconv"

	"AuraFM/model"

	"github.com/gorilla/mux"
)

type tracksResponse struct {
	Tracks []model.Track `json:"tracks"`
	Total  int           `json:"total"`
}

// GetTracksHandler lists the library, paged with optional limit/offset query
// parameters.
func (h *APIHandler) GetTracksHandler(w http.ResponseWriter, r *http.Request) {
	tracks := h.lib.Tracks()
	total := len(tracks)

	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", total)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := offset + limit
	if limit < 0 || end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, tracksResponse{Tracks: tracks[offset:end], Total: total})
}

// GetTrackHandler fetches one track by URI.
func (h *APIHandler) GetTrackHandler(w http.ResponseWriter, r *http.Request) {
	uri := mux.Vars(r)["uri"]
	track := h.lib.ByURI(uri)
	if track == nil {
		writeError(w, http.StatusNotFound, "track not found")
		return
	}
	writeJSON(w, http.StatusOK, track)
}

func queryInt(r *http.Request, name string, fallback int) int {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
