package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"AuraFM/cache"
	"AuraFM/core/rank"
	"AuraFM/logger"
	"AuraFM/model"
)

type searchRequest struct {
	Text    string              `json:"text"`
	Sliders model.SliderTargets `json:"sliders"`
	Limit   int                 `json:"limit"`
}

type searchResult struct {
	Track       *model.Track `json:"track"`
	Score       float64      `json:"score"`
	Reasons     []string     `json:"reasons"`
	Explanation string       `json:"explanation"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
	Total   int            `json:"total"`
}

// SearchHandler ranks the library against the posted query. An empty query is
// a valid "nothing to search for" request and returns zero results.
func (h *APIHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = h.cfg.DefaultSearchLimit
	}

	query := model.SearchQuery{Text: req.Text, Sliders: req.Sliders}
	key := cache.SearchKey(query, limit)

	var resp searchResponse
	if cache.GetJSON(r.Context(), key, &resp) {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	results, err := rank.Search(h.lib.Tracks(), query, limit)
	if err != nil {
		if errors.Is(err, rank.ErrInvalidLimit) {
			writeError(w, http.StatusBadRequest, "limit must be positive")
			return
		}
		logger.Error("search failed", logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	resp = searchResponse{Results: make([]searchResult, 0, len(results)), Total: len(results)}
	for _, res := range results {
		resp.Results = append(resp.Results, searchResult{
			Track:       res.Track,
			Score:       res.Score,
			Reasons:     res.Reasons,
			Explanation: rank.BuildExplanation(res),
		})
	}

	cache.SetJSON(r.Context(), key, resp, time.Duration(h.cfg.SearchCacheTTL)*time.Second)
	writeJSON(w, http.StatusOK, resp)
}
