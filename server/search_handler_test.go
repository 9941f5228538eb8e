package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"AuraFM/config"
	"AuraFM/core/library"
	"AuraFM/model"
)

func testHandler() *APIHandler {
	lib := library.NewStore()
	lib.Replace([]model.Track{
		{
			URI: "aurafm:track:1", Name: "Sun", Artists: "Aria",
			Danceability: 0.8, Energy: 0.7, Valence: 0.9,
			Tempo: 120, TempoNorm: model.NormalizeTempo(120), Acousticness: 0.1,
		},
		{
			URI: "aurafm:track:2", Name: "Moon", Artists: "Luna",
			Danceability: 0.2, Energy: 0.3, Valence: 0.2,
			Tempo: 80, TempoNorm: model.NormalizeTempo(80), Acousticness: 0.8,
		},
	})
	return NewAPIHandler(lib, &config.Config{DefaultSearchLimit: 5, SearchCacheTTL: 60})
}

func postSearch(t *testing.T, h *APIHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SearchHandler(rec, req)
	return rec
}

func TestSearchHandlerTextQuery(t *testing.T) {
	rec := postSearch(t, testHandler(), `{"text":"aria"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp searchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Results) != 1 {
		t.Fatalf("expected exactly the Aria track, got %+v", resp)
	}
	got := resp.Results[0]
	if got.Track.Name != "Sun" {
		t.Fatalf("wrong track: %q", got.Track.Name)
	}
	if got.Explanation == "" || !strings.Contains(got.Explanation, "% match.") {
		t.Fatalf("missing explanation: %q", got.Explanation)
	}
}

func TestSearchHandlerSliderQuery(t *testing.T) {
	rec := postSearch(t, testHandler(), `{"sliders":{"danceability":0.8}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp searchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// Slider-only searches rank everything instead of filtering.
	if resp.Total != 2 {
		t.Fatalf("expected both tracks ranked, got %d", resp.Total)
	}
	if resp.Results[0].Track.Name != "Sun" {
		t.Fatalf("expected Sun ranked first, got %q", resp.Results[0].Track.Name)
	}
}

func TestSearchHandlerEmptyQuery(t *testing.T) {
	rec := postSearch(t, testHandler(), `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp searchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 0 || len(resp.Results) != 0 {
		t.Fatalf("empty query must yield no results, got %+v", resp)
	}
}

func TestSearchHandlerNegativeLimit(t *testing.T) {
	rec := postSearch(t, testHandler(), `{"text":"sun","limit":-1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSearchHandlerMalformedBody(t *testing.T) {
	rec := postSearch(t, testHandler(), `{"text":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
