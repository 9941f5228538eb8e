package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"AuraFM/model"
)

func TestSearchKeyStableAndDistinct(t *testing.T) {
	dance := 0.8
	q := model.SearchQuery{Text: "sun", Sliders: model.SliderTargets{Danceability: &dance}}

	a := SearchKey(q, 5)
	b := SearchKey(q, 5)
	if a != b {
		t.Fatalf("identical requests must share a key: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "search:") {
		t.Fatalf("key %q missing the search prefix", a)
	}

	if SearchKey(q, 10) == a {
		t.Fatal("different limits must not collide")
	}
	if SearchKey(model.SearchQuery{Text: "moon"}, 5) == a {
		t.Fatal("different queries must not collide")
	}

	// A pointer to an equal value yields the same canonical encoding.
	dance2 := 0.8
	q2 := model.SearchQuery{Text: "sun", Sliders: model.SliderTargets{Danceability: &dance2}}
	if SearchKey(q2, 5) != a {
		t.Fatal("equal slider values must share a key")
	}
}

func TestCacheNoopsWithoutClient(t *testing.T) {
	if RedisClient != nil {
		t.Skip("redis client unexpectedly connected")
	}
	ctx := context.Background()

	var dest struct{ X int }
	if GetJSON(ctx, "search:deadbeef", &dest) {
		t.Fatal("GetJSON must miss without a client")
	}
	SetJSON(ctx, "search:deadbeef", dest, time.Minute)
	if err := FlushSearch(ctx); err != nil {
		t.Fatalf("FlushSearch without a client must be a no-op, got %v", err)
	}
}
