package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestProviderDailyQuota(t *testing.T) {
	client := NewStatsProviderClient("http://example.invalid", "key", 3, zerolog.Nop())

	if got := client.RequestsRemaining(); got != 3 {
		t.Fatalf("RequestsRemaining before any request = %d, want 3", got)
	}

	for i := 0; i < 3; i++ {
		if !client.checkQuota() {
			t.Fatalf("request %d denied under quota", i+1)
		}
	}
	if client.checkQuota() {
		t.Error("request allowed past daily limit")
	}
	if got := client.RequestsRemaining(); got != 0 {
		t.Errorf("RequestsRemaining after exhaustion = %d, want 0", got)
	}
}

func TestProviderQuotaResetsNextDay(t *testing.T) {
	client := NewStatsProviderClient("http://example.invalid", "key", 2, zerolog.Nop())

	client.checkQuota()
	client.checkQuota()
	if got := client.RequestsRemaining(); got != 0 {
		t.Fatalf("RequestsRemaining = %d, want 0", got)
	}

	// Pretend the last request happened yesterday.
	client.mu.Lock()
	client.lastRequestDay = client.lastRequestDay.AddDate(0, 0, -1)
	client.mu.Unlock()

	if got := client.RequestsRemaining(); got != 2 {
		t.Errorf("RequestsRemaining after day rollover = %d, want 2", got)
	}
	if !client.checkQuota() {
		t.Error("request denied after day rollover")
	}
}

func TestProviderDefaultDailyLimit(t *testing.T) {
	client := NewStatsProviderClient("http://example.invalid", "key", 0, zerolog.Nop())
	if got := client.RequestsRemaining(); got != 500 {
		t.Errorf("default daily limit = %d, want 500", got)
	}
}

func TestFetchDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/league/day" {
			t.Errorf("path = %q, want /v1/league/day", r.URL.Path)
		}
		if got := r.URL.Query().Get("date"); got != "2026-01-10" {
			t.Errorf("date param = %q, want 2026-01-10", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want Bearer test-key", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"games": [{"game_id": "g1", "home_team": "BOS", "away_team": "DET"}],
			"box_scores": [{"player_id": "p1", "player_name": "Alice Webb", "team": "BOS", "position": "PG", "game_id": "g1", "opponent": "DET", "points": 20}],
			"defense": [{"team": "DET", "season": "2025-26", "defensive_rating": 112.5}]
		}`))
	}))
	defer server.Close()

	client := NewStatsProviderClient(server.URL, "test-key", 10, zerolog.Nop())
	payload, err := client.fetchDay(context.Background(), "2026-01-10")
	if err != nil {
		t.Fatalf("fetchDay returned error: %v", err)
	}

	if len(payload.Games) != 1 || payload.Games[0].GameID != "g1" {
		t.Errorf("games = %+v, want one game g1", payload.Games)
	}
	if len(payload.BoxScores) != 1 || payload.BoxScores[0].Points != 20 {
		t.Errorf("box scores = %+v, want one line with 20 points", payload.BoxScores)
	}
	if len(payload.Defense) != 1 || payload.Defense[0].DefensiveRating != 112.5 {
		t.Errorf("defense = %+v, want DET at 112.5", payload.Defense)
	}
}

func TestFetchDayUnconfigured(t *testing.T) {
	client := NewStatsProviderClient("", "", 10, zerolog.Nop())
	if _, err := client.fetchDay(context.Background(), "2026-01-10"); err == nil {
		t.Error("expected error when provider base URL is unset")
	}
}

func TestFetchDayErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewStatsProviderClient(server.URL, "key", 10, zerolog.Nop())
	if _, err := client.fetchDay(context.Background(), "2026-01-10"); err == nil {
		t.Error("expected error on non-200 provider response")
	}
}
