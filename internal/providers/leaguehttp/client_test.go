package leaguehttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"league-stats-service/internal/domain/league"
	"league-stats-service/internal/providers"
)

const seasonDoc = `{
	"season": "2025-2026",
	"teams": [
		{
			"id": "t1",
			"name": "Northern Foxes",
			"division": "NORTH",
			"current_points": 42,
			"wins": 13,
			"loses": 3,
			"players": [
				{"id": "p1", "name": "Ada Krol", "goals": 17, "skill_rate": 88.5},
				{"id": "p2", "name": "Lena Torp", "goals": 0, "skill_rate": 61.2}
			]
		},
		{
			"id": "t2",
			"name": "Dune Striders",
			"division": "SOUTH",
			"current_points": 28,
			"wins": 8,
			"loses": 9,
			"players": []
		}
	]
}`

func TestFetchTeamsMapsSeason(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/season" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(seasonDoc))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/", Token: "secret"})

	teams, err := client.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer token header, got %q", gotAuth)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}

	foxes := teams[0]
	if foxes.Division != league.DivisionNorth || foxes.CurrentPoints != 42 || foxes.Loses != 3 {
		t.Fatalf("unexpected team mapping %+v", foxes)
	}
	if len(foxes.Players) != 2 || foxes.Players[0].SkillRate != 88.5 {
		t.Fatalf("unexpected player mapping %+v", foxes.Players)
	}
	if len(teams[1].Players) != 0 {
		t.Fatalf("expected empty roster preserved, got %+v", teams[1].Players)
	}
}

func TestFetchTeamsRejectsUnknownDivision(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"teams":[{"id":"x","name":"X","division":"ATLANTIC"}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	if _, err := client.FetchTeams(context.Background()); err == nil {
		t.Fatalf("expected error for unknown division")
	}
}

func TestFetchTeamsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "season not published", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchTeams(context.Background())
	if err == nil {
		t.Fatalf("expected error for non-OK status")
	}

	upErr, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if upErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", upErr.StatusCode)
	}
}

func TestFetchTeamsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"teams": [`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	if _, err := client.FetchTeams(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}
