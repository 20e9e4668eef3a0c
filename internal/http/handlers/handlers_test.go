package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"league-stats-service/internal/domain/league"
	"league-stats-service/internal/loader"
	"league-stats-service/internal/testutil"
)

func TestHealth(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(nil), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(nil), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestReadyWithoutStatusFn(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(nil), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestReadyReflectsLoaderStatus(t *testing.T) {
	status := loader.Status{}
	h := NewHandler(testutil.NewServiceWithTeams(nil), nil, func() loader.Status { return status })

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	status.LastSuccess = time.Now()
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestStandings(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(testutil.SampleSeason()), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Standings), http.MethodGet, "/league/standings", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp struct {
		Teams []league.Team `json:"teams"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Teams) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(resp.Teams))
	}
	if resp.Teams[0].Name != "Serpents" {
		t.Fatalf("expected Serpents on top (44 points), got %s", resp.Teams[0].Name)
	}
}

func TestStandingsRejectsNonGet(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(nil), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Standings), http.MethodPost, "/league/standings", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestPlayersReturnsAll(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(testutil.SampleSeason()), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/league/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp struct {
		Players []league.Player `json:"players"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Players) != 10 {
		t.Fatalf("expected 10 players, got %d", len(resp.Players))
	}
}

func TestPlayersWithMinGoalsFilter(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(testutil.SampleSeason()), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/league/players?minGoals=10", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp struct {
		Players []league.Player `json:"players"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	// goals 17, 12, 21, 10 qualify.
	if len(resp.Players) != 4 {
		t.Fatalf("expected 4 players with >= 10 goals, got %d", len(resp.Players))
	}
}

func TestPlayersWithInvalidMinGoals(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(nil), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/league/players?minGoals=lots", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestBestPlayers(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(testutil.SampleSeason()), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.BestPlayers), http.MethodGet, "/league/players/best", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp struct {
		Players []league.Player `json:"players"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Players) != 4 {
		t.Fatalf("expected one best player per team, got %d", len(resp.Players))
	}
	if resp.Players[0].Goals != 17 {
		t.Fatalf("expected first team's top scorer (17), got %d", resp.Players[0].Goals)
	}
}

func TestBestPlayersEmptyRosterIs404(t *testing.T) {
	teams := []league.Team{testutil.SampleTeam("Bare", league.DivisionNorth, 0, 0, 0)}
	h := NewHandler(testutil.NewServiceWithTeams(teams), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.BestPlayers), http.MethodGet, "/league/players/best", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestLongestNamedTeam(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(testutil.SampleSeason()), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.LongestNamedTeam), http.MethodGet, "/league/teams/longest-name", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var team league.Team
	testutil.DecodeJSON(t, rr, &team)
	if team.Name != "Polar Owls" {
		t.Fatalf("expected Polar Owls, got %s", team.Name)
	}
}

func TestLongestNamedTeamEmptySeasonIs404(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(nil), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.LongestNamedTeam), http.MethodGet, "/league/teams/longest-name", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestFewestLoses(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(testutil.SampleSeason()), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.FewestLoses), http.MethodGet, "/league/teams/fewest-loses?limit=2", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp struct {
		Teams []league.Team `json:"teams"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(resp.Teams))
	}
	if resp.Teams[0].Name != "Serpents" {
		t.Fatalf("expected Serpents first (2 loses), got %s", resp.Teams[0].Name)
	}
}

func TestFewestLosesDefaultsToAllTeams(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(testutil.SampleSeason()), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.FewestLoses), http.MethodGet, "/league/teams/fewest-loses", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp struct {
		Teams []league.Team `json:"teams"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Teams) != 4 {
		t.Fatalf("expected all teams, got %d", len(resp.Teams))
	}
}

func TestFewestLosesInvalidLimit(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(nil), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.FewestLoses), http.MethodGet, "/league/teams/fewest-loses?limit=two", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestGoallessTeams(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(testutil.SampleSeason()), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.GoallessTeams), http.MethodGet, "/league/teams/goalless", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp struct {
		Teams []league.Team `json:"teams"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	// Foxes and Striders roster zero-goal players.
	if len(resp.Teams) != 2 {
		t.Fatalf("expected 2 goalless teams, got %d", len(resp.Teams))
	}
}

func TestStrongestDivision(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(testutil.SampleSeason()), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.StrongestDivision), http.MethodGet, "/league/divisions/strongest", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]league.Division
	testutil.DecodeJSON(t, rr, &resp)
	if resp["division"] != league.DivisionNorth {
		t.Fatalf("expected NORTH (77 points vs 72), got %s", resp["division"])
	}
}

func TestStrongestDivisionEmptySeasonIs404(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(nil), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.StrongestDivision), http.MethodGet, "/league/divisions/strongest", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestMostTalentedInDivision(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(testutil.SampleSeason()), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.DivisionRoutes), http.MethodGet, "/league/divisions/south/most-talented", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var player league.Player
	testutil.DecodeJSON(t, rr, &player)
	if player.Goals != 21 {
		t.Fatalf("expected the 21-goal player (highest skill rate), got %+v", player)
	}
}

func TestMostTalentedUnknownDivision(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(testutil.SampleSeason()), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.DivisionRoutes), http.MethodGet, "/league/divisions/atlantic/most-talented", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestMostTalentedEmptyDivisionIs404(t *testing.T) {
	teams := []league.Team{testutil.SampleTeam("Foxes", league.DivisionNorth, 0, 0, 0, 1)}
	h := NewHandler(testutil.NewServiceWithTeams(teams), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.DivisionRoutes), http.MethodGet, "/league/divisions/west/most-talented", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestDivisionRoutesUnknownPath(t *testing.T) {
	h := NewHandler(testutil.NewServiceWithTeams(nil), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.DivisionRoutes), http.MethodGet, "/league/divisions/north/oops", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
