package league

import (
	"league-stats-service/internal/domain/league"
	"league-stats-service/internal/metrics"
	"league-stats-service/internal/stats"
)

// Store defines the contract for retrieving and replacing the season snapshot.
type Store interface {
	ListTeams() []league.Team
	GetTeam(id string) (league.Team, bool)
	SetTeams([]league.Team)
}

// Service exposes the season statistics queries over a Store.
// Every query reads a fresh snapshot copy, so results never alias store state.
type Service struct {
	store   Store
	metrics *metrics.Recorder
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, recorder *metrics.Recorder) *Service {
	return &Service{store: store, metrics: recorder}
}

// Teams returns the current season snapshot.
func (s *Service) Teams() []league.Team {
	return s.store.ListTeams()
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id string) (league.Team, bool) {
	return s.store.GetTeam(id)
}

// ReplaceTeams swaps the season snapshot.
func (s *Service) ReplaceTeams(teams []league.Team) {
	s.store.SetTeams(teams)
}

// Standings ranks teams by points, goal sum breaking ties.
func (s *Service) Standings() []league.Team {
	ranked := stats.RankTeamsByPoints(s.store.ListTeams())
	s.metrics.RecordQuery("standings", nil)
	return ranked
}

// AllPlayers flattens every roster in team order.
func (s *Service) AllPlayers() []league.Player {
	players := stats.FlattenPlayers(s.store.ListTeams())
	s.metrics.RecordQuery("all_players", nil)
	return players
}

// LongestNamedTeam returns the team with the longest name.
func (s *Service) LongestNamedTeam() (league.Team, error) {
	team, err := stats.TeamWithLongestName(s.store.ListTeams())
	s.metrics.RecordQuery("longest_named_team", err)
	return team, err
}

// FewestLoses returns up to n teams with the fewest losses.
func (s *Service) FewestLoses(n int) []league.Team {
	teams := stats.TopTeamsByFewestLoses(s.store.ListTeams(), n)
	s.metrics.RecordQuery("fewest_loses", nil)
	return teams
}

// BestPlayers returns each team's top goal scorer.
func (s *Service) BestPlayers() ([]league.Player, error) {
	players, err := stats.BestPlayerPerTeam(s.store.ListTeams())
	s.metrics.RecordQuery("best_players", err)
	return players, err
}

// GoallessTeams returns teams rostering at least one zero-goal player.
func (s *Service) GoallessTeams() []league.Team {
	teams := stats.TeamsWithGoallessPlayers(s.store.ListTeams())
	s.metrics.RecordQuery("goalless_teams", nil)
	return teams
}

// PlayersWithAtLeastGoals filters the flattened player list by goal count.
func (s *Service) PlayersWithAtLeastGoals(minGoals int) []league.Player {
	players := stats.PlayersWithAtLeastGoals(s.store.ListTeams(), minGoals)
	s.metrics.RecordQuery("players_with_goals", nil)
	return players
}

// MostTalentedInDivision returns the highest skill rate player in a division.
func (s *Service) MostTalentedInDivision(division league.Division) (league.Player, error) {
	player, err := stats.MostTalentedPlayerInDivision(s.store.ListTeams(), division)
	s.metrics.RecordQuery("most_talented", err)
	return player, err
}

// StrongestDivision returns the division with the most combined points.
func (s *Service) StrongestDivision() (league.Division, error) {
	division, err := stats.StrongestDivision(s.store.ListTeams())
	s.metrics.RecordQuery("strongest_division", err)
	return division, err
}
