package testutil

import (
	appleague "league-stats-service/internal/app/league"
	"league-stats-service/internal/domain/league"
	"league-stats-service/internal/metrics"
	"league-stats-service/internal/store"
)

// NewServiceWithTeams builds a league service backed by an in-memory store
// preloaded with the given season snapshot.
func NewServiceWithTeams(teams []league.Team) *appleague.Service {
	ms := store.NewMemoryStore()
	if len(teams) > 0 {
		ms.SetTeams(teams)
	}
	return appleague.NewService(ms, metrics.NewRecorder())
}

// SampleTeam returns a minimal team fixture with the provided name used as its id.
func SampleTeam(name string, division league.Division, points, wins, loses int, goals ...int) league.Team {
	players := make([]league.Player, 0, len(goals))
	for i, g := range goals {
		players = append(players, league.Player{
			ID:        name + "-p" + string(rune('a'+i)),
			Name:      name + " player " + string(rune('a'+i)),
			Goals:     g,
			SkillRate: float64(g) * 10,
		})
	}
	return league.Team{
		ID:            name,
		Name:          name,
		Division:      division,
		CurrentPoints: points,
		Wins:          wins,
		Loses:         loses,
		Players:       players,
	}
}

// SampleSeason returns a small two-division season covering the interesting
// query shapes: point ties, goalless players, and uneven rosters.
func SampleSeason() []league.Team {
	return []league.Team{
		SampleTeam("Foxes", league.DivisionNorth, 42, 13, 3, 17, 9, 0),
		SampleTeam("Polar Owls", league.DivisionNorth, 35, 11, 6, 12, 8),
		SampleTeam("Serpents", league.DivisionSouth, 44, 14, 2, 21, 6, 4),
		SampleTeam("Striders", league.DivisionSouth, 28, 8, 9, 10, 0),
	}
}
