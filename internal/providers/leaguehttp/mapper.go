package leaguehttp

import (
	"fmt"

	"league-stats-service/internal/domain/league"
)

func mapSeason(payload seasonResponse) ([]league.Team, error) {
	teams := make([]league.Team, 0, len(payload.Teams))
	for _, t := range payload.Teams {
		mapped, err := mapTeam(t)
		if err != nil {
			return nil, err
		}
		teams = append(teams, mapped)
	}
	return teams, nil
}

func mapTeam(t teamResponse) (league.Team, error) {
	division, ok := league.ParseDivision(t.Division)
	if !ok {
		return league.Team{}, fmt.Errorf("%s: team %q has unknown division %q", ProviderName, t.Name, t.Division)
	}

	players := make([]league.Player, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, league.Player{
			ID:        p.ID,
			Name:      p.Name,
			Goals:     p.Goals,
			SkillRate: p.SkillRate,
		})
	}

	return league.Team{
		ID:            t.ID,
		Name:          t.Name,
		Division:      division,
		CurrentPoints: t.CurrentPoints,
		Wins:          t.Wins,
		Loses:         t.Loses,
		Players:       players,
	}, nil
}
