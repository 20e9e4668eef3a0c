// Package stats derives descriptive statistics and rankings over a completed
// season. Every function is pure: inputs are never mutated and every result is
// a freshly allocated slice, so callers may share one team list across
// goroutines without coordination.
package stats

import (
	"fmt"
	"sort"

	"league-stats-service/internal/domain/league"
)

// RankTeamsByPoints orders teams descending by current points; equal points
// fall back to the descending sum of goals scored by the whole roster.
func RankTeamsByPoints(teams []league.Team) []league.Team {
	ranked := copyTeams(teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CurrentPoints != ranked[j].CurrentPoints {
			return ranked[i].CurrentPoints > ranked[j].CurrentPoints
		}
		return ranked[i].TotalGoals() > ranked[j].TotalGoals()
	})
	return ranked
}

// FlattenPlayers concatenates every roster in team order, preserving roster
// order within each team. No deduplication, no sorting.
func FlattenPlayers(teams []league.Team) []league.Player {
	total := 0
	for _, t := range teams {
		total += len(t.Players)
	}
	players := make([]league.Player, 0, total)
	for _, t := range teams {
		players = append(players, t.Players...)
	}
	return players
}

// TeamWithLongestName returns the first team whose name has the greatest
// character length.
func TeamWithLongestName(teams []league.Team) (league.Team, error) {
	if len(teams) == 0 {
		return league.Team{}, fmt.Errorf("%w: no teams to compare", ErrEmptyInput)
	}
	longest := teams[0]
	for _, t := range teams[1:] {
		if len(t.Name) > len(longest.Name) {
			longest = t
		}
	}
	return longest, nil
}

// TopTeamsByFewestLoses returns up to n teams ordered ascending by loses,
// ties broken by descending current points. n beyond the team count returns
// all teams; n <= 0 returns an empty slice.
func TopTeamsByFewestLoses(teams []league.Team, n int) []league.Team {
	if n <= 0 {
		return []league.Team{}
	}
	ranked := copyTeams(teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Loses != ranked[j].Loses {
			return ranked[i].Loses < ranked[j].Loses
		}
		return ranked[i].CurrentPoints > ranked[j].CurrentPoints
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// BestPlayerPerTeam picks each team's top goal scorer (first seen on ties),
// preserving team order. A team with an empty roster is a fault condition.
func BestPlayerPerTeam(teams []league.Team) ([]league.Player, error) {
	best := make([]league.Player, 0, len(teams))
	for _, t := range teams {
		p, ok := t.BestPlayer()
		if !ok {
			return nil, fmt.Errorf("%w: team %q has an empty roster", ErrEmptyInput, t.Name)
		}
		best = append(best, p)
	}
	return best, nil
}

// TeamsWithGoallessPlayers returns the teams rostering at least one player
// with zero goals, preserving relative order.
func TeamsWithGoallessPlayers(teams []league.Team) []league.Team {
	out := make([]league.Team, 0, len(teams))
	for _, t := range teams {
		for _, p := range t.Players {
			if p.Goals == 0 {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// PlayersWithAtLeastGoals filters the flattened player list to those with at
// least minGoals. Any threshold is acceptable, including negative ones.
func PlayersWithAtLeastGoals(teams []league.Team, minGoals int) []league.Player {
	out := make([]league.Player, 0)
	for _, t := range teams {
		for _, p := range t.Players {
			if p.Goals >= minGoals {
				out = append(out, p)
			}
		}
	}
	return out
}

// MostTalentedPlayerInDivision returns the highest skill rate player among
// teams in the given division.
func MostTalentedPlayerInDivision(teams []league.Team, division league.Division) (league.Player, error) {
	var best league.Player
	found := false
	for _, t := range teams {
		if t.Division != division {
			continue
		}
		for _, p := range t.Players {
			if !found || p.SkillRate > best.SkillRate {
				best = p
				found = true
			}
		}
	}
	if !found {
		return league.Player{}, fmt.Errorf("%w: no players in division %s", ErrNoMatch, division)
	}
	return best, nil
}

// divisionTotals accumulates the two aggregates StrongestDivision ranks on.
type divisionTotals struct {
	points int
	wins   int
}

// StrongestDivision returns the division whose teams hold the most combined
// points, ties broken by combined wins.
func StrongestDivision(teams []league.Team) (league.Division, error) {
	if len(teams) == 0 {
		return "", fmt.Errorf("%w: no teams to aggregate", ErrEmptyInput)
	}

	totals := make(map[league.Division]*divisionTotals)
	order := make([]league.Division, 0)
	for _, t := range teams {
		agg, ok := totals[t.Division]
		if !ok {
			agg = &divisionTotals{}
			totals[t.Division] = agg
			order = append(order, t.Division)
		}
		agg.points += t.CurrentPoints
		agg.wins += t.Wins
	}

	strongest := order[0]
	for _, d := range order[1:] {
		cur, top := totals[d], totals[strongest]
		if cur.points > top.points || (cur.points == top.points && cur.wins > top.wins) {
			strongest = d
		}
	}
	return strongest, nil
}

func copyTeams(teams []league.Team) []league.Team {
	out := make([]league.Team, len(teams))
	copy(out, teams)
	return out
}
