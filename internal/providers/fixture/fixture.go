package fixture

import (
	"context"

	"github.com/google/uuid"

	"league-stats-service/internal/domain/league"
)

// ProviderName identifies the fixture season source.
const ProviderName = "fixture"

// Provider returns a static completed season useful for local runs and tests.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Name reports the provider name.
func (p *Provider) Name() string {
	return ProviderName
}

// FetchTeams returns a deterministic completed season: eight teams across the
// four divisions. IDs are name-derived UUIDs so reloads are stable.
func (p *Provider) FetchTeams(ctx context.Context) ([]league.Team, error) {
	_ = ctx
	return []league.Team{
		team("Northern Foxes", league.DivisionNorth, 42, 13, 3,
			player("Ada Krol", 17, 88.5),
			player("Mia Sand", 9, 74.0),
			player("Lena Torp", 0, 61.2),
		),
		team("Polar Owls", league.DivisionNorth, 35, 11, 6,
			player("Nils Berg", 12, 79.3),
			player("Olaf Rune", 8, 70.1),
		),
		team("Southern Serpents", league.DivisionSouth, 44, 14, 2,
			player("Ivo Costa", 21, 93.7),
			player("Rui Melo", 6, 68.8),
			player("Tiago Luz", 4, 66.0),
		),
		team("Dune Striders", league.DivisionSouth, 28, 8, 9,
			player("Samir Aden", 10, 75.5),
			player("Karim Issa", 0, 58.9),
		),
		team("Eastern Cranes", league.DivisionEast, 39, 12, 4,
			player("Yuki Hana", 15, 86.2),
			player("Rin Sato", 11, 81.4),
			player("Kenji Oda", 2, 63.5),
		),
		team("Harbor Lynx", league.DivisionEast, 31, 9, 8,
			player("Petra Vail", 13, 77.6),
			player("Nora Finn", 5, 69.9),
		),
		team("Western Wolves", league.DivisionWest, 41, 13, 4,
			player("Cole Hart", 19, 90.1),
			player("Jack Moss", 7, 72.3),
			player("Liam Pike", 0, 59.4),
		),
		team("Canyon Hawks", league.DivisionWest, 25, 7, 10,
			player("Eli Stone", 9, 73.8),
			player("Max Reed", 3, 64.7),
		),
	}, nil
}

func team(name string, division league.Division, points, wins, loses int, players ...league.Player) league.Team {
	return league.Team{
		ID:            fixtureID("team", name),
		Name:          name,
		Division:      division,
		CurrentPoints: points,
		Wins:          wins,
		Loses:         loses,
		Players:       players,
	}
}

func player(name string, goals int, skillRate float64) league.Player {
	return league.Player{
		ID:        fixtureID("player", name),
		Name:      name,
		Goals:     goals,
		SkillRate: skillRate,
	}
}

// fixtureID derives a stable UUID from the entity kind and name.
func fixtureID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name)).String()
}
