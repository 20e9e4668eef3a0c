package providers

import (
	"context"

	"league-stats-service/internal/domain/league"
)

// SeasonProvider defines how a completed season's teams (with rosters) are
// fetched and normalized into domain models.
type SeasonProvider interface {
	FetchTeams(ctx context.Context) ([]league.Team, error)
}

// Named is implemented by providers that can report their own name for
// logging and metrics attribution.
type Named interface {
	Name() string
}

// ProviderName resolves a display name for a provider, preferring its own.
func ProviderName(p SeasonProvider, fallback string) string {
	if named, ok := p.(Named); ok && named.Name() != "" {
		return named.Name()
	}
	return fallback
}
