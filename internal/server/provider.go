package server

import (
	"log/slog"
	"strings"

	"league-stats-service/internal/config"
	"league-stats-service/internal/providers"
	"league-stats-service/internal/providers/fixture"
	"league-stats-service/internal/providers/leaguehttp"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.SeasonProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "leaguehttp":
		return leaguehttp.NewClient(leaguehttp.Config{
			BaseURL: cfg.LeagueAPI.BaseURL,
			Token:   cfg.LeagueAPI.Token,
			Timeout: cfg.LeagueAPI.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// normalizeProviderName returns a lower-cased provider name, deriving from the
// instance when not explicitly configured. Keeps naming consistent in metrics and logs.
func normalizeProviderName(raw string, provider providers.SeasonProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	return strings.ToLower(providers.ProviderName(provider, "provider"))
}
