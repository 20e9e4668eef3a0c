package config

import "time"

const (
	envLeagueBaseURL = "LEAGUE_API_BASE_URL"
	envLeagueToken   = "LEAGUE_API_TOKEN"
	envLeagueTimeout = "LEAGUE_API_TIMEOUT"

	defaultLeagueTimeout = 10 * Duration(time.Second)
)

// LeagueAPIConfig controls how we talk to the upstream league season API.
type LeagueAPIConfig struct {
	BaseURL string
	Token   string
	Timeout Duration
}

func loadLeagueAPI() LeagueAPIConfig {
	return LeagueAPIConfig{
		BaseURL: envOrDefault(envLeagueBaseURL, ""),
		Token:   envOrDefault(envLeagueToken, ""),
		Timeout: durationEnvOrDefault(envLeagueTimeout, defaultLeagueTimeout),
	}
}
