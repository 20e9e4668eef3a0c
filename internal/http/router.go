package http

import (
	nethttp "net/http"

	"league-stats-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/league/standings", handler.Standings)
	mux.HandleFunc("/league/players", handler.Players)
	mux.HandleFunc("/league/players/best", handler.BestPlayers)
	mux.HandleFunc("/league/teams/longest-name", handler.LongestNamedTeam)
	mux.HandleFunc("/league/teams/fewest-loses", handler.FewestLoses)
	mux.HandleFunc("/league/teams/goalless", handler.GoallessTeams)
	mux.HandleFunc("/league/divisions/strongest", handler.StrongestDivision)
	mux.HandleFunc("/league/divisions/", handler.DivisionRoutes)
	return mux
}
