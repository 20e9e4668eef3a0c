package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	appleague "league-stats-service/internal/app/league"
	"league-stats-service/internal/domain/league"
	"league-stats-service/internal/loader"
	"league-stats-service/internal/stats"
)

// Handler wires HTTP routes to the league statistics service.
type Handler struct {
	svc      *appleague.Service
	logger   *slog.Logger
	statusFn func() loader.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *appleague.Service, logger *slog.Logger, statusFn func() loader.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireGet(w, r) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireGet(w, r) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "season not loaded"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Standings returns every team ranked by points, goal sum breaking ties.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireGet(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, teamsResponse{Teams: h.svc.Standings()}, loggerFromContext(r, h.logger))
}

// Players returns the flattened player list, optionally filtered by a minimum
// goal count via ?minGoals=N.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireGet(w, r) {
		return
	}

	raw := r.URL.Query().Get("minGoals")
	if raw == "" {
		writeJSON(w, nethttp.StatusOK, playersResponse{Players: h.svc.AllPlayers()}, loggerFromContext(r, h.logger))
		return
	}

	minGoals, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid minGoals (expected integer)", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, playersResponse{Players: h.svc.PlayersWithAtLeastGoals(minGoals)}, loggerFromContext(r, h.logger))
}

// BestPlayers returns each team's top goal scorer.
func (h *Handler) BestPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireGet(w, r) {
		return
	}
	players, err := h.svc.BestPlayers()
	if err != nil {
		h.writeStatsError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, playersResponse{Players: players}, loggerFromContext(r, h.logger))
}

// LongestNamedTeam returns the team with the longest name.
func (h *Handler) LongestNamedTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireGet(w, r) {
		return
	}
	team, err := h.svc.LongestNamedTeam()
	if err != nil {
		h.writeStatsError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, loggerFromContext(r, h.logger))
}

// FewestLoses returns up to ?limit=N teams with the fewest losses.
func (h *Handler) FewestLoses(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireGet(w, r) {
		return
	}

	limit := len(h.svc.Teams())
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid limit (expected integer)", h.logger)
			return
		}
		limit = parsed
	}
	writeJSON(w, nethttp.StatusOK, teamsResponse{Teams: h.svc.FewestLoses(limit)}, loggerFromContext(r, h.logger))
}

// GoallessTeams returns teams rostering at least one zero-goal player.
func (h *Handler) GoallessTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireGet(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, teamsResponse{Teams: h.svc.GoallessTeams()}, loggerFromContext(r, h.logger))
}

// StrongestDivision returns the division with the most combined points.
func (h *Handler) StrongestDivision(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireGet(w, r) {
		return
	}
	division, err := h.svc.StrongestDivision()
	if err != nil {
		h.writeStatsError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]league.Division{"division": division}, loggerFromContext(r, h.logger))
}

// DivisionRoutes dispatches /league/divisions/{division}/most-talented.
func (h *Handler) DivisionRoutes(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireGet(w, r) {
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/league/divisions/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 || parts[1] != "most-talented" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}

	division, ok := league.ParseDivision(strings.ToUpper(parts[0]))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "unknown division", h.logger)
		return
	}

	player, err := h.svc.MostTalentedInDivision(division)
	if err != nil {
		h.writeStatsError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, loggerFromContext(r, h.logger))
}

func (h *Handler) requireGet(w nethttp.ResponseWriter, r *nethttp.Request) bool {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return false
	}
	return true
}

// writeStatsError maps the engine's error taxonomy onto HTTP statuses: both
// empty-input and no-match conditions surface as 404s with distinct messages.
func (h *Handler) writeStatsError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	switch {
	case errors.Is(err, stats.ErrEmptyInput), errors.Is(err, stats.ErrNoMatch):
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
	default:
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
	}
}

type teamsResponse struct {
	Teams []league.Team `json:"teams"`
}

type playersResponse struct {
	Players []league.Player `json:"players"`
}
