package store

import (
	"sync"

	"league-stats-service/internal/domain/league"
)

// MemoryStore keeps a thread-safe snapshot of the season's teams in memory.
// Insertion order is preserved because every query's result ordering is
// defined relative to team iteration order.
type MemoryStore struct {
	mu    sync.RWMutex
	teams []league.Team
	byID  map[string]league.Team
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]league.Team),
	}
}

// ListTeams returns a copy of the current teams slice.
func (s *MemoryStore) ListTeams() []league.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]league.Team, len(s.teams))
	copy(result, s.teams)
	return result
}

// GetTeam retrieves a team by ID.
func (s *MemoryStore) GetTeam(id string) (league.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[id]
	return t, ok
}

// SetTeams replaces the existing snapshot with a new one.
func (s *MemoryStore) SetTeams(teams []league.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make([]league.Team, len(teams))
	copy(s.teams, teams)
	s.byID = make(map[string]league.Team, len(teams))
	for _, t := range teams {
		s.byID[t.ID] = t
	}
}

// Len reports the number of teams currently stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teams)
}
