package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"league-stats-service/internal/domain/league"
)

// DefaultTTL bounds how long cached season views live without a refresh.
const DefaultTTL = 24 * time.Hour

// StandingsWriter mirrors computed season views into Redis so other services
// can read them without recomputing. A nil writer or client disables caching.
type StandingsWriter struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStandingsWriter creates a writer with the given TTL (<= 0 selects DefaultTTL).
func NewStandingsWriter(client *redis.Client, ttl time.Duration) *StandingsWriter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &StandingsWriter{client: client, ttl: ttl}
}

// WriteStandings stores the ranked standings for a season key.
func (w *StandingsWriter) WriteStandings(ctx context.Context, seasonKey string, standings []league.Team) error {
	if w == nil || w.client == nil {
		return nil
	}

	data, err := json.Marshal(standings)
	if err != nil {
		return fmt.Errorf("marshaling standings: %w", err)
	}
	return w.client.Set(ctx, standingsKey(seasonKey), data, w.ttl).Err()
}

// WriteStrongestDivision stores the strongest division tag for a season key.
func (w *StandingsWriter) WriteStrongestDivision(ctx context.Context, seasonKey string, division league.Division) error {
	if w == nil || w.client == nil {
		return nil
	}
	return w.client.Set(ctx, strongestDivisionKey(seasonKey), string(division), w.ttl).Err()
}

// ReadStandings retrieves the cached standings for a season key.
func (w *StandingsWriter) ReadStandings(ctx context.Context, seasonKey string) ([]league.Team, error) {
	if w == nil || w.client == nil {
		return nil, redis.Nil
	}

	data, err := w.client.Get(ctx, standingsKey(seasonKey)).Result()
	if err != nil {
		return nil, err
	}

	var standings []league.Team
	if err := json.Unmarshal([]byte(data), &standings); err != nil {
		return nil, fmt.Errorf("unmarshaling standings: %w", err)
	}
	return standings, nil
}

func standingsKey(seasonKey string) string {
	return fmt.Sprintf("league:%s:standings", seasonKey)
}

func strongestDivisionKey(seasonKey string) string {
	return fmt.Sprintf("league:%s:division:strongest", seasonKey)
}
