package server

import (
	"github.com/redis/go-redis/v9"

	"league-stats-service/internal/cache"
	"league-stats-service/internal/config"
)

// buildCache constructs the optional Redis standings cache. Caching is
// disabled when no Redis address is configured.
func buildCache(cfg config.CacheConfig) (*redis.Client, *cache.StandingsWriter) {
	if !cfg.Enabled() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return client, cache.NewStandingsWriter(client, cfg.TTL)
}
