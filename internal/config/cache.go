package config

import "time"

const (
	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisDB       = "REDIS_DB"
	envCacheTTL      = "CACHE_TTL"
	envSeasonKey     = "SEASON_KEY"

	defaultCacheTTL  = 24 * Duration(time.Hour)
	defaultSeasonKey = "current"
)

// CacheConfig controls the optional redis standings cache.
// An empty Addr disables caching entirely.
type CacheConfig struct {
	Addr      string
	Password  string
	DB        int
	TTL       Duration
	SeasonKey string
}

// Enabled reports whether a redis endpoint is configured.
func (c CacheConfig) Enabled() bool {
	return c.Addr != ""
}

func loadCache() CacheConfig {
	return CacheConfig{
		Addr:      envOrDefault(envRedisAddr, ""),
		Password:  envOrDefault(envRedisPassword, ""),
		DB:        intEnvOrDefault(envRedisDB, 0),
		TTL:       durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		SeasonKey: envOrDefault(envSeasonKey, defaultSeasonKey),
	}
}
