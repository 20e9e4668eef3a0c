package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envRefreshInterval = "REFRESH_INTERVAL"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "fixture"
	// Season data is static once the season is complete; refresh is opt-in.
	defaultRefreshInterval = 0 * Duration(time.Second)
	defaultMetricsPort     = "9090"
)
