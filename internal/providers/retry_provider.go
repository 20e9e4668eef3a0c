package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"league-stats-service/internal/domain/league"
	"league-stats-service/internal/logging"
	"league-stats-service/internal/metrics"
)

const (
	defaultMaxRetries      = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a SeasonProvider with exponential backoff retries.
type retryingProvider struct {
	inner           SeasonProvider
	logger          *slog.Logger
	metrics         *metrics.Recorder
	name            string
	maxRetries      uint64
	initialInterval time.Duration
}

// NewRetryingProvider wraps the given provider with retries. Zero values for
// maxRetries/initialInterval select the defaults.
func NewRetryingProvider(inner SeasonProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxRetries uint64, initialInterval time.Duration) SeasonProvider {
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:           inner,
		logger:          logger,
		metrics:         recorder,
		name:            name,
		maxRetries:      maxRetries,
		initialInterval: initialInterval,
	}
}

// Name reports the wrapped provider's name.
func (r *retryingProvider) Name() string {
	return r.name
}

func (r *retryingProvider) FetchTeams(ctx context.Context) ([]league.Team, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = r.initialInterval
	policy := backoff.WithMaxRetries(backoff.WithContext(exp, ctx), r.maxRetries)

	operation := func() ([]league.Team, error) {
		start := time.Now()
		teams, err := r.inner.FetchTeams(ctx)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		return teams, err
	}

	notify := func(err error, next time.Duration) {
		logger := logging.FromContext(ctx, r.logger)
		logging.Warn(logger, "provider fetch retry",
			logging.FieldProvider, r.name,
			"next_attempt_in", next.String(),
			"err", err,
		)
	}

	teams, err := backoff.RetryNotifyWithData(operation, policy, notify)
	if err != nil {
		logger := logging.FromContext(ctx, r.logger)
		logging.Warn(logger, "provider fetch failed", logging.FieldProvider, r.name, "err", err)
		return nil, err
	}
	return teams, nil
}
