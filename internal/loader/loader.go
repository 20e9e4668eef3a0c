package loader

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"league-stats-service/internal/domain/league"
	"league-stats-service/internal/logging"
	"league-stats-service/internal/metrics"
	"league-stats-service/internal/providers"
	"league-stats-service/internal/stats"
)

// TeamSink receives the season snapshot after a successful load.
type TeamSink interface {
	ReplaceTeams([]league.Team)
}

// SeasonCache mirrors computed season views to an external cache.
type SeasonCache interface {
	WriteStandings(ctx context.Context, seasonKey string, standings []league.Team) error
	WriteStrongestDivision(ctx context.Context, seasonKey string, division league.Division) error
}

// Loader warms the season snapshot from a provider at startup and, when an
// interval is configured, keeps re-loading it. The season is completed data,
// so the default is a single load.
type Loader struct {
	provider  providers.SeasonProvider
	sink      TeamSink
	cache     SeasonCache
	seasonKey string
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the load loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	TeamCount           int
}

// IsReady reports whether a season snapshot has been loaded successfully.
func (s Status) IsReady() bool {
	return !s.LastSuccess.IsZero()
}

// New constructs a Loader. An interval <= 0 disables the refresh loop.
func New(provider providers.SeasonProvider, sink TeamSink, cache SeasonCache, seasonKey string, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Loader {
	return &Loader{
		provider:  provider,
		sink:      sink,
		cache:     cache,
		seasonKey: seasonKey,
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		done:      make(chan struct{}),
	}
}

// Start performs the initial load and, when configured, launches the refresh
// loop. It returns after the initial load completes.
func (l *Loader) Start(ctx context.Context) {
	l.startMu.Lock()
	if l.started {
		l.startMu.Unlock()
		return
	}
	l.started = true
	l.startMu.Unlock()

	l.loadOnce(ctx)

	if l.interval <= 0 {
		return
	}

	l.ticker = time.NewTicker(l.interval)
	go func() {
		logging.Info(l.logger, "season refresh loop started", logging.FieldDurationMS, l.interval.Milliseconds())
		for {
			select {
			case <-ctx.Done():
				l.stopTicker()
				logging.Info(l.logger, "season refresh loop stopped")
				return
			case <-l.done:
				l.stopTicker()
				logging.Info(l.logger, "season refresh loop stopped")
				return
			case <-l.ticker.C:
				l.loadOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (l *Loader) Stop(ctx context.Context) error {
	_ = ctx
	l.stopOnce.Do(func() {
		close(l.done)
		l.stopTicker()
	})
	return nil
}

// Status returns a copy of the loader's recent health.
func (l *Loader) Status() Status {
	l.statusMu.RLock()
	defer l.statusMu.RUnlock()
	return l.status
}

func (l *Loader) loadOnce(ctx context.Context) {
	start := time.Now()
	teams, err := l.provider.FetchTeams(ctx)
	l.metrics.RecordLoadCycle(time.Since(start), err)
	if err != nil {
		logging.Error(l.logger, "season load failed", err, logging.FieldDurationMS, time.Since(start).Milliseconds())
		l.recordFailure(err, start)
		return
	}

	l.sink.ReplaceTeams(teams)
	l.publish(ctx, teams)
	l.recordSuccess(start, len(teams))
	logging.Info(l.logger, "season loaded",
		logging.FieldCount, len(teams),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

// publish mirrors the derived views into the cache; cache failures are logged
// but never fail the load.
func (l *Loader) publish(ctx context.Context, teams []league.Team) {
	if l.cache == nil {
		return
	}

	standings := stats.RankTeamsByPoints(teams)
	if err := l.cache.WriteStandings(ctx, l.seasonKey, standings); err != nil {
		logging.Warn(l.logger, "standings cache write failed", "err", err)
	}

	strongest, err := stats.StrongestDivision(teams)
	if err != nil {
		return
	}
	if err := l.cache.WriteStrongestDivision(ctx, l.seasonKey, strongest); err != nil {
		logging.Warn(l.logger, "strongest division cache write failed", "err", err)
	}
}

func (l *Loader) recordSuccess(at time.Time, count int) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.ConsecutiveFailures = 0
	l.status.LastError = ""
	l.status.LastAttempt = at
	l.status.LastSuccess = at
	l.status.TeamCount = count
}

func (l *Loader) recordFailure(err error, at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.ConsecutiveFailures++
	l.status.LastError = err.Error()
	l.status.LastAttempt = at
}

func (l *Loader) stopTicker() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
}
