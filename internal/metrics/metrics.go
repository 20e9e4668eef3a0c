package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type queryStats struct {
	calls  int
	errors int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// statistics queries. It is intentionally simple so it can be swapped for a
// real backend later.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*providerStats
	queries   map[string]*queryStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		queries:   make(map[string]*queryStats),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordQuery counts one statistics query execution.
func (r *Recorder) RecordQuery(name string, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.queries[name]
	if !ok {
		stats = &queryStats{}
		r.queries[name] = stats
	}
	stats.calls++
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordQuery(name, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordLoadCycle tracks season load cycles and errors.
func (r *Recorder) RecordLoadCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordLoadCycle(duration, err)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.ProviderSnapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.ProviderSnapshot(provider).Errors
}

// QueryCalls returns the total executions recorded for a query.
func (r *Recorder) QueryCalls(name string) int {
	return r.QuerySnapshot(name).Calls
}

// QueryErrors returns the total failed executions recorded for a query.
func (r *Recorder) QueryErrors(name string) int {
	return r.QuerySnapshot(name).Errors
}

// ProviderSnapshot is a copy of the stats recorded for one provider.
type ProviderSnapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) ProviderSnapshot(provider string) ProviderSnapshot {
	if r == nil {
		return ProviderSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.providers[provider]; ok && stats != nil {
		return ProviderSnapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return ProviderSnapshot{}
}

// QuerySnapshot is a copy of the stats recorded for one query.
type QuerySnapshot struct {
	Calls  int
	Errors int
}

func (r *Recorder) QuerySnapshot(name string) QuerySnapshot {
	if r == nil {
		return QuerySnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.queries[name]; ok && stats != nil {
		return QuerySnapshot{Calls: stats.calls, Errors: stats.errors}
	}
	return QuerySnapshot{}
}

func (r *Recorder) ensureProvider(provider string) *providerStats {
	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	return stats
}
