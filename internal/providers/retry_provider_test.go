package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"league-stats-service/internal/domain/league"
	"league-stats-service/internal/metrics"
)

type flakyProvider struct {
	failures int
	calls    int
}

func (f *flakyProvider) FetchTeams(ctx context.Context) ([]league.Team, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("transient failure")
	}
	return []league.Team{{ID: "t1", Name: "Foxes"}}, nil
}

func TestRetryingProviderRecoversFromTransientFailures(t *testing.T) {
	inner := &flakyProvider{failures: 2}
	rec := metrics.NewRecorder()
	p := NewRetryingProvider(inner, nil, rec, "flaky", 3, time.Millisecond)

	teams, err := p.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(teams))
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
	if rec.ProviderCalls("flaky") != 3 || rec.ProviderErrors("flaky") != 2 {
		t.Fatalf("unexpected metrics: calls=%d errors=%d", rec.ProviderCalls("flaky"), rec.ProviderErrors("flaky"))
	}
}

func TestRetryingProviderGivesUpAfterMaxRetries(t *testing.T) {
	inner := &flakyProvider{failures: 100}
	p := NewRetryingProvider(inner, nil, nil, "flaky", 2, time.Millisecond)

	if _, err := p.FetchTeams(context.Background()); err == nil {
		t.Fatalf("expected final error")
	}
	// max retries of 2 means 3 attempts total.
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
}

func TestRetryingProviderHonorsContextCancellation(t *testing.T) {
	inner := &flakyProvider{failures: 100}
	p := NewRetryingProvider(inner, nil, nil, "flaky", 10, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.FetchTeams(ctx); err == nil {
		t.Fatalf("expected error after cancellation")
	}
	if inner.calls > 2 {
		t.Fatalf("expected cancellation to stop retries, got %d attempts", inner.calls)
	}
}

func TestProviderNamePrefersNamed(t *testing.T) {
	p := NewRetryingProvider(&flakyProvider{}, nil, nil, "wrapped", 1, time.Millisecond)
	if got := ProviderName(p, "fallback"); got != "wrapped" {
		t.Fatalf("expected wrapped name, got %q", got)
	}
	if got := ProviderName(&flakyProvider{}, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback name, got %q", got)
	}
}
