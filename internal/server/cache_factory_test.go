package server

import (
	"testing"
	"time"

	"league-stats-service/internal/config"
)

func TestBuildCacheDisabledWithoutAddr(t *testing.T) {
	client, writer := buildCache(config.CacheConfig{})
	if client != nil || writer != nil {
		t.Fatalf("expected cache disabled with no redis address")
	}
}

func TestBuildCacheEnabled(t *testing.T) {
	client, writer := buildCache(config.CacheConfig{
		Addr: "localhost:6379",
		TTL:  time.Hour,
	})
	if client == nil || writer == nil {
		t.Fatalf("expected cache components when redis address is set")
	}
	defer client.Close()

	if client.Options().Addr != "localhost:6379" {
		t.Fatalf("unexpected redis addr %q", client.Options().Addr)
	}
}
