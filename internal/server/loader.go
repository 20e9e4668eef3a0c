package server

import (
	"context"

	"league-stats-service/internal/loader"
)

// SeasonLoader defines the minimal loader behavior needed by the server.
type SeasonLoader interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() loader.Status
}
