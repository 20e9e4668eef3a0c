package stats

import "errors"

// Sentinel errors distinguishing the two failure kinds every query can signal.
// Callers branch with errors.Is; both are recoverable conditions, never panics.
var (
	// ErrEmptyInput means the query needed at least one team or player and got none.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoMatch means a filter or lookup found zero qualifying elements.
	ErrNoMatch = errors.New("no matching element")
)
