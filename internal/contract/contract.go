// Package contract provides interfaces and shared utilities for the gad CLI's internal architecture.
package contract

import (
	"context"
	"time"
)

// CommitFeed defines the required operations against a version-control
// backend. This allows the aggregation logic to be tested without needing
// a real repository on disk.
type CommitFeed interface {
	// CommitTimes returns the author timestamps of every commit in the
	// repository since the given instant. When author is non-empty, only
	// commits whose author identity matches it are returned. Order is
	// unspecified.
	CommitTimes(ctx context.Context, repoPath string, since time.Time, author string) ([]time.Time, error)

	// AuthorTotals returns the total commit count per author display name
	// since the given instant.
	AuthorTotals(ctx context.Context, repoPath string, since time.Time) (map[string]int, error)

	// Fetch updates the repository from all of its remotes.
	Fetch(ctx context.Context, repoPath string) error
}
