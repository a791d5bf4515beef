package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/huangsam/gad/internal/contract"
)

// SelectAuthors decides the final author set for one repository. An
// explicit configured list is used verbatim in its configured order;
// auto-detection appends the top-N most active authors over the window.
// An empty result means the caller should fall back to a single
// whole-repository subject.
func SelectAuthors(ctx context.Context, feed contract.CommitFeed, repoPath string, since time.Time, explicit []string, autoCount int) ([]string, error) {
	authors := make([]string, 0, len(explicit)+autoCount)
	authors = append(authors, explicit...)

	if autoCount > 0 {
		top, err := topAuthors(ctx, feed, repoPath, since, autoCount)
		if err != nil {
			return nil, fmt.Errorf("auto-detecting authors for %s: %w", repoPath, err)
		}
		authors = append(authors, top...)
	}

	return dedupeAuthors(authors), nil
}

// topAuthors ranks authors by total commit count descending, breaking
// ties lexicographically by author identifier so repeated runs over the
// same history always return the same ordering.
func topAuthors(ctx context.Context, feed contract.CommitFeed, repoPath string, since time.Time, count int) ([]string, error) {
	totals, err := feed.AuthorTotals(ctx, repoPath, since)
	if err != nil {
		return nil, err
	}

	ranked := make([]string, 0, len(totals))
	for author := range totals {
		if author != "" {
			ranked = append(ranked, author)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if totals[ranked[i]] != totals[ranked[j]] {
			return totals[ranked[i]] > totals[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > count {
		ranked = ranked[:count]
	}
	return ranked, nil
}

// dedupeAuthors removes duplicates while preserving first-seen order.
func dedupeAuthors(authors []string) []string {
	seen := make(map[string]struct{}, len(authors))
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
