package core

import (
	"context"
	"strings"
	"sync"
	"time"
)

// fakeCommit is one commit record served by the fake feed.
type fakeCommit struct {
	author string
	when   time.Time
}

// fakeFeed is an in-memory CommitFeed for tests.
type fakeFeed struct {
	mu      sync.Mutex
	commits map[string][]fakeCommit // repo path -> commits
	fail    map[string]error        // repo path -> forced failure
	fetched []string
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{
		commits: make(map[string][]fakeCommit),
		fail:    make(map[string]error),
	}
}

func (f *fakeFeed) add(repo, author string, when time.Time) {
	f.commits[repo] = append(f.commits[repo], fakeCommit{author: author, when: when})
}

func (f *fakeFeed) CommitTimes(_ context.Context, repo string, since time.Time, author string) ([]time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail[repo]; err != nil {
		return nil, err
	}
	var times []time.Time
	for _, c := range f.commits[repo] {
		if c.when.Before(since) {
			continue
		}
		if author != "" && !strings.Contains(strings.ToLower(c.author), strings.ToLower(author)) {
			continue
		}
		times = append(times, c.when)
	}
	return times, nil
}

func (f *fakeFeed) AuthorTotals(_ context.Context, repo string, since time.Time) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail[repo]; err != nil {
		return nil, err
	}
	totals := make(map[string]int)
	for _, c := range f.commits[repo] {
		if !c.when.Before(since) {
			totals[c.author]++
		}
	}
	return totals, nil
}

func (f *fakeFeed) Fetch(_ context.Context, repo string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail[repo]; err != nil {
		return err
	}
	f.fetched = append(f.fetched, repo)
	return nil
}
