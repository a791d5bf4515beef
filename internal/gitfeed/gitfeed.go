// Package gitfeed has the go-git backed commit feed.
package gitfeed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/huangsam/gad/internal/contract"
)

// GoGitFeed implements the CommitFeed interface using an embedded go-git
// backend, so no git executable is required on the machine.
type GoGitFeed struct{}

var _ contract.CommitFeed = &GoGitFeed{} // Compile-time check

// NewGoGitFeed creates a new instance of the go-git commit feed.
func NewGoGitFeed() *GoGitFeed {
	return &GoGitFeed{}
}

// CommitTimes implements the CommitFeed interface.
func (f *GoGitFeed) CommitTimes(ctx context.Context, repoPath string, since time.Time, author string) ([]time.Time, error) {
	var times []time.Time
	err := f.forEachCommit(ctx, repoPath, since, func(c *object.Commit) {
		if author != "" && !matchesAuthor(&c.Author, author) {
			return
		}
		times = append(times, c.Author.When)
	})
	if err != nil {
		return nil, err
	}
	return times, nil
}

// AuthorTotals implements the CommitFeed interface.
func (f *GoGitFeed) AuthorTotals(ctx context.Context, repoPath string, since time.Time) (map[string]int, error) {
	totals := make(map[string]int)
	err := f.forEachCommit(ctx, repoPath, since, func(c *object.Commit) {
		totals[c.Author.Name]++
	})
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// Fetch implements the CommitFeed interface. It updates the repository
// from each configured remote; a repository without remotes is a no-op.
func (f *GoGitFeed) Fetch(ctx context.Context, repoPath string) error {
	repo, err := f.open(repoPath)
	if err != nil {
		return err
	}
	remotes, err := repo.Remotes()
	if err != nil {
		return &contract.RepoAccessError{Repo: repoPath, Err: err}
	}
	for _, remote := range remotes {
		name := remote.Config().Name
		err := remote.FetchContext(ctx, &gitlib.FetchOptions{RemoteName: name})
		if err != nil && !errors.Is(err, gitlib.NoErrAlreadyUpToDate) {
			return &contract.RepoAccessError{
				Repo: repoPath,
				Err:  fmt.Errorf("fetching remote %s: %w", name, err),
			}
		}
		slog.Info("Fetched remote", "repo", repoPath, "remote", name)
	}
	return nil
}

// open resolves a repository handle, searching parent directories the way
// the git CLI does.
func (f *GoGitFeed) open(repoPath string) (*gitlib.Repository, error) {
	repo, err := gitlib.PlainOpenWithOptions(repoPath, &gitlib.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &contract.RepoAccessError{Repo: repoPath, Err: err}
	}
	return repo, nil
}

// forEachCommit walks every commit reachable from any reference that is
// newer than since, invoking fn once per commit.
func (f *GoGitFeed) forEachCommit(ctx context.Context, repoPath string, since time.Time, fn func(*object.Commit)) error {
	repo, err := f.open(repoPath)
	if err != nil {
		return err
	}

	iter, err := repo.Log(&gitlib.LogOptions{
		All:   true,
		Since: &since,
		Order: gitlib.LogOrderCommitterTime,
	})
	if err != nil {
		// A repository with no commits yet has no branch to resolve; that is
		// activity data of zero, not an access failure.
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil
		}
		return &contract.RepoAccessError{Repo: repoPath, Err: fmt.Errorf("reading log: %w", err)}
	}
	defer iter.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		commit, err := iter.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return &contract.RepoAccessError{Repo: repoPath, Err: fmt.Errorf("iterating commits: %w", err)}
		}
		fn(commit)
	}
}

// matchesAuthor reports whether an author filter string matches a commit
// signature. The filter matches case-insensitively against the author's
// name, email, or combined "Name <email>" identity.
func matchesAuthor(sig *object.Signature, filter string) bool {
	needle := strings.ToLower(filter)
	identity := strings.ToLower(sig.Name + " <" + sig.Email + ">")
	return strings.Contains(identity, needle)
}
