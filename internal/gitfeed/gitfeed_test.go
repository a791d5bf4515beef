package gitfeed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/huangsam/gad/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesAuthor(t *testing.T) {
	sig := &object.Signature{Name: "Ana Souza", Email: "ana@example.com"}

	tests := []struct {
		name   string
		filter string
		want   bool
	}{
		{"full name", "Ana Souza", true},
		{"partial name", "ana", true},
		{"case insensitive", "ANA SOUZA", true},
		{"email", "ana@example.com", true},
		{"email domain", "@example.com", true},
		{"combined identity", "Ana Souza <ana@example.com>", true},
		{"different author", "bob", false},
		{"different email", "bob@example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesAuthor(sig, tt.filter))
		})
	}
}

func TestOpenMissingRepository(t *testing.T) {
	feed := NewGoGitFeed()

	_, err := feed.CommitTimes(context.Background(), t.TempDir(), time.Now().AddDate(0, 0, -7), "")
	var accessErr *contract.RepoAccessError
	assert.True(t, errors.As(err, &accessErr), "a directory without a repository must surface an access error")
}

// writeDotGit lays down a minimal .git directory with the given HEAD
// content, so repository failure modes can be staged without a git binary.
func writeDotGit(t *testing.T, head string) string {
	t.Helper()
	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "objects"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte(head), 0o644))
	config := []byte("[core]\n\trepositoryformatversion = 0\n")
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "config"), config, 0o644))
	return dir
}

func TestCommitTimesBrokenRepository(t *testing.T) {
	// A repository with a corrupt ref store must surface an access error
	// instead of rendering as zero activity.
	dir := writeDotGit(t, "ref: refs/heads/main\n")
	packedRefs := filepath.Join(dir, ".git", "packed-refs")
	require.NoError(t, os.WriteFile(packedRefs, []byte("corrupt\n"), 0o644))

	feed := NewGoGitFeed()

	_, err := feed.CommitTimes(context.Background(), dir, time.Now().AddDate(0, 0, -7), "")
	var accessErr *contract.RepoAccessError
	assert.True(t, errors.As(err, &accessErr), "a broken ref store must surface an access error")
	if accessErr != nil {
		assert.Equal(t, dir, accessErr.Repo)
	}
}

func TestCommitTimesEmptyRepository(t *testing.T) {
	// A freshly-initialized repository has no commits to walk. That is zero
	// activity, not a failure.
	dir := writeDotGit(t, "ref: refs/heads/main\n")

	feed := NewGoGitFeed()

	times, err := feed.CommitTimes(context.Background(), dir, time.Now().AddDate(0, 0, -7), "")
	assert.NoError(t, err)
	assert.Empty(t, times)
}

func TestFetchMissingRepository(t *testing.T) {
	feed := NewGoGitFeed()

	err := feed.Fetch(context.Background(), t.TempDir())
	var accessErr *contract.RepoAccessError
	assert.True(t, errors.As(err, &accessErr))
}

func TestFetchNoRemotes(t *testing.T) {
	dir := writeDotGit(t, "ref: refs/heads/main\n")

	feed := NewGoGitFeed()

	assert.NoError(t, feed.Fetch(context.Background(), dir))
}
