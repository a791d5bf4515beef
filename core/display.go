package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/huangsam/gad/internal/contract"
	"github.com/huangsam/gad/internal/outwriter"
	"github.com/huangsam/gad/schema"
)

// repoResult carries one repository's rendered table or its failure.
type repoResult struct {
	path  string
	table string
	err   error
}

// Run executes the full display pipeline: query every configured
// repository, bucket activity per subject, and write one table block per
// repository to out in configured order. Repositories are processed on a
// bounded worker pool; a single repository's failure is reported and
// skipped without aborting the others. Run returns an error only when no
// repository could be rendered at all.
func Run(ctx context.Context, cfg *contract.Config, feed contract.CommitFeed, out io.Writer) error {
	ow := outwriter.NewOutWriter()
	today := time.Now()

	results := make([]repoResult, len(cfg.Repositories))
	repoCh := make(chan int, len(cfg.Repositories))
	var wg sync.WaitGroup

	// Start worker pool
	for range cfg.Workers {
		wg.Go(func() {
			for i := range repoCh {
				path := cfg.Repositories[i]
				table, err := buildRepoTable(ctx, cfg, feed, ow, path, today)
				results[i] = repoResult{path: path, table: table, err: err}
			}
		})
	}

	// Send repository indexes to the worker channel
	for i := range cfg.Repositories {
		repoCh <- i
	}
	close(repoCh)
	wg.Wait()

	// Concatenate tables in configured order regardless of completion order.
	rendered := 0
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Skipping %s: %s\n", r.path, contract.FormatError(r.err, cfg.Exceptions))
			continue
		}
		if _, err := io.WriteString(out, r.table); err != nil {
			return err
		}
		rendered++
	}

	if rendered == 0 {
		return errors.New("no repository could be rendered")
	}
	return nil
}

// buildRepoTable produces the complete rendered table block for one
// repository, including its window title line.
func buildRepoTable(ctx context.Context, cfg *contract.Config, feed contract.CommitFeed, ow *outwriter.OutWriter, path string, today time.Time) (string, error) {
	if cfg.Fetch {
		if err := feed.Fetch(ctx, path); err != nil {
			return "", wrapAccess(path, err)
		}
	}

	since := WindowStart(cfg.Duration, today)

	authors, err := SelectAuthors(ctx, feed, path, since, cfg.Authors, cfg.AutoDetect)
	if err != nil {
		return "", wrapAccess(path, err)
	}

	var matrices []schema.ActivityMatrix
	if len(authors) == 0 {
		// Whole-repository aggregate as a single synthetic subject.
		times, err := feed.CommitTimes(ctx, path, since, "")
		if err != nil {
			return "", wrapAccess(path, err)
		}
		matrices = append(matrices, BuildMatrix(repoDisplayName(path), times, cfg.Duration, today))
	} else {
		for _, author := range authors {
			times, err := feed.CommitTimes(ctx, path, since, author)
			if err != nil {
				return "", wrapAccess(path, err)
			}
			matrices = append(matrices, BuildMatrix(author, times, cfg.Duration, today))
		}
	}
	slog.Debug("Aggregated activity", "repo", path, "subjects", len(matrices))

	title := fmt.Sprintf("%s: %s to %s",
		repoDisplayName(path),
		matrices[0].Start().Format("2006-01-02"),
		matrices[0].End().Format("2006-01-02"))

	var buf bytes.Buffer
	if err := ow.WriteActivity(&buf, title, matrices, &cfg.Render); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// wrapAccess tags an error as a repository access failure unless the feed
// already did so.
func wrapAccess(path string, err error) error {
	var accessErr *contract.RepoAccessError
	if errors.As(err, &accessErr) {
		return err
	}
	return &contract.RepoAccessError{Repo: path, Err: err}
}

// repoDisplayName returns a short human label for a repository path.
func repoDisplayName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Base(filepath.Clean(path))
	}
	return filepath.Base(abs)
}
