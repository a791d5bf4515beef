package core

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/gad/internal/contract"
	"github.com/huangsam/gad/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(repos ...string) *contract.Config {
	return &contract.Config{
		Repositories: repos,
		Duration:     2,
		Workers:      4,
		Render: contract.RenderConfig{
			Border:      schema.ASCIIBorder,
			Display:     schema.NumericDisplay,
			Orientation: schema.VerticalOrientation,
		},
	}
}

func TestRunOrdersTablesByConfiguration(t *testing.T) {
	color.NoColor = true

	feed := newFakeFeed()
	feed.add("zz-first", "ana", time.Now().Add(-time.Hour))
	feed.add("aa-second", "bob", time.Now().Add(-time.Hour))

	var out bytes.Buffer
	err := Run(context.Background(), testConfig("zz-first", "aa-second"), feed, &out)
	require.NoError(t, err)

	first := strings.Index(out.String(), "zz-first")
	second := strings.Index(out.String(), "aa-second")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second, "tables must follow configured repository order")
}

func TestRunIsolatesRepositoryFailure(t *testing.T) {
	color.NoColor = true

	feed := newFakeFeed()
	feed.add("good", "ana", time.Now().Add(-time.Hour))
	feed.fail["bad"] = errors.New("no such repository")

	var out bytes.Buffer
	err := Run(context.Background(), testConfig("bad", "good"), feed, &out)

	require.NoError(t, err, "one failing repository must not abort the run")
	assert.Contains(t, out.String(), "good")
	assert.NotContains(t, out.String(), "bad")
}

func TestRunFailsWhenNothingRendered(t *testing.T) {
	feed := newFakeFeed()
	feed.fail["bad"] = errors.New("no such repository")

	var out bytes.Buffer
	err := Run(context.Background(), testConfig("bad"), feed, &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunEmptyRepositoryRendersZeroTable(t *testing.T) {
	color.NoColor = true

	feed := newFakeFeed()
	cfg := testConfig("quiet")
	cfg.Render.Totals = true

	var out bytes.Buffer
	err := Run(context.Background(), cfg, feed, &out)

	require.NoError(t, err, "zero commits is activity data, not an error")
	assert.Contains(t, out.String(), "quiet")
	assert.Contains(t, out.String(), "0")
}

func TestRunFetchesWhenRequested(t *testing.T) {
	color.NoColor = true

	feed := newFakeFeed()
	feed.add("repo", "ana", time.Now().Add(-time.Hour))
	cfg := testConfig("repo")
	cfg.Fetch = true

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), cfg, feed, &out))
	assert.Equal(t, []string{"repo"}, feed.fetched)
}

func TestRunPerAuthorMatrices(t *testing.T) {
	color.NoColor = true

	feed := newFakeFeed()
	feed.add("repo", "ana", time.Now().Add(-time.Hour))
	feed.add("repo", "bob", time.Now().Add(-2*time.Hour))
	cfg := testConfig("repo")
	cfg.Authors = []string{"bob", "ana"}

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), cfg, feed, &out))

	bob := strings.Index(out.String(), "bob")
	ana := strings.Index(out.String(), "ana")
	require.GreaterOrEqual(t, bob, 0)
	require.GreaterOrEqual(t, ana, 0)
	assert.Less(t, bob, ana, "subjects must follow the configured author order")
}
