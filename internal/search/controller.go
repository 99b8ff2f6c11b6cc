package search

import (
	"context"
	"errors"
	"strings"

	"github.com/five82/popcorn/internal/fetch"
	"github.com/five82/popcorn/internal/omdb"
)

// MinQueryLength is the shortest trimmed query that triggers a request.
const MinQueryLength = 3

// State is what the results pane renders.
type State struct {
	Query   string
	Results []omdb.Movie
	Err     error
	Loading bool
}

// Message reduces Err to the string shown in place of results.
func (s State) Message() string {
	switch {
	case s.Err == nil:
		return ""
	case errors.Is(s.Err, omdb.ErrNotFound):
		return "No movie was found"
	case errors.Is(s.Err, omdb.ErrFetchFailed):
		return "Failed to fetch movies"
	default:
		return s.Err.Error()
	}
}

// Controller turns query edits into searches. A new query cancels the
// request issued for the previous one.
type Controller struct {
	searcher omdb.Searcher
	latest   *fetch.Latest[[]omdb.Movie]
}

// NewController returns a Controller backed by searcher.
func NewController(searcher omdb.Searcher) *Controller {
	return &Controller{
		searcher: searcher,
		latest:   fetch.New[[]omdb.Movie](),
	}
}

// SetQuery applies a new query. Short queries clear the results without
// touching the network.
func (c *Controller) SetQuery(ctx context.Context, query string) {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < MinQueryLength {
		c.latest.Reset(trimmed)
		return
	}
	c.latest.Start(ctx, trimmed, func(ctx context.Context) ([]omdb.Movie, error) {
		return c.searcher.Search(ctx, trimmed)
	})
}

// State returns the latest published state. Results of the previous query
// are withheld while a new one is loading.
func (c *Controller) State() State {
	snap := c.latest.Snapshot()
	var results []omdb.Movie
	if !snap.Loading {
		results = make([]omdb.Movie, len(snap.Value))
		copy(results, snap.Value)
	}
	return State{
		Query:   snap.Key,
		Results: results,
		Err:     snap.Err,
		Loading: snap.Loading,
	}
}

// Changes is signalled whenever State may have changed.
func (c *Controller) Changes() <-chan struct{} {
	return c.latest.Changes()
}

// Close cancels the in-flight request, if any.
func (c *Controller) Close() {
	c.latest.Stop()
}
