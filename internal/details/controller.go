package details

import (
	"context"
	"errors"
	"strings"

	"github.com/five82/popcorn/internal/fetch"
	"github.com/five82/popcorn/internal/omdb"
)

// State is what the details pane renders for the current selection.
type State struct {
	ID      string
	Movie   omdb.MovieDetails
	Err     error
	Loading bool
}

// Ready reports whether details for ID have arrived.
func (s State) Ready() bool {
	return s.ID != "" && !s.Loading && s.Err == nil && s.Movie.ID != ""
}

// Message reduces Err to a user-facing string.
func (s State) Message() string {
	switch {
	case s.Err == nil:
		return ""
	case errors.Is(s.Err, omdb.ErrNotFound):
		return "Movie details not found"
	case errors.Is(s.Err, omdb.ErrFetchFailed):
		return "Failed to load movie details"
	default:
		return s.Err.Error()
	}
}

// Controller fetches details whenever the selection changes. Selecting a
// new title cancels the fetch for the previous one.
type Controller struct {
	fetcher omdb.DetailFetcher
	latest  *fetch.Latest[omdb.MovieDetails]
}

// NewController returns a Controller backed by fetcher.
func NewController(fetcher omdb.DetailFetcher) *Controller {
	return &Controller{
		fetcher: fetcher,
		latest:  fetch.New[omdb.MovieDetails](),
	}
}

// Select starts loading details for id. An empty id clears the selection.
func (c *Controller) Select(ctx context.Context, id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		c.Clear()
		return
	}
	c.latest.Start(ctx, id, func(ctx context.Context) (omdb.MovieDetails, error) {
		return c.fetcher.Details(ctx, id)
	})
}

// Clear cancels any in-flight fetch and empties the state.
func (c *Controller) Clear() {
	c.latest.Reset("")
}

// State returns the latest published state. Details fetched for an earlier
// selection are never reported under the current ID.
func (c *Controller) State() State {
	snap := c.latest.Snapshot()
	st := State{ID: snap.Key, Err: snap.Err, Loading: snap.Loading}
	if snap.Value.ID == "" || snap.Value.ID == snap.Key {
		st.Movie = snap.Value
	}
	return st
}

// Changes is signalled whenever State may have changed.
func (c *Controller) Changes() <-chan struct{} {
	return c.latest.Changes()
}

// Close cancels the in-flight fetch, if any.
func (c *Controller) Close() {
	c.latest.Stop()
}
