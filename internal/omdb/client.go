package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Error kinds surfaced by the client. Cancellation is reported as the
// context error and never as ErrFetchFailed.
var (
	ErrFetchFailed = errors.New("failed to fetch movies")
	ErrNotFound    = errors.New("no movie was found")
)

// Searcher runs free-text title searches.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Movie, error)
}

// DetailFetcher loads the full record for a single title.
type DetailFetcher interface {
	Details(ctx context.Context, id string) (MovieDetails, error)
}

var (
	_ Searcher      = (*Client)(nil)
	_ DetailFetcher = (*Client)(nil)
)

// Client talks to the OMDb HTTP API.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL   = "https://www.omdbapi.com/"
	defaultUserAgent = "popcorn/0.1"
	defaultTimeout   = 10 * time.Second
)

// NewClient builds a Client for baseURL authenticated with apiKey.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, fmt.Errorf("omdb api key is required")
	}
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		apiKey:  key,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Search returns the titles matching query.
func (c *Client) Search(ctx context.Context, query string) ([]Movie, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("s", query)
	var payload searchResponse
	if err := c.get(ctx, values, &payload); err != nil {
		return nil, err
	}
	if err := payload.envelope.err(); err != nil {
		return nil, err
	}
	return payload.Search, nil
}

// Details returns the full record for the title with the given IMDb id.
func (c *Client) Details(ctx context.Context, id string) (MovieDetails, error) {
	if c == nil {
		return MovieDetails{}, fmt.Errorf("client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return MovieDetails{}, fmt.Errorf("movie id required")
	}
	values := url.Values{}
	values.Set("i", id)
	var payload detailsResponse
	if err := c.get(ctx, values, &payload); err != nil {
		return MovieDetails{}, err
	}
	if err := payload.envelope.err(); err != nil {
		return MovieDetails{}, err
	}
	return payload.MovieDetails, nil
}

func (c *Client) get(ctx context.Context, values url.Values, dest any) error {
	values.Set("apikey", c.apiKey)
	reqURL := *c.baseURL
	reqURL.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: execute request: %v", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: api returned status %d", ErrFetchFailed, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: decode response: %v", ErrFetchFailed, err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", raw, err)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
