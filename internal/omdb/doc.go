// Package omdb provides an HTTP client for the OMDb movie database API.
//
// Two lookups are supported: a title search (s=<query>) returning short
// Movie records, and a detail lookup (i=<imdb id>) returning MovieDetails.
// Every request carries the configured API key; the key is injected by the
// caller and never embedded in source.
//
// Failures are classified with sentinel errors so callers can reduce them to
// a single user-facing message:
//
//   - ErrFetchFailed: transport errors, HTTP status >= 400, undecodable bodies
//   - ErrNotFound: the API answered with Response "False"
//
// A request aborted through its context returns the context error instead,
// so cancellation can be told apart from a failure with errors.Is.
package omdb
