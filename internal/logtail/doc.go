// Package logtail reads the tail of popcorn's activity log for the in-app
// log overlay.
//
// Read keeps a ring buffer of the last maxLines lines, so memory stays
// bounded regardless of log size. A missing file is not an error; it just
// means nothing has been logged yet.
//
// Parse splits lines written by the standard logger with LstdFlags into a
// timestamp, a "source:" prefix (search, details, watched, app) and the
// message, and flags lines that report a failure so the overlay can
// highlight them. Filter narrows lines by a case-insensitive substring.
package logtail
