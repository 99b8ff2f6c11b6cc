// Package watched models the user's watched list: entries created from rated
// movie details, the pending rating draft for the open selection, aggregate
// statistics, and the JSON form used for persistence.
//
// Averages of an empty list are defined as 0 rather than NaN so callers can
// render them without special cases.
package watched
