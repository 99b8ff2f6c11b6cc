// Package search drives title searches from a changing query string.
//
// Queries shorter than MinQueryLength (after trimming) clear the results
// without a request. Longer queries start a request and cancel the one
// issued for the previous query, so only the most recent query can decide
// the final state. Cancellation is never reported as an error.
package search
