// Package storage keeps popcorn's durable local state in a single bbolt file.
//
// The store is a flat key-value bucket. WatchedSlot writes the JSON-encoded
// watched list under the fixed key "watched" every time the list changes and
// reads it back at startup.
package storage
