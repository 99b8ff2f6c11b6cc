// Package state holds popcorn's application state: the search query, the
// selected title, and the watched list.
//
// # Store
//
// Store is the single owner of that state. The UI mutates it through
// SetQuery, Select, CloseSelection, AddWatched and DeleteWatched, and renders
// from Snapshot, which returns a deep copy guarded by an RWMutex.
//
// # Persistence
//
// Every change to the watched list is handed to the Persister before the
// mutating call returns, so after any add or delete the durable slot holds
// exactly the serialization of the in-memory list. A failed save keeps the
// in-memory change, records the error in Snapshot.LastError and returns it;
// the next successful save clears it.
//
// # Selection
//
// Select toggles: selecting the already selected title clears the selection,
// which mirrors clicking the same row twice.
//
// The zero Store is usable and never persists.
package state
