// Package app is popcorn's composition root.
//
// Run performs, in order:
//
//  1. Load config.toml and fail early when no OMDb API key is available
//  2. Load UI preferences (theme, collapsed boxes)
//  3. Redirect the standard logger to <data_dir>/popcorn.log so log output
//     never draws over the TUI
//  4. Open the bbolt database and, when load_watched is set, read the
//     watched list from it
//  5. Build the OMDb client and the search and details controllers on top of it
//  6. Build state.Store with the storage slot as its persister
//  7. Run the UI until the user quits or the context is cancelled
//
// Deferred calls stop in-flight requests and close the database on the way
// out, so a watched list saved by the last add or delete is never lost.
package app
