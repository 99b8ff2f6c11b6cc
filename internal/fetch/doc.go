// Package fetch provides a "latest wins" runner for cancellable background
// fetches driven by a changing input, such as a search box or a selection.
//
// A Latest runner owns at most one in-flight operation. Every Start cancels
// the previous operation before launching the next, and an operation whose
// context has been cancelled never publishes a result. Callers observe the
// runner by waiting on Changes and reading Snapshot, which keeps UI event
// loops free of locks held across callbacks.
package fetch
