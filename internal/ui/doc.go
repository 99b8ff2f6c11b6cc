// Package ui is popcorn's Bubble Tea terminal interface.
//
// # Layout
//
//	🍿 popcorn  / search movies...                         Found 10 results
//	┌──── - Results (10) ────┐┌────────── - Watched (3) ──────────┐
//	│▶ ✓ Alien (1979)        ││MOVIES YOU WATCHED                  │
//	│    Aliens (1986)       ││# 3 movies  ⭐ 8.10  🌟 9.00  ⏳ 132 │
//	└────────────────────────┘└────────────────────────────────────┘
//	j/k move  space open  tab watched  enter search  ? help  q quit
//
// The right box shows the open movie when one is selected and the watched
// list otherwise. Either box collapses with [ or ], and the choice is kept
// in prefs.toml together with the theme.
//
// # Data flow
//
// Typing in the search input calls SearchSource.SetQuery on every edit;
// opening a movie calls DetailsSource.Select. Both run their fetches in the
// background and signal a Changes channel. The model waits on those channels
// with commands and pulls State() when signalled, so Update stays the single
// writer of everything rendered. The watched list and the selection live in
// state.Store, which persists every add and delete.
//
// # Key hooks
//
// Besides the fixed keyMap, views can attach key hooks that live exactly as
// long as the view. The enter hook is bound for the whole session: it focuses
// the search input and clears the query, or confirms the query when the input
// already has focus. Opening a movie binds an esc hook that closes it;
// closing the movie unbinds it. Hook names are case-insensitive.
//
// # Activity log
//
// L opens an overlay with the tail of the log file the app writes to while
// the TUI owns the terminal.
package ui
