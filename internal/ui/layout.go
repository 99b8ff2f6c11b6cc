package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which the results box takes half
	// the screen instead of two fifths.
	LayoutCompactWidth = 100

	// LayoutExtraWideWidth is the width from which the results box shrinks
	// to three tenths.
	LayoutExtraWideWidth = 160
)

// Chrome sizes.
const (
	headerHeight = 1
	footerHeight = 1
)

// Log overlay limits.
const (
	// LogTailLines is the number of activity log lines loaded into the overlay.
	LogTailLines = 500

	// LogReadTimeout bounds a single read of the log file.
	LogReadTimeout = 2 * time.Second
)

// defaultWindowTitle is shown whenever no movie is open.
const defaultWindowTitle = "popcorn"

// searchCharLimit caps the search input.
const searchCharLimit = 80
