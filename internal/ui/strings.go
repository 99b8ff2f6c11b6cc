package ui

import (
	"fmt"
	"strings"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}

// orNA replaces an empty OMDb field with its own placeholder.
func orNA(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "N/A"
	}
	return value
}

// movieLabel renders "Title (Year)".
func movieLabel(title, year string) string {
	title = strings.TrimSpace(title)
	year = strings.TrimSpace(year)
	if year == "" {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, year)
}

// ratingBar draws filled and empty stars for a rating out of scale.
func ratingBar(rating, scale int) string {
	rating = max(0, min(rating, scale))
	return strings.Repeat("★", rating) + strings.Repeat("☆", scale-rating)
}

// formatAverage prints a statistic with two decimals.
func formatAverage(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// formatRuntime prints minutes, or N/A when unknown.
func formatRuntime(minutes float64) string {
	if minutes <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.0f min", minutes)
}

// resultsLabel is the header counter.
func resultsLabel(n int) string {
	if n == 1 {
		return "Found 1 result"
	}
	return fmt.Sprintf("Found %d results", n)
}

// ternary returns a if cond is true, otherwise b.
func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
