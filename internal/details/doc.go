// Package details loads the full record for the selected title.
package details
