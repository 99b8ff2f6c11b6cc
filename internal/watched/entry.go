package watched

import (
	"math"
	"strconv"
	"strings"

	"github.com/five82/popcorn/internal/omdb"
)

// MaxRating is the top of the user rating scale.
const MaxRating = 10

// Entry is a movie the user rated and added to the watched list.
type Entry struct {
	ID              string  `json:"imdbID"`
	Title           string  `json:"Title"`
	Year            string  `json:"Year"`
	Poster          string  `json:"Poster"`
	IMDBRating      float64 `json:"imdbRating"`
	Runtime         int     `json:"runtime"`
	UserRating      int     `json:"userRating"`
	RatingDecisions int     `json:"countRatingDecisions"`
}

// Draft is the pending rating for the open selection.
type Draft struct {
	ID        string
	Rating    int
	Decisions int
}

// NewDraft starts a draft for id with no rating and no decisions.
func NewDraft(id string) Draft {
	return Draft{ID: id}
}

// SetRating records a new pending rating, clamped to 0..MaxRating. Every
// change to a non-zero rating counts as one decision.
func (d *Draft) SetRating(rating int) {
	rating = max(0, min(rating, MaxRating))
	if rating == d.Rating {
		return
	}
	d.Rating = rating
	if rating > 0 {
		d.Decisions++
	}
}

// Adjust moves the pending rating by delta.
func (d *Draft) Adjust(delta int) {
	d.SetRating(d.Rating + delta)
}

// CanConfirm reports whether the draft holds a rating worth saving.
func (d Draft) CanConfirm() bool {
	return d.Rating > 0
}

// NewEntry builds the watched entry for details rated with draft. Missing or
// unparseable numeric fields become zero.
func NewEntry(details omdb.MovieDetails, draft Draft) Entry {
	id := details.ID
	if id == "" {
		id = draft.ID
	}
	return Entry{
		ID:              id,
		Title:           details.Title,
		Year:            details.Year,
		Poster:          details.Poster,
		IMDBRating:      ParseRating(details.IMDBRating),
		Runtime:         ParseRuntime(details.Runtime),
		UserRating:      draft.Rating,
		RatingDecisions: draft.Decisions,
	}
}

// ParseRating converts an OMDb rating such as "8.8" or "N/A".
func ParseRating(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseRuntime converts an OMDb runtime such as "148 min" to minutes.
func ParseRuntime(raw string) int {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
