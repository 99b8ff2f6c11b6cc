package watched

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/five82/popcorn/internal/omdb"
)

func TestDraft_CountsNonZeroRatingChanges(t *testing.T) {
	d := NewDraft("tt1")
	require.False(t, d.CanConfirm())

	d.SetRating(7)
	d.SetRating(7) // unchanged, not a decision
	d.SetRating(9)
	d.Adjust(-1)
	d.SetRating(0) // clearing is not a decision
	d.SetRating(5)

	require.Equal(t, 5, d.Rating)
	require.Equal(t, 4, d.Decisions)
	require.True(t, d.CanConfirm())
}

func TestDraft_Clamps(t *testing.T) {
	d := NewDraft("tt1")
	d.SetRating(42)
	require.Equal(t, MaxRating, d.Rating)
	d.Adjust(5)
	require.Equal(t, MaxRating, d.Rating)
	require.Equal(t, 1, d.Decisions)
	d.SetRating(-3)
	require.Equal(t, 0, d.Rating)
}

func TestNewEntry_ParsesNumbers(t *testing.T) {
	details := omdb.MovieDetails{
		ID:         "tt1375666",
		Title:      "Inception",
		Year:       "2010",
		Poster:     "https://img/x.jpg",
		Runtime:    "148 min",
		IMDBRating: "8.8",
	}
	d := NewDraft("tt1375666")
	d.SetRating(9)
	d.SetRating(10)

	e := NewEntry(details, d)
	require.Equal(t, Entry{
		ID:              "tt1375666",
		Title:           "Inception",
		Year:            "2010",
		Poster:          "https://img/x.jpg",
		IMDBRating:      8.8,
		Runtime:         148,
		UserRating:      10,
		RatingDecisions: 2,
	}, e)
}

func TestNewEntry_MissingFieldsBecomeZero(t *testing.T) {
	e := NewEntry(omdb.MovieDetails{Runtime: "N/A", IMDBRating: "N/A"}, NewDraft("tt9"))
	require.Equal(t, "tt9", e.ID)
	require.Zero(t, e.Runtime)
	require.Zero(t, e.IMDBRating)

	e = NewEntry(omdb.MovieDetails{ID: "tt8"}, Draft{})
	require.Zero(t, e.Runtime)
}

func TestParseRuntimeAndRating(t *testing.T) {
	require.Equal(t, 90, ParseRuntime(" 90 min "))
	require.Equal(t, 0, ParseRuntime(""))
	require.Equal(t, 0, ParseRuntime("-5 min"))
	require.Equal(t, 7.5, ParseRating(" 7.5"))
	require.Equal(t, 0.0, ParseRating("NaN"))
	require.Equal(t, 0.0, ParseRating(""))
}
