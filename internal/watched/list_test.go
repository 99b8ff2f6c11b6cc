package watched

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	require.Equal(t, 9.0, Mean([]float64{8, 10}))
	require.Equal(t, 0.0, Mean(nil))
	require.Equal(t, 3.33, Mean([]float64{3, 3, 4}))
}

func TestSummarize(t *testing.T) {
	require.Equal(t, Stats{}, Summarize(nil))

	l := List{
		{ID: "a", IMDBRating: 8, UserRating: 10, Runtime: 120},
		{ID: "b", IMDBRating: 7.5, UserRating: 7, Runtime: 95},
		{ID: "c", IMDBRating: 6.1, UserRating: 5, Runtime: 101},
	}
	require.Equal(t, Stats{
		Count:         3,
		AvgIMDBRating: 7.2,
		AvgUserRating: 7.33,
		AvgRuntime:    105.33,
	}, Summarize(l))
}

func TestList_AddPermitsDuplicates(t *testing.T) {
	var l List
	l = l.Add(Entry{ID: "tt1"})
	l = l.Add(Entry{ID: "tt1"})
	require.Len(t, l, 2)
	require.True(t, l.Contains("tt1"))
	require.False(t, l.Contains("tt2"))
}

func TestList_AddDoesNotAliasOriginal(t *testing.T) {
	base := make(List, 1, 4)
	base[0] = Entry{ID: "a"}
	l1 := base.Add(Entry{ID: "b"})
	l2 := base.Add(Entry{ID: "c"})
	require.Equal(t, "b", l1[1].ID)
	require.Equal(t, "c", l2[1].ID)
}

func TestList_DeleteRemovesExactlyOneAndKeepsOrder(t *testing.T) {
	l := List{{ID: "a"}, {ID: "dup", UserRating: 1}, {ID: "b"}, {ID: "dup", UserRating: 2}, {ID: "c"}}

	out := l.Delete(1)
	require.Equal(t, List{{ID: "a"}, {ID: "b"}, {ID: "dup", UserRating: 2}, {ID: "c"}}, out)
	require.Len(t, l, 5, "original must be untouched")

	require.Equal(t, l, l.Delete(99))
	require.Equal(t, l, l.Delete(-1))
}

func TestList_Find(t *testing.T) {
	l := List{{ID: "a", UserRating: 4}, {ID: "a", UserRating: 9}}
	e, ok := l.Find("a")
	require.True(t, ok)
	require.Equal(t, 4, e.UserRating)

	_, ok = l.Find("zzz")
	require.False(t, ok)
}

func TestMarshalUnmarshal(t *testing.T) {
	data, err := Marshal(nil)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))

	l := List{{ID: "tt1", Title: "A", Year: "1999", Poster: "p", IMDBRating: 8.1, Runtime: 136, UserRating: 9, RatingDecisions: 3}}
	data, err = Marshal(l)
	require.NoError(t, err)
	require.JSONEq(t, `[{"imdbID":"tt1","Title":"A","Year":"1999","Poster":"p","imdbRating":8.1,"runtime":136,"userRating":9,"countRatingDecisions":3}]`, string(data))

	back, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, l, back)

	empty, err := Unmarshal([]byte("null"))
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	_, err = Unmarshal([]byte("{"))
	require.Error(t, err)
}
