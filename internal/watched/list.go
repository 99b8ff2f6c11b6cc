package watched

import (
	"encoding/json"
	"fmt"
	"math"
)

// List is the ordered watched list. It does not reject duplicate IDs;
// callers check Contains before adding.
type List []Entry

// Add returns the list with e appended.
func (l List) Add(e Entry) List {
	out := make(List, len(l), len(l)+1)
	copy(out, l)
	return append(out, e)
}

// Delete returns the list without the entry at index. Out of range
// indexes return an unchanged copy.
func (l List) Delete(index int) List {
	out := make(List, 0, len(l))
	for i, e := range l {
		if i == index {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Contains reports whether an entry with id exists.
func (l List) Contains(id string) bool {
	_, ok := l.Find(id)
	return ok
}

// Find returns the first entry with id.
func (l List) Find(id string) (Entry, bool) {
	for _, e := range l {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Clone returns an independent copy.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Stats summarizes the watched list.
type Stats struct {
	Count         int
	AvgIMDBRating float64
	AvgUserRating float64
	AvgRuntime    float64
}

// Summarize computes the per-field means, rounded to two decimals. Every
// mean of an empty list is 0.
func Summarize(l List) Stats {
	stats := Stats{Count: len(l)}
	if len(l) == 0 {
		return stats
	}
	var imdb, user, runtime float64
	for _, e := range l {
		imdb += e.IMDBRating
		user += float64(e.UserRating)
		runtime += float64(e.Runtime)
	}
	n := float64(len(l))
	stats.AvgIMDBRating = round2(imdb / n)
	stats.AvgUserRating = round2(user / n)
	stats.AvgRuntime = round2(runtime / n)
	return stats
}

// Mean returns the arithmetic mean of values rounded to two decimals, or 0
// for no values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return round2(sum / float64(len(values)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Marshal encodes the list in its persisted JSON form. A nil list encodes
// as an empty array.
func Marshal(l List) ([]byte, error) {
	if l == nil {
		l = List{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encode watched list: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a persisted list. Empty input and JSON null yield an
// empty list.
func Unmarshal(data []byte) (List, error) {
	if len(data) == 0 {
		return List{}, nil
	}
	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode watched list: %w", err)
	}
	if l == nil {
		l = List{}
	}
	return l, nil
}
