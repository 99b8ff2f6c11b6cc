package omdb

import (
	"fmt"
	"strings"
)

// Movie is a single search hit.
type Movie struct {
	ID     string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Poster string `json:"Poster"`
}

// MovieDetails mirrors the payload returned for an i=<id> lookup.
type MovieDetails struct {
	ID         string `json:"imdbID"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Poster     string `json:"Poster"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Plot       string `json:"Plot"`
	Actors     string `json:"Actors"`
	Director   string `json:"Director"`
	IMDBRating string `json:"imdbRating"`
}

// envelope carries the status fields every OMDb payload shares.
type envelope struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

func (e envelope) err() error {
	if !strings.EqualFold(strings.TrimSpace(e.Response), "false") {
		return nil
	}
	if msg := strings.TrimSpace(e.Error); msg != "" {
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	}
	return ErrNotFound
}

type searchResponse struct {
	envelope
	Search       []Movie `json:"Search"`
	TotalResults string  `json:"totalResults"`
}

type detailsResponse struct {
	envelope
	MovieDetails
}

// HasPoster reports whether the API returned a usable poster URL.
func HasPoster(poster string) bool {
	p := strings.TrimSpace(poster)
	return p != "" && !strings.EqualFold(p, "N/A")
}
