package search

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidPayload is returned when the response body is not valid JSON.
var ErrInvalidPayload = errors.New("search response is not valid JSON")

// Track is one catalogue hit.
type Track struct {
	Artist     string
	Name       string
	Collection string
}

// Tracks extracts the artist, track and collection names from every entry of
// the "results" array. Entries without a track name are skipped.
func Tracks(raw []byte) ([]Track, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidPayload
	}
	var out []Track
	gjson.GetBytes(raw, "results").ForEach(func(_, entry gjson.Result) bool {
		name := entry.Get("trackName")
		if name.Type != gjson.String {
			return true
		}
		out = append(out, Track{
			Artist:     entry.Get("artistName").String(),
			Name:       name.String(),
			Collection: entry.Get("collectionName").String(),
		})
		return true
	})
	return out, nil
}

// ResultCount returns the "resultCount" field, or -1 when absent.
func ResultCount(raw []byte) int64 {
	r := gjson.GetBytes(raw, "resultCount")
	if r.Type != gjson.Number {
		return -1
	}
	return r.Int()
}
