package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// SearchKind selects what the catalog search returns.
type SearchKind string

const (
	SearchTrack  SearchKind = "track"
	SearchArtist SearchKind = "artist"

	// MinSearchQuery is the shortest query sent to the catalog.
	MinSearchQuery = 3
)

var (
	ErrPrimaryArtistRequired = errors.New("track has several artists, pick the one you are")
	ErrPrimaryArtistUnknown  = errors.New("primary artist is not credited on the track")
)

// ArtistRef is a credited artist of a track.
type ArtistRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// SearchResult is a catalog match. Track-only fields are empty for artists.
type SearchResult struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ImageURL    string      `json:"imageUrl"`
	DurationMs  int         `json:"durationMs,omitempty"`
	Duration    string      `json:"duration,omitempty"`
	AlbumName   string      `json:"albumName,omitempty"`
	ReleaseDate string      `json:"releaseDate,omitempty"`
	ExternalURL string      `json:"externalUrl,omitempty"`
	Artists     []ArtistRef `json:"artists,omitempty"`
}

// NeedsArtistChoice reports whether the user must say which credited
// artist they are.
func (r SearchResult) NeedsArtistChoice() bool {
	return len(r.Artists) > 1
}

// SelectTrack snapshots a track search result into TrackDetails. For tracks
// credited to several artists primaryArtistID must name one of them.
func SelectTrack(track SearchResult, primaryArtistID string) (*TrackDetails, error) {
	names := make([]string, 0, len(track.Artists))
	for _, a := range track.Artists {
		names = append(names, a.Name)
	}
	td := &TrackDetails{
		ID:                track.ID,
		Name:              track.Name,
		ArtistDisplayName: strings.Join(names, ", "),
		ImageURL:          track.ImageURL,
		AlbumName:         track.AlbumName,
		DurationMs:        track.DurationMs,
		ReleaseDate:       track.ReleaseDate,
		ExternalURL:       track.ExternalURL,
	}
	switch {
	case len(track.Artists) == 0:
	case !track.NeedsArtistChoice():
		td.PrimaryArtistID = track.Artists[0].ID
	case primaryArtistID == "":
		return nil, ErrPrimaryArtistRequired
	default:
		i := slices.IndexFunc(track.Artists, func(a ArtistRef) bool { return a.ID == primaryArtistID })
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrPrimaryArtistUnknown, primaryArtistID)
		}
		td.PrimaryArtistID = track.Artists[i].ID
		td.PrimaryArtistName = track.Artists[i].Name
	}
	return td, nil
}

// FormatDuration renders milliseconds as M:SS.
func FormatDuration(ms int) string {
	return fmt.Sprintf("%d:%02d", ms/60000, (ms%60000)/1000)
}
