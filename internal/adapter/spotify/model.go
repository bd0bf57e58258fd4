package spotify

import "soundcamps/internal/core/domain"

type image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type externalURLs struct {
	Spotify string `json:"spotify"`
}

type artist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Images       []image      `json:"images"`
	ExternalURLs externalURLs `json:"external_urls"`
}

type album struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Images      []image `json:"images"`
	ReleaseDate string  `json:"release_date"`
}

type track struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	DurationMs   int          `json:"duration_ms"`
	Album        album        `json:"album"`
	Artists      []artist     `json:"artists"`
	ExternalURLs externalURLs `json:"external_urls"`
}

type searchResponse struct {
	Tracks struct {
		Items []track `json:"items"`
	} `json:"tracks"`
	Artists struct {
		Items []artist `json:"items"`
	} `json:"artists"`
}

func (t track) result() domain.SearchResult {
	r := domain.SearchResult{
		ID:          t.ID,
		Name:        t.Name,
		ImageURL:    bestImage(t.Album.Images),
		DurationMs:  t.DurationMs,
		AlbumName:   t.Album.Name,
		ReleaseDate: t.Album.ReleaseDate,
		ExternalURL: t.ExternalURLs.Spotify,
		Artists:     make([]domain.ArtistRef, 0, len(t.Artists)),
	}
	if t.DurationMs > 0 {
		r.Duration = domain.FormatDuration(t.DurationMs)
	}
	for _, a := range t.Artists {
		r.Artists = append(r.Artists, domain.ArtistRef{ID: a.ID, Name: a.Name})
	}
	return r
}

// bestImage picks the widest picture. Images without dimensions count as
// zero width, so the first one wins among them.
func bestImage(images []image) string {
	best := -1
	for i, img := range images {
		if best < 0 || img.Width > images[best].Width {
			best = i
		}
	}
	if best < 0 {
		return ""
	}
	return images[best].URL
}
