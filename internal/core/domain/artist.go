package domain

import "encoding/json"

// ArtistKind tags a SimilarArtist entry.
type ArtistKind string

const (
	ArtistBareID   ArtistKind = "bare-id"
	ArtistEnriched ArtistKind = "enriched"
)

// SimilarArtist is a reference artist picked by the user. Bare entries only
// carry the catalog id; enriched entries also carry display data.
type SimilarArtist struct {
	Kind     ArtistKind `json:"kind"`
	ID       string     `json:"id"`
	Name     string     `json:"name,omitempty"`
	ImageURL string     `json:"imageUrl,omitempty"`
}

// BareArtist builds an id-only entry.
func BareArtist(id string) SimilarArtist {
	return SimilarArtist{Kind: ArtistBareID, ID: id}
}

// EnrichedArtist builds an entry with display data.
func EnrichedArtist(id, name, imageURL string) SimilarArtist {
	return SimilarArtist{Kind: ArtistEnriched, ID: id, Name: name, ImageURL: imageURL}
}

// DisplayName normalizes both variants to a printable name.
func (a SimilarArtist) DisplayName() string {
	if a.Kind == ArtistEnriched && a.Name != "" {
		return a.Name
	}
	return a.ID
}

// UnmarshalJSON accepts either a bare JSON string (the id) or an object.
// Objects without an explicit kind are enriched when they carry a name.
func (a *SimilarArtist) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		*a = BareArtist(id)
		return nil
	}
	type raw SimilarArtist
	var r raw
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	if r.Kind == "" {
		r.Kind = ArtistBareID
		if r.Name != "" {
			r.Kind = ArtistEnriched
		}
	}
	*a = SimilarArtist(r)
	return nil
}
