package domain

import "encoding/json"

// Field is an optional patch value. Set distinguishes "leave unchanged"
// from "set to the zero value".
type Field[T any] struct {
	Set   bool
	Value T
}

// Some returns a set field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// UnmarshalJSON marks the field as set whenever the key is present, an
// explicit null included.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		var zero T
		f.Value = zero
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

// CampaignPatch is a partial CampaignData. Track and PaymentMethod each
// cover a pair of fields that must change together.
type CampaignPatch struct {
	Track            Field[*TrackDetails]   `json:"trackDetails"`
	SimilarArtists   Field[[]SimilarArtist] `json:"similarArtists"`
	StrategyType     Field[StrategyType]    `json:"strategyType"`
	Genres           Field[[]string]        `json:"genres"`
	TargetCountries  Field[[]string]        `json:"targetCountries"`
	AdStyle          Field[AdStyle]         `json:"adStyle"`
	AdTitle          Field[string]          `json:"adTitle"`
	AdDescription    Field[string]          `json:"adDescription"`
	SelectedVideo    Field[*string]         `json:"selectedVideo"`
	SelectedTopAds   Field[[]string]        `json:"selectedTopAds"`
	Budget           Field[float64]         `json:"budget"`
	PaymentMethod    Field[*PaymentMethod]  `json:"-"`
	ReviewedCampaign Field[bool]            `json:"-"`
	Objective        Field[string]          `json:"objective"`
}
