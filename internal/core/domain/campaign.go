package domain

import "slices"

// StrategyType is the promotion approach of a campaign. The empty value
// stands for "not chosen".
type StrategyType string

const (
	StrategyPlaylist       StrategyType = "playlist"
	StrategyDirect         StrategyType = "direct"
	StrategyArtistBranding StrategyType = "artist-branding"
)

// Valid reports whether s is one of the known strategies.
func (s StrategyType) Valid() bool {
	switch s {
	case StrategyPlaylist, StrategyDirect, StrategyArtistBranding:
		return true
	}
	return false
}

// AdStyle selects how the ad creative is produced. The empty value stands
// for "not chosen".
type AdStyle string

const (
	AdStyleAIGenerated AdStyle = "ai-generated"
	AdStyleCustom      AdStyle = "custom"
)

// Valid reports whether a is one of the known ad styles.
func (a AdStyle) Valid() bool {
	return a == AdStyleAIGenerated || a == AdStyleCustom
}

const (
	// MinBudget and MaxBudget bound the daily budget in USD.
	MinBudget = 5
	MaxBudget = 100
	// DefaultBudget is the daily budget of a fresh campaign.
	DefaultBudget = 20
	// MaxGenres caps the genre list.
	MaxGenres = 3

	defaultObjective = "stream-growth"
)

// TrackDetails is the denormalized snapshot of the selected track.
type TrackDetails struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	ArtistDisplayName string `json:"artistDisplayName"`
	PrimaryArtistID   string `json:"primaryArtistId"`
	PrimaryArtistName string `json:"primaryArtistName,omitempty"`

	// PrimaryArtistImage is looked up when the user disambiguates a
	// multi-artist track.
	PrimaryArtistImage string `json:"primaryArtistImage,omitempty"`
	ImageURL           string `json:"imageUrl"`
	AlbumName          string `json:"albumName"`
	DurationMs         int    `json:"durationMs"`
	ReleaseDate        string `json:"releaseDate"`
	ExternalURL        string `json:"externalUrl"`
}

// PrimaryArtist returns the name the campaign promotes: the disambiguated
// primary artist when set, the full credit line otherwise.
func (t TrackDetails) PrimaryArtist() string {
	if t.PrimaryArtistName != "" {
		return t.PrimaryArtistName
	}
	return t.ArtistDisplayName
}

// CardSummary describes the saved card shown on the budget step.
type CardSummary struct {
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
}

// CampaignData is the in-progress campaign of one wizard session.
//
// TrackDetails is non-nil if and only if SelectedTrackID is non-nil, len(Genres)
// never exceeds MaxGenres and ReviewedCampaign is only true while
// PaymentMethodID is set. The Store does not enforce these; the edit helpers
// and the Session do.
type CampaignData struct {
	SelectedTrackID *string         `json:"selectedTrackId"`
	TrackDetails    *TrackDetails   `json:"trackDetails"`
	SimilarArtists  []SimilarArtist `json:"similarArtists"`

	StrategyType StrategyType `json:"strategyType"`
	Genres       []string     `json:"genres"`

	TargetCountries []string `json:"targetCountries"`
	AdStyle         AdStyle  `json:"adStyle"`
	AdTitle         string   `json:"adTitle"`
	AdDescription   string   `json:"adDescription"`
	SelectedVideo   *string  `json:"selectedVideo"`
	SelectedTopAds  []string `json:"selectedTopAds"`

	Budget float64 `json:"budget"`

	PaymentMethodID  *string      `json:"paymentMethodId"`
	CustomerID       *string      `json:"customerId"`
	PaymentCard      *CardSummary `json:"paymentCard,omitempty"`
	ReviewedCampaign bool         `json:"reviewedCampaign"`

	Objective string `json:"objective"`
}

// NewCampaignData returns the defaults a wizard session starts with.
func NewCampaignData() *CampaignData {
	return &CampaignData{
		SimilarArtists:  []SimilarArtist{},
		StrategyType:    StrategyPlaylist,
		Genres:          []string{},
		TargetCountries: []string{},
		AdStyle:         AdStyleAIGenerated,
		SelectedTopAds:  []string{},
		Budget:          DefaultBudget,
		Objective:       defaultObjective,
	}
}

// Clone returns a copy that shares no slices with c. Pointer fields are
// copied by reference; snapshots are treated as immutable.
func (c *CampaignData) Clone() *CampaignData {
	cp := *c
	cp.SimilarArtists = slices.Clone(c.SimilarArtists)
	cp.Genres = slices.Clone(c.Genres)
	cp.TargetCountries = slices.Clone(c.TargetCountries)
	cp.SelectedTopAds = slices.Clone(c.SelectedTopAds)
	return &cp
}

// HasPaymentMethod reports whether a card has been saved.
func (c *CampaignData) HasPaymentMethod() bool {
	return c.PaymentMethodID != nil && *c.PaymentMethodID != ""
}

// HasCustomer reports whether the payment provider customer is known.
func (c *CampaignData) HasCustomer() bool {
	return c.CustomerID != nil && *c.CustomerID != ""
}

// TrackName returns the selected track name or "".
func (c *CampaignData) TrackName() string {
	if c.TrackDetails == nil {
		return ""
	}
	return c.TrackDetails.Name
}
