package domain

import "time"

// PaymentMethodRequest registers a tokenized card for a customer.
type PaymentMethodRequest struct {
	PaymentMethodID string
	Email           string
	Name            string
}

// PaymentMethod is the result of a successful registration.
type PaymentMethod struct {
	PaymentMethodID string      `json:"paymentMethodId"`
	CustomerID      string      `json:"customerId"`
	Card            CardSummary `json:"card"`
}

// ChargeRequest authorizes the daily budget. AmountUSD is converted to
// cents by the gateway.
type ChargeRequest struct {
	PaymentMethodID string
	CustomerID      string
	AmountUSD       float64
	Description     string
	CampaignID      string
}

// ChargeResult is the gateway answer. Success false carries Error.
type ChargeResult struct {
	Success      bool   `json:"success"`
	ChargeID     string `json:"chargeId,omitempty"`
	Status       string `json:"status,omitempty"`
	ClientSecret string `json:"clientSecret,omitempty"`
	Error        string `json:"error,omitempty"`
}

// AdSettings is the ad-creation part of the notification payload.
type AdSettings struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Style           AdStyle  `json:"style"`
	TargetCountries []string `json:"targetCountries"`
	SelectedVideo   *string  `json:"selectedVideo"`
	SelectedTopAds  []string `json:"selectedTopAds"`
}

// PaymentConfirmation is the payment part of the notification payload.
type PaymentConfirmation struct {
	PaymentMethodID string  `json:"paymentMethodId"`
	CustomerID      string  `json:"customerId"`
	ChargeID        string  `json:"chargeId"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
}

// CampaignPayload is the full denormalized campaign sent to the automation
// webhook after a successful charge.
type CampaignPayload struct {
	ID              string              `json:"id"`
	CreatedAt       time.Time           `json:"createdAt"`
	TrackDetails    *TrackDetails       `json:"trackDetails"`
	StrategyType    StrategyType        `json:"strategyType"`
	AdSettings      AdSettings          `json:"adSettings"`
	Budget          float64             `json:"budget"`
	Genres          []string            `json:"genres"`
	SelectedArtists []SimilarArtist     `json:"selectedArtists"`
	Objective       string              `json:"objective"`
	Payment         PaymentConfirmation `json:"payment"`
}

// NewCampaignPayload assembles the payload from a snapshot and a charge.
func NewCampaignPayload(id string, data *CampaignData, charge ChargeResult, now time.Time) CampaignPayload {
	p := CampaignPayload{
		ID:           id,
		CreatedAt:    now.UTC(),
		TrackDetails: data.TrackDetails,
		StrategyType: data.StrategyType,
		AdSettings: AdSettings{
			Title:           data.AdTitle,
			Description:     data.AdDescription,
			Style:           data.AdStyle,
			TargetCountries: data.TargetCountries,
			SelectedVideo:   data.SelectedVideo,
			SelectedTopAds:  data.SelectedTopAds,
		},
		Budget:          data.Budget,
		Genres:          data.Genres,
		SelectedArtists: data.SimilarArtists,
		Objective:       data.Objective,
		Payment: PaymentConfirmation{
			ChargeID: charge.ChargeID,
			Amount:   data.Budget,
			Status:   "succeeded",
		},
	}
	if data.PaymentMethodID != nil {
		p.Payment.PaymentMethodID = *data.PaymentMethodID
	}
	if data.CustomerID != nil {
		p.Payment.CustomerID = *data.CustomerID
	}
	return p
}

// NotifyReceipt is the outcome of a best-effort notification. It is data,
// never an error: a failed delivery does not fail the launch.
type NotifyReceipt struct {
	Delivered  bool
	StatusCode int
	// CampaignID is set when the receiver assigned its own identifier.
	CampaignID string
}

// LaunchedCampaign is the confirmation view of a launched campaign.
type LaunchedCampaign struct {
	ID           string       `json:"campaignId"`
	TrackName    string       `json:"trackName"`
	ArtistName   string       `json:"artistName"`
	ImageURL     string       `json:"imageUrl"`
	Budget       float64      `json:"budget"`
	StrategyType StrategyType `json:"strategyType"`
	ChargeID     string       `json:"chargeId"`
	Notified     bool         `json:"notified"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// NewLaunchedCampaign builds the confirmation from the submitted snapshot.
func NewLaunchedCampaign(id string, data *CampaignData, chargeID string, notified bool, now time.Time) LaunchedCampaign {
	lc := LaunchedCampaign{
		ID:           id,
		Budget:       data.Budget,
		StrategyType: data.StrategyType,
		ChargeID:     chargeID,
		Notified:     notified,
		CreatedAt:    now.UTC(),
	}
	if lc.StrategyType == "" {
		lc.StrategyType = StrategyPlaylist
	}
	if td := data.TrackDetails; td != nil {
		lc.TrackName = td.Name
		lc.ArtistName = td.PrimaryArtist()
		lc.ImageURL = td.ImageURL
	}
	return lc
}
