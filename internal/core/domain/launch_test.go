package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLaunchedCampaignUsesPrimaryArtist(t *testing.T) {
	data := NewCampaignData()
	data.TrackDetails = &TrackDetails{
		ID:                "trk_2",
		Name:              "Neon Psalms",
		ArtistDisplayName: "Ardent, Kilo June",
		PrimaryArtistName: "Kilo June",
	}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	lc := NewLaunchedCampaign("campaign_1", data, "pi_1", true, now)
	assert.Equal(t, "Kilo June", lc.ArtistName)
	assert.Equal(t, "Neon Psalms", lc.TrackName)
	assert.Equal(t, time.UTC, lc.CreatedAt.Location())

	data.TrackDetails.PrimaryArtistName = ""
	lc = NewLaunchedCampaign("campaign_1", data, "pi_1", true, now)
	assert.Equal(t, "Ardent, Kilo June", lc.ArtistName)
}
