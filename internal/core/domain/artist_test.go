package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarArtistJSON(t *testing.T) {
	var list []SimilarArtist
	require.NoError(t, json.Unmarshal([]byte(`[
		"art_1",
		{"id":"art_2","name":"Mara Vel","imageUrl":"https://img/m.jpg"},
		{"id":"art_3"}
	]`), &list))

	require.Len(t, list, 3)
	assert.Equal(t, BareArtist("art_1"), list[0])
	assert.Equal(t, EnrichedArtist("art_2", "Mara Vel", "https://img/m.jpg"), list[1])
	assert.Equal(t, ArtistBareID, list[2].Kind)

	assert.Equal(t, "art_1", list[0].DisplayName())
	assert.Equal(t, "Mara Vel", list[1].DisplayName())
}

func TestCampaignPatchJSON(t *testing.T) {
	var p CampaignPatch
	require.NoError(t, json.Unmarshal([]byte(`{"budget":0,"selectedVideo":null,"genres":["pop"]}`), &p))

	assert.True(t, p.Budget.Set)
	assert.Zero(t, p.Budget.Value)
	assert.True(t, p.SelectedVideo.Set)
	assert.Nil(t, p.SelectedVideo.Value)
	assert.Equal(t, Some([]string{"pop"}), p.Genres)

	assert.False(t, p.AdTitle.Set)
	assert.False(t, p.Track.Set)
}
