package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundcamps/internal/core/domain"
)

func TestStoreDefaults(t *testing.T) {
	d := NewStore(nil).Read()
	assert.Equal(t, domain.StrategyPlaylist, d.StrategyType)
	assert.Equal(t, domain.AdStyleAIGenerated, d.AdStyle)
	assert.Equal(t, float64(domain.DefaultBudget), d.Budget)
	assert.NotNil(t, d.Genres)
	assert.Nil(t, d.SelectedTrackID)
	assert.False(t, d.ReviewedCampaign)
}

func TestStoreUpdateWithoutChangeKeepsSnapshot(t *testing.T) {
	s := NewStore(nil)
	calls := 0
	s.Subscribe(func(*domain.CampaignData) { calls++ })
	before := s.Read()

	assert.False(t, s.Update(domain.CampaignPatch{}))
	assert.False(t, s.Update(domain.CampaignPatch{
		Budget:       domain.Some(before.Budget),
		StrategyType: domain.Some(before.StrategyType),
		Genres:       domain.Some([]string{}),
	}))

	assert.Same(t, before, s.Read())
	assert.Zero(t, calls)
}

func TestStoreUpdatePublishes(t *testing.T) {
	s := NewStore(nil)
	before := s.Read()
	var got []*domain.CampaignData
	unsub := s.Subscribe(func(d *domain.CampaignData) { got = append(got, d) })

	require.True(t, s.Update(domain.CampaignPatch{Budget: domain.Some(42.0)}))
	require.Len(t, got, 1)
	assert.Same(t, s.Read(), got[0])
	assert.Equal(t, 42.0, s.Read().Budget)
	assert.Equal(t, float64(domain.DefaultBudget), before.Budget, "old snapshot untouched")

	unsub()
	require.True(t, s.Update(domain.CampaignPatch{Budget: domain.Some(43.0)}))
	assert.Len(t, got, 1)
}

func TestStoreDoesNotAliasPatchSlices(t *testing.T) {
	s := NewStore(nil)
	genres := []string{"pop", "rock"}
	s.Update(domain.CampaignPatch{Genres: domain.Some(genres)})
	genres[0] = "metal"
	assert.Equal(t, []string{"pop", "rock"}, s.Read().Genres)

	s.Update(domain.CampaignPatch{TargetCountries: domain.Some[[]string](nil)})
	assert.NotNil(t, s.Read().TargetCountries)
}

func TestStoreTrackKeepsIDInSync(t *testing.T) {
	s := NewStore(nil)
	s.Update(domain.CampaignPatch{Track: domain.Some(&domain.TrackDetails{ID: "trk_1", Name: "Low Tide"})})

	d := s.Read()
	require.NotNil(t, d.SelectedTrackID)
	assert.Equal(t, "trk_1", *d.SelectedTrackID)
	assert.Equal(t, "Low Tide", d.TrackName())

	s.Update(domain.CampaignPatch{Track: domain.Some[*domain.TrackDetails](nil)})
	assert.Nil(t, s.Read().SelectedTrackID)
	assert.Nil(t, s.Read().TrackDetails)
}

func TestStorePaymentMethod(t *testing.T) {
	s := NewStore(nil)
	pm := &domain.PaymentMethod{
		PaymentMethodID: "pm_1",
		CustomerID:      "cus_1",
		Card:            domain.CardSummary{Brand: "visa", Last4: "4242", ExpMonth: 12, ExpYear: 2030},
	}
	require.True(t, s.Update(domain.CampaignPatch{PaymentMethod: domain.Some(pm)}))
	assert.False(t, s.Update(domain.CampaignPatch{PaymentMethod: domain.Some(pm)}), "same card is not a change")

	d := s.Read()
	assert.True(t, d.HasPaymentMethod())
	assert.True(t, d.HasCustomer())
	assert.Equal(t, "4242", d.PaymentCard.Last4)

	require.True(t, s.Update(domain.CampaignPatch{PaymentMethod: domain.Some[*domain.PaymentMethod](nil)}))
	d = s.Read()
	assert.Nil(t, d.PaymentMethodID)
	assert.Nil(t, d.CustomerID)
	assert.Nil(t, d.PaymentCard)
}
