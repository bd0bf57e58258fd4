package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"soundcamps/internal/core/domain"
	"soundcamps/internal/core/port"
)

func TestSearchShortQuerySkipsCatalog(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.Search(context.Background(), " ab ", domain.SearchTrack)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.NotNil(t, res)
}

func TestSearchDefaultsToTracks(t *testing.T) {
	f := newFixture(t)
	want := []domain.SearchResult{{ID: "trk_1", Name: "Midnight Drive"}}
	f.catalog.EXPECT().Search(mock.Anything, "midnight", domain.SearchTrack).Return(want, nil)

	res, err := f.uc.Search(context.Background(), "midnight", "")
	require.NoError(t, err)
	assert.Equal(t, want, res)
}

func TestSearchWrapsCatalogErrors(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().Search(mock.Anything, "nova", domain.SearchArtist).Return(nil, port.ErrNotConfigured)

	_, err := f.uc.Search(context.Background(), "nova", domain.SearchArtist)
	require.ErrorIs(t, err, port.ErrNotConfigured)
}

func TestSelectTrackSingleArtist(t *testing.T) {
	f := newFixture(t)
	s := f.start(t)
	track := domain.SearchResult{
		ID:      "trk_1",
		Name:    "Midnight Drive",
		Artists: []domain.ArtistRef{{ID: "art_1", Name: "Nova Lane"}},
	}

	v, err := f.uc.SelectTrack(context.Background(), s.ID(), track, "")
	require.NoError(t, err)
	require.NotNil(t, v.Data.SelectedTrackID)
	assert.Equal(t, "trk_1", *v.Data.SelectedTrackID)
	assert.Equal(t, "art_1", v.Data.TrackDetails.PrimaryArtistID)
	assert.True(t, v.StepValid)
}

func TestSelectTrackMultiArtistLooksUpImage(t *testing.T) {
	track := domain.SearchResult{
		ID:   "trk_2",
		Name: "Neon Psalms",
		Artists: []domain.ArtistRef{
			{ID: "art_1", Name: "Ardent"},
			{ID: "art_2", Name: "Kilo June"},
		},
	}

	t.Run("image found", func(t *testing.T) {
		f := newFixture(t)
		s := f.start(t)
		f.catalog.EXPECT().ArtistImage(mock.Anything, "art_2").Return("https://img/kilo.jpg", nil)

		v, err := f.uc.SelectTrack(context.Background(), s.ID(), track, "art_2")
		require.NoError(t, err)
		assert.Equal(t, "Kilo June", v.Data.TrackDetails.PrimaryArtistName)
		assert.Equal(t, "https://img/kilo.jpg", v.Data.TrackDetails.PrimaryArtistImage)
		assert.Equal(t, "Ardent, Kilo June", v.Data.TrackDetails.ArtistDisplayName)
	})

	t.Run("lookup failure keeps selection", func(t *testing.T) {
		f := newFixture(t)
		s := f.start(t)
		f.catalog.EXPECT().ArtistImage(mock.Anything, "art_1").Return("", errors.New("timeout"))

		v, err := f.uc.SelectTrack(context.Background(), s.ID(), track, "art_1")
		require.NoError(t, err)
		assert.Empty(t, v.Data.TrackDetails.PrimaryArtistImage)
		assert.Equal(t, "art_1", v.Data.TrackDetails.PrimaryArtistID)
	})

	t.Run("artist choice required", func(t *testing.T) {
		f := newFixture(t)
		s := f.start(t)

		_, err := f.uc.SelectTrack(context.Background(), s.ID(), track, "")
		require.ErrorIs(t, err, domain.ErrPrimaryArtistRequired)
		assert.Nil(t, s.Data().TrackDetails)
	})
}

func TestRegisterPaymentMethod(t *testing.T) {
	req := domain.PaymentMethodRequest{PaymentMethodID: "pm_1", Email: "a@b.co", Name: "Nova Lane"}

	t.Run("stores card", func(t *testing.T) {
		f := newFixture(t)
		s := f.start(t)
		f.payments.EXPECT().RegisterPaymentMethod(mock.Anything, req).Return(card, nil)

		v, err := f.uc.RegisterPaymentMethod(context.Background(), s.ID(), req)
		require.NoError(t, err)
		require.NotNil(t, v.Data.CustomerID)
		assert.Equal(t, "cus_1", *v.Data.CustomerID)
		assert.Equal(t, "4242", v.Data.PaymentCard.Last4)
	})

	t.Run("failure leaves session unchanged", func(t *testing.T) {
		f := newFixture(t)
		s := f.start(t)
		before := s.Data()
		f.payments.EXPECT().RegisterPaymentMethod(mock.Anything, req).
			Return(domain.PaymentMethod{}, errors.New("card tokenization failed"))

		_, err := f.uc.RegisterPaymentMethod(context.Background(), s.ID(), req)
		require.Error(t, err)
		assert.Same(t, before, s.Data())
	})
}

func TestReplacingCardWithdrawsReview(t *testing.T) {
	f := newFixture(t)
	s := f.ready(t, card)
	require.True(t, s.Data().ReviewedCampaign)

	other := domain.PaymentMethodRequest{PaymentMethodID: "pm_2"}
	f.payments.EXPECT().RegisterPaymentMethod(mock.Anything, other).
		Return(domain.PaymentMethod{PaymentMethodID: "pm_2", CustomerID: "cus_2"}, nil)

	v, err := f.uc.RegisterPaymentMethod(context.Background(), s.ID(), other)
	require.NoError(t, err)
	assert.False(t, v.Data.ReviewedCampaign)
	assert.False(t, v.StepValid)
}

func TestGetLaunch(t *testing.T) {
	f := newFixture(t)
	lc := &domain.LaunchedCampaign{ID: "campaign_1", TrackName: "Low Tide"}
	f.launches.EXPECT().GetLaunch(mock.Anything, "campaign_1").Return(lc, nil)
	f.launches.EXPECT().GetLaunch(mock.Anything, "campaign_2").Return(nil, nil)

	got, err := f.uc.GetLaunch(context.Background(), "campaign_1")
	require.NoError(t, err)
	assert.Equal(t, "Low Tide", got.TrackName)

	_, err = f.uc.GetLaunch(context.Background(), "campaign_2")
	require.ErrorIs(t, err, port.ErrLaunchNotFound)
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	f := newFixture(t)
	old := f.start(t)

	f.uc.now = func() time.Time { return testNow.Add(3 * time.Hour) }
	fresh := f.start(t)

	assert.Equal(t, 1, f.uc.Sweep(2*time.Hour))
	_, err := f.sessions.Get(old.ID())
	require.ErrorIs(t, err, port.ErrSessionNotFound)
	_, err = f.sessions.Get(fresh.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, f.sessions.Len())
}

func TestRunJanitorWithoutIntervalReturns(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	done := make(chan struct{})
	go func() {
		f.uc.RunJanitor(context.Background(), time.Hour, 0)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor kept running with a zero interval")
	}
	assert.Equal(t, 1, f.sessions.Len())
}

func TestEndSession(t *testing.T) {
	f := newFixture(t)
	s := f.start(t)

	require.NoError(t, f.uc.EndSession(context.Background(), s.ID()))
	require.ErrorIs(t, f.uc.EndSession(context.Background(), s.ID()), port.ErrSessionNotFound)
}
