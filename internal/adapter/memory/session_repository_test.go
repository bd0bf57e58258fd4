package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundcamps/internal/core/domain"
	"soundcamps/internal/core/port"
	"soundcamps/internal/core/wizard"
)

func TestSessionRepositoryLifecycle(t *testing.T) {
	repo := NewSessionRepository()
	now := time.Now()
	s := wizard.NewSession("s1", now)

	require.NoError(t, repo.Create(s))
	require.ErrorIs(t, repo.Create(wizard.NewSession("s1", now)), port.ErrSessionExists)

	got, err := repo.Get("s1")
	require.NoError(t, err)
	assert.Same(t, s, got)

	repo.Delete("s1")
	_, err = repo.Get("s1")
	require.ErrorIs(t, err, port.ErrSessionNotFound)
	assert.Equal(t, 0, repo.Len())
}

func TestSessionRepositoryEvictIdle(t *testing.T) {
	repo := NewSessionRepository()
	start := time.Now()

	idle := wizard.NewSession("idle", start)
	active := wizard.NewSession("active", start)
	busy := wizard.NewSession("busy", start)
	for _, s := range []*wizard.Session{idle, active, busy} {
		require.NoError(t, repo.Create(s))
	}
	active.Touch(start.Add(time.Hour))
	_, _, err := busy.BeginSubmit()
	require.NoError(t, err)

	n := repo.EvictIdle(start.Add(time.Minute))
	assert.Equal(t, 1, n)

	_, err = repo.Get("idle")
	require.ErrorIs(t, err, port.ErrSessionNotFound)
	_, err = repo.Get("active")
	require.NoError(t, err)
	_, err = repo.Get("busy")
	require.NoError(t, err)
}

func TestLaunchRepository(t *testing.T) {
	repo := NewLaunchRepository()
	ctx := context.Background()

	got, err := repo.GetLaunch(ctx, "campaign_x")
	require.NoError(t, err)
	assert.Nil(t, got)

	lc := domain.LaunchedCampaign{ID: "campaign_x", TrackName: "Song", Budget: 25}
	payload := domain.CampaignPayload{ID: "campaign_x", Budget: 25}
	require.NoError(t, repo.SaveLaunch(ctx, lc, payload))

	got, err = repo.GetLaunch(ctx, "campaign_x")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, lc, *got)
}
