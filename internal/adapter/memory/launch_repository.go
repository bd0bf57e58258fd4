package memory

import (
	"context"
	"sync"

	"soundcamps/internal/core/domain"
)

// LaunchRepository is the in-process launch ledger used when PostgreSQL is
// disabled. Only the confirmations are kept; payloads are dropped.
type LaunchRepository struct {
	mu       sync.RWMutex
	launches map[string]domain.LaunchedCampaign
}

func NewLaunchRepository() *LaunchRepository {
	return &LaunchRepository{
		launches: make(map[string]domain.LaunchedCampaign),
	}
}

func (r *LaunchRepository) SaveLaunch(_ context.Context, launch domain.LaunchedCampaign, _ domain.CampaignPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.launches[launch.ID] = launch
	return nil
}

func (r *LaunchRepository) GetLaunch(_ context.Context, id string) (*domain.LaunchedCampaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lc, ok := r.launches[id]
	if !ok {
		return nil, nil
	}
	return &lc, nil
}
