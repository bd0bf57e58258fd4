package port

import (
	"context"
	"errors"
	"time"

	"soundcamps/internal/core/domain"
	"soundcamps/internal/core/wizard"
)

var (
	ErrSessionNotFound = errors.New("wizard session not found")
	ErrSessionExists   = errors.New("wizard session already exists")
	ErrLaunchNotFound  = errors.New("campaign not found")
)

// SessionRepository keeps live wizard sessions. Sessions are never
// persisted; implementations must be safe for concurrent use.
type SessionRepository interface {
	Create(s *wizard.Session) error
	// Get returns ErrSessionNotFound for unknown ids.
	Get(id string) (*wizard.Session, error)
	Delete(id string)
	// EvictIdle drops sessions idle since before and returns how many
	// were removed.
	EvictIdle(before time.Time) int
	// Len returns the number of live sessions.
	Len() int
}

// LaunchRepository is the ledger of launched campaigns backing the
// confirmation view.
type LaunchRepository interface {
	// SaveLaunch records a launched campaign and the payload sent to the
	// automation webhook.
	SaveLaunch(ctx context.Context, launch domain.LaunchedCampaign, payload domain.CampaignPayload) error
	// GetLaunch returns the launch by campaign id, or nil when unknown.
	GetLaunch(ctx context.Context, id string) (*domain.LaunchedCampaign, error)
}
