package port

import (
	"context"

	"soundcamps/internal/core/domain"
	"soundcamps/internal/core/wizard"
)

// WizardUseCase defines the operations exposed by the campaign wizard. This
// interface is the primary port into the application; the HTTP adapter
// depends on it only.
type WizardUseCase interface {
	// StartSession creates a wizard session with default campaign data on
	// the choose-track step.
	StartSession(ctx context.Context) (wizard.View, error)
	// GetSession renders a live session. Unknown ids fail with
	// ErrSessionNotFound.
	GetSession(ctx context.Context, id string) (wizard.View, error)
	// EndSession discards a session.
	EndSession(ctx context.Context, id string) error

	// UpdateCampaign merges a partial campaign into the session.
	UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (wizard.View, error)
	// SelectTrack snapshots a search result as the promoted track. Tracks
	// credited to several artists need primaryArtistID, whose image is
	// looked up through the catalog.
	SelectTrack(ctx context.Context, id string, track domain.SearchResult, primaryArtistID string) (wizard.View, error)
	// ClearTrack drops the selected track.
	ClearTrack(ctx context.Context, id string) (wizard.View, error)
	ToggleSimilarArtist(ctx context.Context, id string, artist domain.SimilarArtist) (wizard.View, error)
	ToggleGenre(ctx context.Context, id string, genre string) (wizard.View, error)
	// ToggleCountry accepts catalog codes in any case; others fail with
	// domain.ErrUnknownCountry.
	ToggleCountry(ctx context.Context, id string, code string) (wizard.View, error)
	ToggleRegion(ctx context.Context, id string, region string) (wizard.View, error)
	ToggleAllCountries(ctx context.Context, id string) (wizard.View, error)

	// RegisterPaymentMethod saves a tokenized card with the payment provider
	// and stores it on the session. On failure the session is unchanged.
	RegisterPaymentMethod(ctx context.Context, id string, req domain.PaymentMethodRequest) (wizard.View, error)
	ClearPaymentMethod(ctx context.Context, id string) (wizard.View, error)
	// SetReviewed records the review confirmation. It requires a saved card.
	SetReviewed(ctx context.Context, id string, reviewed bool) (wizard.View, error)

	// Next validates the active step and advances. Validation failures are
	// returned as *domain.ValidationError.
	Next(ctx context.Context, id string) (wizard.View, error)
	Previous(ctx context.Context, id string) (wizard.View, error)
	// SetStep jumps to a step already reached through Next; later steps fail
	// with domain.ErrStepNotReached. ShowPlans likewise needs the budget step.
	SetStep(ctx context.Context, id string, step domain.Step) (wizard.View, error)
	ShowPlans(ctx context.Context, id string) (wizard.View, error)
	SelectPlan(ctx context.Context, id string, planID string, annual bool) (wizard.View, error)

	// Submit revalidates every step, charges the daily budget, notifies the
	// automation webhook and returns the confirmation. Only one submission
	// per session may be in flight.
	Submit(ctx context.Context, id string) (domain.LaunchedCampaign, error)
	// GetLaunch returns a launched campaign confirmation.
	GetLaunch(ctx context.Context, campaignID string) (domain.LaunchedCampaign, error)

	// Search queries the music catalog. Queries shorter than
	// domain.MinSearchQuery return no results without a remote call.
	Search(ctx context.Context, query string, kind domain.SearchKind) ([]domain.SearchResult, error)
	// ArtistImage returns an artist picture URL, or "" when there is none.
	ArtistImage(ctx context.Context, artistID string) (string, error)
}
