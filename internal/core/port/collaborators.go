package port

import (
	"context"
	"errors"

	"soundcamps/internal/core/domain"
)

// ErrNotConfigured is returned by collaborators whose credentials are
// missing. The feature is disabled; the process keeps running.
var ErrNotConfigured = errors.New("collaborator not configured")

// NotConfiguredError names the disabled collaborator. It matches
// ErrNotConfigured and its message is safe to show to the user.
type NotConfiguredError struct {
	Service string
}

func (e *NotConfiguredError) Error() string {
	return e.Service + " is not configured. Please contact support."
}

func (e *NotConfiguredError) Is(target error) bool {
	return target == ErrNotConfigured
}

// CatalogSearcher is the outbound port to the music catalog.
type CatalogSearcher interface {
	// Search returns tracks or artists matching query.
	Search(ctx context.Context, query string, kind domain.SearchKind) ([]domain.SearchResult, error)
	// ArtistImage returns the artist picture URL, or "" when the artist has
	// none.
	ArtistImage(ctx context.Context, artistID string) (string, error)
}

// PaymentGateway is the outbound port to the payment provider. Provider
// declines are reported as data (ChargeResult.Success false); the error
// result is reserved for configuration and transport failures.
type PaymentGateway interface {
	// RegisterPaymentMethod creates a customer for the tokenized card and
	// returns the card summary.
	RegisterPaymentMethod(ctx context.Context, req domain.PaymentMethodRequest) (domain.PaymentMethod, error)
	// Charge authorizes and captures req.AmountUSD off-session.
	Charge(ctx context.Context, req domain.ChargeRequest) (domain.ChargeResult, error)
}

// CampaignNotifier is a best-effort collaborator: Notify has no error
// result, so a failed delivery cannot abort the caller. Implementations log
// their own failures.
type CampaignNotifier interface {
	Notify(ctx context.Context, payload domain.CampaignPayload) domain.NotifyReceipt
}
