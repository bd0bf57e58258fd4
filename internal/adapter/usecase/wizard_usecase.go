package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"soundcamps/internal/core/domain"
	"soundcamps/internal/core/port"
	"soundcamps/internal/core/wizard"
)

const (
	chargeFallbackMessage = "Failed to process payment"
	launchStepMessage     = "Campaigns can only be launched from the budget step"
)

// WizardUseCase drives wizard sessions and launches campaigns. It
// orchestrates the session registry, the payment gateway, the automation
// notifier and the launch ledger to implement port.WizardUseCase.
type WizardUseCase struct {
	sessions port.SessionRepository
	launches port.LaunchRepository
	catalog  port.CatalogSearcher
	payments port.PaymentGateway
	notifier port.CampaignNotifier
	logger   *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewWizardUseCase wires the use case with its collaborators.
func NewWizardUseCase(
	sessions port.SessionRepository,
	launches port.LaunchRepository,
	catalog port.CatalogSearcher,
	payments port.PaymentGateway,
	notifier port.CampaignNotifier,
	logger *slog.Logger,
) *WizardUseCase {
	return &WizardUseCase{
		sessions: sessions,
		launches: launches,
		catalog:  catalog,
		payments: payments,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (u *WizardUseCase) StartSession(_ context.Context) (wizard.View, error) {
	s := wizard.NewSession(u.newID(), u.now())
	if err := u.sessions.Create(s); err != nil {
		return wizard.View{}, err
	}
	u.logger.Debug("wizard session started", slog.String("session_id", s.ID()))
	return s.View(), nil
}

func (u *WizardUseCase) GetSession(_ context.Context, id string) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.View(), nil
}

func (u *WizardUseCase) EndSession(_ context.Context, id string) error {
	if _, err := u.sessions.Get(id); err != nil {
		return err
	}
	u.sessions.Delete(id)
	return nil
}

func (u *WizardUseCase) UpdateCampaign(_ context.Context, id string, patch domain.CampaignPatch) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.Update(patch), nil
}

// SelectTrack snapshots track into the session. For tracks credited to
// several artists the chosen artist's picture is looked up; a failed lookup
// leaves the picture empty.
func (u *WizardUseCase) SelectTrack(ctx context.Context, id string, track domain.SearchResult, primaryArtistID string) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	td, err := domain.SelectTrack(track, primaryArtistID)
	if err != nil {
		return wizard.View{}, err
	}
	if track.NeedsArtistChoice() {
		img, err := u.catalog.ArtistImage(ctx, td.PrimaryArtistID)
		if err != nil {
			u.logger.Warn("artist image lookup failed",
				slog.String("artist_id", td.PrimaryArtistID), slog.Any("error", err))
		}
		td.PrimaryArtistImage = img
	}
	return s.SelectTrack(td), nil
}

func (u *WizardUseCase) ClearTrack(_ context.Context, id string) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.SelectTrack(nil), nil
}

func (u *WizardUseCase) ToggleSimilarArtist(_ context.Context, id string, artist domain.SimilarArtist) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.ToggleSimilarArtist(artist), nil
}

func (u *WizardUseCase) ToggleGenre(_ context.Context, id string, genre string) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.ToggleGenre(genre), nil
}

func (u *WizardUseCase) ToggleCountry(_ context.Context, id string, code string) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.ToggleCountry(code)
}

func (u *WizardUseCase) ToggleRegion(_ context.Context, id string, region string) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.ToggleRegion(region)
}

func (u *WizardUseCase) ToggleAllCountries(_ context.Context, id string) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.ToggleAllCountries(), nil
}

// RegisterPaymentMethod creates the provider customer first and only then
// touches the session, so a failed registration leaves it unchanged.
func (u *WizardUseCase) RegisterPaymentMethod(ctx context.Context, id string, req domain.PaymentMethodRequest) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	pm, err := u.payments.RegisterPaymentMethod(ctx, req)
	if err != nil {
		return wizard.View{}, fmt.Errorf("register payment method: %w", err)
	}
	return s.SavePaymentMethod(pm), nil
}

func (u *WizardUseCase) ClearPaymentMethod(_ context.Context, id string) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.ClearPaymentMethod(), nil
}

func (u *WizardUseCase) SetReviewed(_ context.Context, id string, reviewed bool) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.SetReviewed(reviewed)
}

func (u *WizardUseCase) Next(_ context.Context, id string) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.Advance()
}

func (u *WizardUseCase) Previous(_ context.Context, id string) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.Back(), nil
}

func (u *WizardUseCase) SetStep(_ context.Context, id string, step domain.Step) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.JumpTo(step)
}

func (u *WizardUseCase) ShowPlans(_ context.Context, id string) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.ShowPlans()
}

func (u *WizardUseCase) SelectPlan(_ context.Context, id string, planID string, annual bool) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.SelectPlan(planID, annual)
}

func (u *WizardUseCase) GetLaunch(ctx context.Context, campaignID string) (domain.LaunchedCampaign, error) {
	lc, err := u.launches.GetLaunch(ctx, campaignID)
	if err != nil {
		return domain.LaunchedCampaign{}, err
	}
	if lc == nil {
		return domain.LaunchedCampaign{}, port.ErrLaunchNotFound
	}
	return *lc, nil
}

// Search returns no results for queries shorter than domain.MinSearchQuery
// without calling the catalog.
func (u *WizardUseCase) Search(ctx context.Context, query string, kind domain.SearchKind) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < domain.MinSearchQuery {
		return []domain.SearchResult{}, nil
	}
	if kind == "" {
		kind = domain.SearchTrack
	}
	res, err := u.catalog.Search(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", kind, err)
	}
	return res, nil
}

func (u *WizardUseCase) ArtistImage(ctx context.Context, artistID string) (string, error) {
	img, err := u.catalog.ArtistImage(ctx, artistID)
	if err != nil {
		return "", fmt.Errorf("artist image: %w", err)
	}
	return img, nil
}

// session fetches a live session and records the activity.
func (u *WizardUseCase) session(id string) (*wizard.Session, error) {
	s, err := u.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	s.Touch(u.now())
	return s, nil
}
