package usecase

import (
	"context"
	"errors"
	"log/slog"

	"soundcamps/internal/core/domain"
	"soundcamps/internal/core/port"
)

// Submit launches the session's campaign. Steps run strictly in order:
// payment details and every wizard step are checked before any network call,
// the daily budget is charged, the automation webhook is notified on a
// best-effort basis and the launch is recorded. The session's in-flight
// flag is cleared on every path.
func (u *WizardUseCase) Submit(ctx context.Context, id string) (domain.LaunchedCampaign, error) {
	s, err := u.session(id)
	if err != nil {
		return domain.LaunchedCampaign{}, err
	}
	data, step, err := s.BeginSubmit()
	if err != nil {
		return domain.LaunchedCampaign{}, err
	}
	defer s.EndSubmit()

	log := u.logger.With(slog.String("session_id", id))

	if !data.HasPaymentMethod() {
		return domain.LaunchedCampaign{}, domain.ErrPaymentMethodRequired
	}
	if !data.HasCustomer() {
		return domain.LaunchedCampaign{}, domain.ErrCustomerRequired
	}
	if step != domain.StepBudget {
		return domain.LaunchedCampaign{}, &domain.ValidationError{Step: step, Message: launchStepMessage}
	}
	if err = domain.CheckSteps(data); err != nil {
		return domain.LaunchedCampaign{}, err
	}

	campaignID := "campaign_" + u.newID()
	charge, err := u.payments.Charge(ctx, domain.ChargeRequest{
		PaymentMethodID: *data.PaymentMethodID,
		CustomerID:      *data.CustomerID,
		AmountUSD:       data.Budget,
		Description:     "Campaign launch for " + trackLabel(data),
		CampaignID:      campaignID,
	})
	if err != nil {
		if errors.Is(err, port.ErrNotConfigured) {
			return domain.LaunchedCampaign{}, err
		}
		log.Error("charge failed", slog.String("campaign_id", campaignID), slog.Any("error", err))
		return domain.LaunchedCampaign{}, &domain.ChargeError{Message: chargeFallbackMessage}
	}
	if !charge.Success {
		msg := charge.Error
		if msg == "" {
			msg = chargeFallbackMessage
		}
		log.Warn("charge declined",
			slog.String("campaign_id", campaignID),
			slog.String("status", charge.Status),
			slog.String("reason", msg))
		return domain.LaunchedCampaign{}, &domain.ChargeError{Message: msg, Status: charge.Status}
	}

	// The card is charged: nothing below may fail the launch or be cut short
	// by the caller going away.
	ctx = context.WithoutCancel(ctx)
	now := u.now()

	payload := domain.NewCampaignPayload(campaignID, data, charge, now)
	receipt := u.notifier.Notify(ctx, payload)
	if receipt.CampaignID != "" {
		campaignID = receipt.CampaignID
	}

	launch := domain.NewLaunchedCampaign(campaignID, data, charge.ChargeID, receipt.Delivered, now)
	if err = u.launches.SaveLaunch(ctx, launch, payload); err != nil {
		log.Warn("launch ledger write failed", slog.String("campaign_id", campaignID), slog.Any("error", err))
	}
	u.sessions.Delete(id)

	log.Info("campaign launched",
		slog.String("campaign_id", campaignID),
		slog.String("charge_id", charge.ChargeID),
		slog.Float64("budget", data.Budget),
		slog.Bool("notified", receipt.Delivered))
	return launch, nil
}

func trackLabel(data *domain.CampaignData) string {
	if name := data.TrackName(); name != "" {
		return name
	}
	return "unknown track"
}

var _ port.WizardUseCase = (*WizardUseCase)(nil)
