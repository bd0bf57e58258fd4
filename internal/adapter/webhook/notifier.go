// Package webhook delivers launched campaigns to the automation endpoint.
// Delivery is best-effort: failures are logged and reported in the receipt,
// never returned as errors.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"soundcamps/internal/config/configs"
	"soundcamps/internal/core/domain"
)

const maxResponseBody = 4 << 10

// Notifier implements port.CampaignNotifier with a JSON POST.
type Notifier struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

func NewNotifier(cfg configs.Webhook, logger *slog.Logger) *Notifier {
	return &Notifier{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.With(slog.String("component", "webhook")),
	}
}

// Notify posts payload. A JSON answer carrying "campaignId" or "id" sets
// the receipt's CampaignID.
func (n *Notifier) Notify(ctx context.Context, payload domain.CampaignPayload) domain.NotifyReceipt {
	receipt := domain.NotifyReceipt{}
	log := n.logger.With(slog.String("campaign_id", payload.ID))

	if n.url == "" {
		log.Debug("webhook disabled, campaign not forwarded")
		return receipt
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error("encode campaign payload", slog.Any("error", err))
		return receipt
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		log.Error("build webhook request", slog.Any("error", err))
		return receipt
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.client.Do(req)
	if err != nil {
		log.Warn("webhook delivery failed", slog.Any("error", err))
		return receipt
	}
	defer res.Body.Close()

	receipt.StatusCode = res.StatusCode
	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Warn("webhook rejected campaign", slog.Int("status", res.StatusCode))
		return receipt
	}
	receipt.Delivered = true
	receipt.CampaignID = campaignIDFrom(res.Body)
	log.Info("webhook delivered", slog.Int("status", res.StatusCode))
	return receipt
}

func campaignIDFrom(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxResponseBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var ack struct {
		CampaignID string `json:"campaignId"`
		ID         string `json:"id"`
	}
	if json.Unmarshal(raw, &ack) != nil {
		return ""
	}
	if ack.CampaignID != "" {
		return ack.CampaignID
	}
	return ack.ID
}
