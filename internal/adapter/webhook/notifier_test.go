package webhook

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundcamps/internal/config/configs"
	"soundcamps/internal/core/domain"
)

func testPayload() domain.CampaignPayload {
	data := domain.NewCampaignData()
	data.TrackDetails = &domain.TrackDetails{ID: "trk_1", Name: "Low Tide"}
	data.TargetCountries = []string{"US", "GB"}
	return domain.NewCampaignPayload("campaign_1", data,
		domain.ChargeResult{Success: true, ChargeID: "pi_1"}, time.Now())
}

func newNotifier(url string) *Notifier {
	return NewNotifier(configs.Webhook{URL: url, Timeout: time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNotifyDelivers(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "Accepted")
	}))
	defer srv.Close()

	receipt := newNotifier(srv.URL).Notify(context.Background(), testPayload())
	assert.True(t, receipt.Delivered)
	assert.Equal(t, http.StatusOK, receipt.StatusCode)
	assert.Empty(t, receipt.CampaignID)

	assert.Equal(t, "campaign_1", got["id"])
	assert.Equal(t, "pi_1", got["payment"].(map[string]any)["chargeId"])
	assert.Equal(t, []any{"US", "GB"}, got["adSettings"].(map[string]any)["targetCountries"])
}

func TestNotifyReadsCampaignID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"campaignId":"auto_9"}`)
	}))
	defer srv.Close()

	receipt := newNotifier(srv.URL).Notify(context.Background(), testPayload())
	assert.Equal(t, "auto_9", receipt.CampaignID)
}

func TestNotifyFailuresAreReported(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer srv.Close()

		receipt := newNotifier(srv.URL).Notify(context.Background(), testPayload())
		assert.False(t, receipt.Delivered)
		assert.Equal(t, http.StatusBadGateway, receipt.StatusCode)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		receipt := newNotifier(url).Notify(context.Background(), testPayload())
		assert.False(t, receipt.Delivered)
		assert.Zero(t, receipt.StatusCode)
	})

	t.Run("disabled", func(t *testing.T) {
		receipt := newNotifier("").Notify(context.Background(), testPayload())
		assert.Equal(t, domain.NotifyReceipt{}, receipt)
	})
}

func TestCampaignIDFrom(t *testing.T) {
	assert.Equal(t, "a", campaignIDFrom(strings.NewReader(`{"campaignId":"a","id":"b"}`)))
	assert.Equal(t, "b", campaignIDFrom(strings.NewReader(`{"id":"b"}`)))
	assert.Empty(t, campaignIDFrom(strings.NewReader(`Accepted`)))
	assert.Empty(t, campaignIDFrom(strings.NewReader(``)))
}
