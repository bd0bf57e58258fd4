package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"soundcamps/internal/core/domain"
)

var seedTracks = []struct {
	track, artist string
}{
	{"Midnight Drive", "Nova Lane"},
	{"Paper Satellites", "The Quiet Hours"},
	{"Salt & Honey", "Mara Vel"},
	{"Low Tide", "Coastline Club"},
	{"Neon Psalms", "Ardent, Kilo June"},
}

// Seed inserts demo launches into the ledger so the confirmation view has
// data in development.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	strategies := []domain.StrategyType{domain.StrategyPlaylist, domain.StrategyDirect, domain.StrategyArtistBranding}

	for i, st := range seedTracks {
		data := domain.NewCampaignData()
		data.TrackDetails = &domain.TrackDetails{
			ID:                fmt.Sprintf("demo-track-%d", i+1),
			Name:              st.track,
			ArtistDisplayName: st.artist,
			ImageURL:          fmt.Sprintf("https://example.com/cover/%d.jpg", i+1),
		}
		data.StrategyType = strategies[r.Intn(len(strategies))]
		data.Budget = float64(domain.MinBudget + r.Intn(domain.MaxBudget-domain.MinBudget+1))
		data.TargetCountries = []string{"us", "gb", "de"}[:1+r.Intn(3)]

		id := "campaign_" + uuid.NewString()
		chargeID := "pi_demo_" + uuid.NewString()[:8]
		createdAt := time.Now().Add(-time.Duration(r.Intn(72)) * time.Hour)

		lc := domain.NewLaunchedCampaign(id, data, chargeID, true, createdAt)
		payload, _ := json.Marshal(domain.NewCampaignPayload(id, data, domain.ChargeResult{Success: true, ChargeID: chargeID}, createdAt))

		_, err := db.Exec(ctx, `INSERT INTO launched_campaigns
    (id, track_name, artist_name, image_url, budget, strategy_type, charge_id, notified, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) ON CONFLICT DO NOTHING`,
			lc.ID, lc.TrackName, lc.ArtistName, lc.ImageURL, lc.Budget, string(lc.StrategyType), lc.ChargeID, lc.Notified, lc.CreatedAt)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO campaign_payloads (campaign_id, data)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, lc.ID, payload)
		if err != nil {
			return err
		}
	}
	return nil
}
