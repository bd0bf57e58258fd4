package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"soundcamps/internal/core/domain"
)

// LaunchRepository implements port.LaunchRepository using pgxpool for
// PostgreSQL.
type LaunchRepository struct {
	pool *pgxpool.Pool
}

// NewLaunchRepository returns a new repository instance.
func NewLaunchRepository(pool *pgxpool.Pool) *LaunchRepository {
	return &LaunchRepository{pool: pool}
}

// SaveLaunch stores the confirmation row and the webhook payload in one
// transaction. Saving the same campaign id twice keeps the first row.
func (r *LaunchRepository) SaveLaunch(ctx context.Context, launch domain.LaunchedCampaign, payload domain.CampaignPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `INSERT INTO launched_campaigns
    (id, track_name, artist_name, image_url, budget, strategy_type, charge_id, notified, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) ON CONFLICT (id) DO NOTHING`,
		launch.ID, launch.TrackName, launch.ArtistName, launch.ImageURL, launch.Budget,
		string(launch.StrategyType), launch.ChargeID, launch.Notified, launch.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `INSERT INTO campaign_payloads (campaign_id, data)
VALUES ($1, $2) ON CONFLICT (campaign_id) DO NOTHING`, launch.ID, raw)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetLaunch returns the launch with the given campaign id, or nil when
// there is none.
func (r *LaunchRepository) GetLaunch(ctx context.Context, id string) (*domain.LaunchedCampaign, error) {
	var (
		lc       domain.LaunchedCampaign
		strategy string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, track_name, artist_name, image_url, budget, strategy_type, charge_id, notified, created_at
FROM launched_campaigns WHERE id = $1`, id).
		Scan(&lc.ID, &lc.TrackName, &lc.ArtistName, &lc.ImageURL, &lc.Budget, &strategy, &lc.ChargeID, &lc.Notified, &lc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	lc.StrategyType = domain.StrategyType(strategy)
	return &lc, nil
}
