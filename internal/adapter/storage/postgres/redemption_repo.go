package postgres

import (
	"context"
	"errors"
	"fmt"

	"aid-distribution-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RedemptionRepo implements ports.RedemptionRepository over the
// redemption_usage counters. Counters only ever grow.
type RedemptionRepo struct {
	pool Pool
}

// NewRedemptionRepo creates a new RedemptionRepo.
func NewRedemptionRepo(pool Pool) *RedemptionRepo {
	return &RedemptionRepo{pool: pool}
}

// GetUsage fetches one counter (non-locking read). Missing rows resolve
// to 0.
func (r *RedemptionRepo) GetUsage(ctx context.Context, assetType int64, account uuid.UUID, side domain.UsageSide) (int64, error) {
	query := `SELECT used FROM redemption_usage WHERE asset_type = $1 AND account_id = $2 AND side = $3`

	var used int64
	err := r.pool.QueryRow(ctx, query, assetType, account, side).Scan(&used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get usage: %w", err)
	}
	return used, nil
}

// GetUsageForUpdate fetches one counter with pessimistic locking.
// This MUST be called within a transaction.
func (r *RedemptionRepo) GetUsageForUpdate(ctx context.Context, tx pgx.Tx, assetType int64, account uuid.UUID, side domain.UsageSide) (int64, error) {
	query := `SELECT used FROM redemption_usage WHERE asset_type = $1 AND account_id = $2 AND side = $3 FOR UPDATE`

	var used int64
	err := tx.QueryRow(ctx, query, assetType, account, side).Scan(&used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get usage for update: %w", err)
	}
	return used, nil
}

// SetUsage writes the counter's new total.
func (r *RedemptionRepo) SetUsage(ctx context.Context, tx pgx.Tx, assetType int64, account uuid.UUID, side domain.UsageSide, total int64) error {
	query := `INSERT INTO redemption_usage (asset_type, account_id, side, used)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (asset_type, account_id, side) DO UPDATE SET used = EXCLUDED.used`

	if _, err := tx.Exec(ctx, query, assetType, account, side, total); err != nil {
		return fmt.Errorf("set usage: %w", err)
	}
	return nil
}
