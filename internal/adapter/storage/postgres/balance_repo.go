package postgres

import (
	"context"
	"errors"
	"fmt"

	"aid-distribution-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BalanceRepo implements ports.BalanceRepository over the balances and
// asset_supply tables. Rows are created lazily on first credit.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

// Get fetches one balance (non-locking read). Accounts that never held the
// asset resolve to 0.
func (r *BalanceRepo) Get(ctx context.Context, account uuid.UUID, assetType int64) (int64, error) {
	query := `SELECT amount FROM balances WHERE account_id = $1 AND asset_type = $2`

	var amount int64
	err := r.pool.QueryRow(ctx, query, account, assetType).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return amount, nil
}

// GetForUpdate fetches one balance with pessimistic locking.
// This MUST be called within a transaction.
func (r *BalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, account uuid.UUID, assetType int64) (int64, error) {
	query := `SELECT amount FROM balances WHERE account_id = $1 AND asset_type = $2 FOR UPDATE`

	var amount int64
	err := tx.QueryRow(ctx, query, account, assetType).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get balance for update: %w", err)
	}
	return amount, nil
}

// Add upserts the balance row by delta. Sufficiency is checked by the
// caller under the row lock; the check constraint on amount is the last
// line of defence.
func (r *BalanceRepo) Add(ctx context.Context, tx pgx.Tx, account uuid.UUID, assetType int64, delta int64) error {
	query := `INSERT INTO balances (account_id, asset_type, amount, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (account_id, asset_type)
		DO UPDATE SET amount = balances.amount + EXCLUDED.amount, updated_at = NOW()`

	if _, err := tx.Exec(ctx, query, account, assetType, delta); err != nil {
		return fmt.Errorf("add balance: %w", err)
	}
	return nil
}

// AddMinted advances the asset's minted total.
func (r *BalanceRepo) AddMinted(ctx context.Context, tx pgx.Tx, assetType int64, amount int64) error {
	query := `INSERT INTO asset_supply (asset_type, minted, burned)
		VALUES ($1, $2, 0)
		ON CONFLICT (asset_type)
		DO UPDATE SET minted = asset_supply.minted + EXCLUDED.minted`

	if _, err := tx.Exec(ctx, query, assetType, amount); err != nil {
		return fmt.Errorf("add minted: %w", err)
	}
	return nil
}

// AddBurned advances the asset's burned total.
func (r *BalanceRepo) AddBurned(ctx context.Context, tx pgx.Tx, assetType int64, amount int64) error {
	query := `INSERT INTO asset_supply (asset_type, minted, burned)
		VALUES ($1, 0, $2)
		ON CONFLICT (asset_type)
		DO UPDATE SET burned = asset_supply.burned + EXCLUDED.burned`

	if _, err := tx.Exec(ctx, query, assetType, amount); err != nil {
		return fmt.Errorf("add burned: %w", err)
	}
	return nil
}

// GetSupply fetches the mint/burn totals for an asset, or nil if the asset
// was never minted.
func (r *BalanceRepo) GetSupply(ctx context.Context, assetType int64) (*domain.AssetSupply, error) {
	query := `SELECT asset_type, minted, burned FROM asset_supply WHERE asset_type = $1`

	s := &domain.AssetSupply{}
	err := r.pool.QueryRow(ctx, query, assetType).Scan(&s.AssetType, &s.Minted, &s.Burned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset supply: %w", err)
	}
	return s, nil
}

// SumBalances totals all balances of one asset type. With the supply
// table it verifies conservation: sum == minted - burned.
func (r *BalanceRepo) SumBalances(ctx context.Context, assetType int64) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM balances WHERE asset_type = $1`

	var sum int64
	if err := r.pool.QueryRow(ctx, query, assetType).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum balances: %w", err)
	}
	return sum, nil
}
