package postgres

import (
	"context"
	"errors"
	"fmt"

	"aid-distribution-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SettlementRepo implements ports.SettlementRepository over the
// pending_settlements escrow table.
type SettlementRepo struct {
	pool Pool
}

// NewSettlementRepo creates a new SettlementRepo.
func NewSettlementRepo(pool Pool) *SettlementRepo {
	return &SettlementRepo{pool: pool}
}

const settlementColumns = `store_id, pending, total_redeemed, total_withdrawn, updated_at`

// Get fetches a store's escrow entry (non-locking read), or nil if the
// store has never redeemed.
func (r *SettlementRepo) Get(ctx context.Context, store uuid.UUID) (*domain.PendingSettlement, error) {
	query := `SELECT ` + settlementColumns + ` FROM pending_settlements WHERE store_id = $1`

	s := &domain.PendingSettlement{}
	err := r.pool.QueryRow(ctx, query, store).Scan(
		&s.StoreID, &s.Pending, &s.TotalRedeemed, &s.TotalWithdrawn, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending settlement: %w", err)
	}
	return s, nil
}

// GetForUpdate fetches a store's escrow entry with pessimistic locking.
// This MUST be called within a transaction.
func (r *SettlementRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, store uuid.UUID) (*domain.PendingSettlement, error) {
	query := `SELECT ` + settlementColumns + ` FROM pending_settlements WHERE store_id = $1 FOR UPDATE`

	s := &domain.PendingSettlement{}
	err := tx.QueryRow(ctx, query, store).Scan(
		&s.StoreID, &s.Pending, &s.TotalRedeemed, &s.TotalWithdrawn, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending settlement for update: %w", err)
	}
	return s, nil
}

// Credit increases pending and the lifetime redeemed total, creating the
// entry on first redemption.
func (r *SettlementRepo) Credit(ctx context.Context, tx pgx.Tx, store uuid.UUID, amount int64) error {
	query := `INSERT INTO pending_settlements (store_id, pending, total_redeemed, total_withdrawn, updated_at)
		VALUES ($1, $2, $2, 0, NOW())
		ON CONFLICT (store_id) DO UPDATE SET
			pending = pending_settlements.pending + EXCLUDED.pending,
			total_redeemed = pending_settlements.total_redeemed + EXCLUDED.total_redeemed,
			updated_at = NOW()`

	if _, err := tx.Exec(ctx, query, store, amount); err != nil {
		return fmt.Errorf("credit escrow: %w", err)
	}
	return nil
}

// Debit decreases pending and advances the lifetime withdrawn total. The
// caller checks sufficiency under the row lock.
func (r *SettlementRepo) Debit(ctx context.Context, tx pgx.Tx, store uuid.UUID, amount int64) error {
	query := `UPDATE pending_settlements SET
			pending = pending - $2,
			total_withdrawn = total_withdrawn + $2,
			updated_at = NOW()
		WHERE store_id = $1`

	tag, err := tx.Exec(ctx, query, store, amount)
	if err != nil {
		return fmt.Errorf("debit escrow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("escrow entry not found: %s", store)
	}
	return nil
}
