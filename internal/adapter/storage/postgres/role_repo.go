package postgres

import (
	"context"
	"errors"
	"fmt"

	"aid-distribution-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RoleRepo implements ports.RoleRepository over the accounts table and the
// store_identities bijection.
type RoleRepo struct {
	pool Pool
}

// NewRoleRepo creates a new RoleRepo.
func NewRoleRepo(pool Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// Upsert overwrites the account's role. No history is kept; the previous
// role is simply gone.
func (r *RoleRepo) Upsert(ctx context.Context, tx pgx.Tx, account uuid.UUID, role domain.Role) error {
	query := `INSERT INTO accounts (id, role, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET role = EXCLUDED.role, updated_at = NOW()`

	if _, err := tx.Exec(ctx, query, account, role); err != nil {
		return fmt.Errorf("upsert account role: %w", err)
	}
	return nil
}

// Get fetches an account with its store identity (non-locking read).
func (r *RoleRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT a.id, a.role, s.store_id, a.created_at, a.updated_at
		FROM accounts a
		LEFT JOIN store_identities s ON s.account_id = a.id
		WHERE a.id = $1`

	a := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Role, &a.StoreID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// GetForUpdate fetches an account with pessimistic locking.
// This MUST be called within a transaction.
func (r *RoleRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT a.id, a.role, s.store_id, a.created_at, a.updated_at
		FROM accounts a
		LEFT JOIN store_identities s ON s.account_id = a.id
		WHERE a.id = $1 FOR UPDATE OF a`

	a := &domain.Account{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Role, &a.StoreID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account for update: %w", err)
	}
	return a, nil
}

// GetStoreID returns the account's stable store id, or nil if the account
// has never been admitted.
func (r *RoleRepo) GetStoreID(ctx context.Context, tx pgx.Tx, account uuid.UUID) (*int64, error) {
	query := `SELECT store_id FROM store_identities WHERE account_id = $1`

	var storeID int64
	err := tx.QueryRow(ctx, query, account).Scan(&storeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store id: %w", err)
	}
	return &storeID, nil
}

// AllocateStoreID assigns the next sequential store id to the account. The
// sequence starts at 1 and never reuses a value.
func (r *RoleRepo) AllocateStoreID(ctx context.Context, tx pgx.Tx, account uuid.UUID) (int64, error) {
	query := `INSERT INTO store_identities (account_id) VALUES ($1) RETURNING store_id`

	var storeID int64
	if err := tx.QueryRow(ctx, query, account).Scan(&storeID); err != nil {
		return 0, fmt.Errorf("allocate store id: %w", err)
	}
	return storeID, nil
}
