package postgres

import (
	"context"
	"errors"
	"fmt"

	"aid-distribution-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ItemRepo implements ports.ItemRepository. Item types are insert-only;
// there is no update or delete path.
type ItemRepo struct {
	pool Pool
}

// NewItemRepo creates a new ItemRepo.
func NewItemRepo(pool Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

const itemColumns = `id, is_voucher, allowed_store, expiry, beneficiary_limit, store_limit, created_by, created_at`

// Create inserts the item type and returns its allocated id.
func (r *ItemRepo) Create(ctx context.Context, tx pgx.Tx, item *domain.ItemType) (int64, error) {
	query := `INSERT INTO item_types (is_voucher, allowed_store, expiry, beneficiary_limit, store_limit, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query,
		item.IsVoucher, item.AllowedStore, item.Expiry,
		item.BeneficiaryLimit, item.StoreLimit, item.CreatedBy, item.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert item type: %w", err)
	}
	return id, nil
}

// Get fetches an item type by id (non-locking read).
func (r *ItemRepo) Get(ctx context.Context, id int64) (*domain.ItemType, error) {
	query := `SELECT ` + itemColumns + ` FROM item_types WHERE id = $1`

	item := &domain.ItemType{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.IsVoucher, &item.AllowedStore, &item.Expiry,
		&item.BeneficiaryLimit, &item.StoreLimit, &item.CreatedBy, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item type: %w", err)
	}
	return item, nil
}

// GetTx fetches an item type inside a transaction. No lock is taken; item
// types are immutable once created.
func (r *ItemRepo) GetTx(ctx context.Context, tx pgx.Tx, id int64) (*domain.ItemType, error) {
	query := `SELECT ` + itemColumns + ` FROM item_types WHERE id = $1`

	item := &domain.ItemType{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.IsVoucher, &item.AllowedStore, &item.Expiry,
		&item.BeneficiaryLimit, &item.StoreLimit, &item.CreatedBy, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item type in tx: %w", err)
	}
	return item, nil
}
