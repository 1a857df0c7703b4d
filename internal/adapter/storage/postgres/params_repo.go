package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paramGovernanceAuthority = "governance_authority"

// ParamsRepo implements ports.ParamsRepository over the governance_params
// key/value table.
type ParamsRepo struct {
	pool Pool
}

// NewParamsRepo creates a new ParamsRepo.
func NewParamsRepo(pool Pool) *ParamsRepo {
	return &ParamsRepo{pool: pool}
}

// GetGovernanceAuthority returns the configured admission authority, or
// nil if none has been set yet.
func (r *ParamsRepo) GetGovernanceAuthority(ctx context.Context) (*uuid.UUID, error) {
	query := `SELECT value FROM governance_params WHERE param = $1`

	var authority uuid.UUID
	err := r.pool.QueryRow(ctx, query, paramGovernanceAuthority).Scan(&authority)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get governance authority: %w", err)
	}
	return &authority, nil
}

// GetGovernanceAuthorityTx reads the authority inside a transaction, so
// admission sees the value consistent with the rest of its unit.
func (r *ParamsRepo) GetGovernanceAuthorityTx(ctx context.Context, tx pgx.Tx) (*uuid.UUID, error) {
	query := `SELECT value FROM governance_params WHERE param = $1`

	var authority uuid.UUID
	err := tx.QueryRow(ctx, query, paramGovernanceAuthority).Scan(&authority)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get governance authority in tx: %w", err)
	}
	return &authority, nil
}

// SetGovernanceAuthority overwrites the admission authority.
func (r *ParamsRepo) SetGovernanceAuthority(ctx context.Context, authority uuid.UUID) error {
	query := `INSERT INTO governance_params (param, value)
		VALUES ($1, $2)
		ON CONFLICT (param) DO UPDATE SET value = EXCLUDED.value`

	if _, err := r.pool.Exec(ctx, query, paramGovernanceAuthority, authority); err != nil {
		return fmt.Errorf("set governance authority: %w", err)
	}
	return nil
}
