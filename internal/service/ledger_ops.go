package service

import (
	"context"
	"fmt"

	"aid-distribution-ledger/internal/core/domain"
	"aid-distribution-ledger/internal/core/ports"
	"aid-distribution-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Ledger primitives shared by the ledger and redemption services. All three
// run inside the caller's transaction; callers commit or roll back the
// whole unit, so no partial effect is ever observable.

// mintTx increases a balance and the asset's minted total.
func mintTx(ctx context.Context, tx pgx.Tx, balances ports.BalanceRepository, account uuid.UUID, assetType, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if err := balances.Add(ctx, tx, account, assetType, amount); err != nil {
		return apperror.InternalError(fmt.Errorf("credit balance: %w", err))
	}
	if err := balances.AddMinted(ctx, tx, assetType, amount); err != nil {
		return apperror.InternalError(fmt.Errorf("record mint: %w", err))
	}
	return nil
}

// burnTx decreases a balance and bumps the asset's burned total. The
// balance row is locked, so the sufficiency check holds until commit.
func burnTx(ctx context.Context, tx pgx.Tx, balances ports.BalanceRepository, account uuid.UUID, assetType, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	bal, err := balances.GetForUpdate(ctx, tx, account, assetType)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if bal < amount {
		return apperror.ErrInsufficientFunds()
	}
	if err := balances.Add(ctx, tx, account, assetType, -amount); err != nil {
		return apperror.InternalError(fmt.Errorf("debit balance: %w", err))
	}
	if err := balances.AddBurned(ctx, tx, assetType, amount); err != nil {
		return apperror.InternalError(fmt.Errorf("record burn: %w", err))
	}
	return nil
}

// transferTx atomically moves amount between two accounts of one asset.
func transferTx(ctx context.Context, tx pgx.Tx, balances ports.BalanceRepository, from, to uuid.UUID, assetType, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	bal, err := balances.GetForUpdate(ctx, tx, from, assetType)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if bal < amount {
		return apperror.ErrInsufficientFunds()
	}
	if err := balances.Add(ctx, tx, from, assetType, -amount); err != nil {
		return apperror.InternalError(fmt.Errorf("debit sender: %w", err))
	}
	if err := balances.Add(ctx, tx, to, assetType, amount); err != nil {
		return apperror.InternalError(fmt.Errorf("credit recipient: %w", err))
	}
	return nil
}

// requireRole resolves the account's current role from the registry and
// checks it. Roles are never trusted from tokens; they may have been
// overwritten since issuance.
func requireRole(ctx context.Context, roles ports.RoleRepository, account uuid.UUID, want domain.Role) (*domain.Account, error) {
	if account == uuid.Nil {
		return nil, apperror.ErrZeroAddress()
	}
	acct, err := roles.Get(ctx, account)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve role: %w", err))
	}
	if acct == nil || acct.Role != want {
		return nil, apperror.ErrRoleRequired(string(want))
	}
	return acct, nil
}

// requireAnyRole is requireRole over a closed set of acceptable roles.
func requireAnyRole(ctx context.Context, roles ports.RoleRepository, account uuid.UUID, want ...domain.Role) (*domain.Account, error) {
	if account == uuid.Nil {
		return nil, apperror.ErrZeroAddress()
	}
	acct, err := roles.Get(ctx, account)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve role: %w", err))
	}
	if acct != nil {
		for _, r := range want {
			if acct.Role == r {
				return acct, nil
			}
		}
	}
	return nil, apperror.ErrRoleRequired(string(want[0]))
}
