package service

import (
	"context"
	"fmt"
	"time"

	"aid-distribution-ledger/internal/core/domain"
	"aid-distribution-ledger/internal/core/ports"
	"aid-distribution-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService: settlement-credit
// movements between roles and conversion into catalog assets.
type LedgerServiceImpl struct {
	balanceRepo ports.BalanceRepository
	roleRepo    ports.RoleRepository
	itemRepo    ports.ItemRepository
	gateway     ports.SettlementGateway
	transactor  ports.DBTransactor
	log         zerolog.Logger
	now         func() time.Time
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	balanceRepo ports.BalanceRepository,
	roleRepo ports.RoleRepository,
	itemRepo ports.ItemRepository,
	gateway ports.SettlementGateway,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		balanceRepo: balanceRepo,
		roleRepo:    roleRepo,
		itemRepo:    itemRepo,
		gateway:     gateway,
		transactor:  transactor,
		log:         log,
		now:         time.Now,
	}
}

// Deposit mints settlement credit against externally supplied matching
// value. The external collection is confirmed first; only then does the
// ledger mutate, so a failed collection leaves no state behind.
func (s *LedgerServiceImpl) Deposit(ctx context.Context, req ports.DepositRequest) (*domain.Balance, error) {
	if req.Caller == uuid.Nil {
		return nil, apperror.ErrZeroAddress()
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	if err := s.gateway.CollectDeposit(ctx, req.Caller, req.Amount, req.Reference); err != nil {
		return nil, apperror.ErrDepositNotConfirmed(err)
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	prev, err := s.balanceRepo.GetForUpdate(ctx, tx, req.Caller, domain.SettlementAsset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if err := mintTx(ctx, tx, s.balanceRepo, req.Caller, domain.SettlementAsset, req.Amount); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("account", req.Caller.String()).
		Int64("amount", req.Amount).
		Str("reference", req.Reference).
		Msg("settlement credit deposited")

	return &domain.Balance{
		AccountID: req.Caller,
		AssetType: domain.SettlementAsset,
		Amount:    prev + req.Amount,
		UpdatedAt: s.now().UTC(),
	}, nil
}

// WithdrawDonation burns a donor's settlement credit and pays the value
// out through the external primitive. The burn happens first inside the
// transaction; a failed payout rolls the burn back with it.
func (s *LedgerServiceImpl) WithdrawDonation(ctx context.Context, caller uuid.UUID, amount int64) error {
	if _, err := requireRole(ctx, s.roleRepo, caller, domain.RoleDonor); err != nil {
		return err
	}
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := burnTx(ctx, tx, s.balanceRepo, caller, domain.SettlementAsset, amount); err != nil {
		return err
	}
	if err := s.gateway.Payout(ctx, caller, amount); err != nil {
		return apperror.ErrSettlementTransferFailed(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("donor", caller.String()).
		Int64("amount", amount).
		Msg("donation withdrawn")
	return nil
}

// AssignToOrganisation transfers settlement credit to an organisation.
func (s *LedgerServiceImpl) AssignToOrganisation(ctx context.Context, caller uuid.UUID, recipient uuid.UUID, amount int64) error {
	if _, err := requireAnyRole(ctx, s.roleRepo, caller, domain.RoleDonor, domain.RoleOrganisation); err != nil {
		return err
	}
	if recipient == uuid.Nil {
		return apperror.ErrZeroAddress()
	}
	acct, err := s.roleRepo.Get(ctx, recipient)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("resolve recipient: %w", err))
	}
	if acct == nil || acct.Role != domain.RoleOrganisation {
		return apperror.ErrTargetRoleRequired(string(domain.RoleOrganisation))
	}
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := transferTx(ctx, tx, s.balanceRepo, caller, recipient, domain.SettlementAsset, amount); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("from", caller.String()).
		Str("organisation", recipient.String()).
		Int64("amount", amount).
		Msg("credit assigned to organisation")
	return nil
}

// Convert burns an organisation's settlement credit and mints units of a
// catalog asset in its place, atomically.
func (s *LedgerServiceImpl) Convert(ctx context.Context, req ports.ConvertRequest) error {
	if _, err := requireRole(ctx, s.roleRepo, req.Caller, domain.RoleOrganisation); err != nil {
		return err
	}
	if req.MoneyAmount <= 0 || req.MintAmount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if req.AssetType == domain.SettlementAsset {
		return apperror.ErrSettlementAssetForbidden()
	}
	item, err := s.itemRepo.Get(ctx, req.AssetType)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get item type: %w", err))
	}
	if item == nil {
		return apperror.ErrUnknownAssetType(req.AssetType)
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := burnTx(ctx, tx, s.balanceRepo, req.Caller, domain.SettlementAsset, req.MoneyAmount); err != nil {
		return err
	}
	if err := mintTx(ctx, tx, s.balanceRepo, req.Caller, req.AssetType, req.MintAmount); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("organisation", req.Caller.String()).
		Int64("money_amount", req.MoneyAmount).
		Int64("asset_type", req.AssetType).
		Int64("mint_amount", req.MintAmount).
		Msg("credit converted to catalog asset")
	return nil
}

// AssignToBeneficiary transfers catalog asset units to a beneficiary.
func (s *LedgerServiceImpl) AssignToBeneficiary(ctx context.Context, req ports.GrantRequest) error {
	if _, err := requireRole(ctx, s.roleRepo, req.Caller, domain.RoleOrganisation); err != nil {
		return err
	}
	if req.Beneficiary == uuid.Nil {
		return apperror.ErrZeroAddress()
	}
	acct, err := s.roleRepo.Get(ctx, req.Beneficiary)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("resolve beneficiary: %w", err))
	}
	if acct == nil || acct.Role != domain.RoleBeneficiary {
		return apperror.ErrTargetRoleRequired(string(domain.RoleBeneficiary))
	}
	if req.Amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if req.AssetType == domain.SettlementAsset {
		return apperror.ErrSettlementAssetForbidden()
	}
	item, err := s.itemRepo.Get(ctx, req.AssetType)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get item type: %w", err))
	}
	if item == nil {
		return apperror.ErrUnknownAssetType(req.AssetType)
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := transferTx(ctx, tx, s.balanceRepo, req.Caller, req.Beneficiary, req.AssetType, req.Amount); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("organisation", req.Caller.String()).
		Str("beneficiary", req.Beneficiary.String()).
		Int64("asset_type", req.AssetType).
		Int64("amount", req.Amount).
		Msg("asset assigned to beneficiary")
	return nil
}

// Balance reads one ledger entry.
func (s *LedgerServiceImpl) Balance(ctx context.Context, account uuid.UUID, assetType int64) (int64, error) {
	if account == uuid.Nil {
		return 0, apperror.ErrZeroAddress()
	}
	bal, err := s.balanceRepo.Get(ctx, account, assetType)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}
	return bal, nil
}

// Supply reads the mint/burn totals for an asset type.
func (s *LedgerServiceImpl) Supply(ctx context.Context, assetType int64) (*domain.AssetSupply, error) {
	sup, err := s.balanceRepo.GetSupply(ctx, assetType)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get supply: %w", err))
	}
	if sup == nil {
		sup = &domain.AssetSupply{AssetType: assetType}
	}
	return sup, nil
}
