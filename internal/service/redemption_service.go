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

// RedemptionServiceImpl implements ports.RedemptionService: the redemption
// limiter and the pending-settlement escrow. Every mutating call is one
// database transaction; a failure anywhere leaves no state mutated.
type RedemptionServiceImpl struct {
	balanceRepo    ports.BalanceRepository
	roleRepo       ports.RoleRepository
	itemRepo       ports.ItemRepository
	redemptionRepo ports.RedemptionRepository
	settlementRepo ports.SettlementRepository
	gateway        ports.SettlementGateway
	transactor     ports.DBTransactor
	log            zerolog.Logger
	now            func() time.Time
}

// NewRedemptionService creates a new RedemptionServiceImpl.
func NewRedemptionService(
	balanceRepo ports.BalanceRepository,
	roleRepo ports.RoleRepository,
	itemRepo ports.ItemRepository,
	redemptionRepo ports.RedemptionRepository,
	settlementRepo ports.SettlementRepository,
	gateway ports.SettlementGateway,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *RedemptionServiceImpl {
	return &RedemptionServiceImpl{
		balanceRepo:    balanceRepo,
		roleRepo:       roleRepo,
		itemRepo:       itemRepo,
		redemptionRepo: redemptionRepo,
		settlementRepo: settlementRepo,
		gateway:        gateway,
		transactor:     transactor,
		log:            log,
		now:            time.Now,
	}
}

// Redeem burns a beneficiary's asset units on behalf of a store, advances
// both usage counters, and credits the store's escrow, atomically.
func (s *RedemptionServiceImpl) Redeem(ctx context.Context, req ports.RedeemRequest) (*domain.PendingSettlement, error) {
	if _, err := requireRole(ctx, s.roleRepo, req.Caller, domain.RoleStore); err != nil {
		return nil, err
	}
	if req.Beneficiary == uuid.Nil {
		return nil, apperror.ErrZeroAddress()
	}
	acct, err := s.roleRepo.Get(ctx, req.Beneficiary)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve beneficiary: %w", err))
	}
	if acct == nil || acct.Role != domain.RoleBeneficiary {
		return nil, apperror.ErrTargetRoleRequired(string(domain.RoleBeneficiary))
	}
	if req.AssetType == domain.SettlementAsset {
		return nil, apperror.ErrSettlementAssetForbidden()
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	item, err := s.itemRepo.Get(ctx, req.AssetType)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get item type: %w", err))
	}
	if item == nil {
		return nil, apperror.ErrUnknownAssetType(req.AssetType)
	}
	if !item.RedeemableBy(req.Caller) {
		return nil, apperror.ErrWrongStore()
	}
	if item.Expired(s.now()) {
		return nil, apperror.ErrVoucherExpired()
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	benUsed, err := s.redemptionRepo.GetUsageForUpdate(ctx, tx, req.AssetType, req.Beneficiary, domain.UsageBeneficiary)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock beneficiary counter: %w", err))
	}
	newBenTotal := benUsed + req.Amount
	if newBenTotal > item.BeneficiaryLimit {
		return nil, apperror.ErrBeneficiaryLimitExceeded()
	}

	storeUsed, err := s.redemptionRepo.GetUsageForUpdate(ctx, tx, req.AssetType, req.Caller, domain.UsageStore)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock store counter: %w", err))
	}
	newStoreTotal := storeUsed + req.Amount
	if newStoreTotal > item.StoreLimit {
		return nil, apperror.ErrStoreLimitExceeded()
	}

	// Burns the units, advances both counters, credits the escrow. The
	// burn's locked sufficiency check covers step 6.
	if err := burnTx(ctx, tx, s.balanceRepo, req.Beneficiary, req.AssetType, req.Amount); err != nil {
		return nil, err
	}
	if err := s.redemptionRepo.SetUsage(ctx, tx, req.AssetType, req.Beneficiary, domain.UsageBeneficiary, newBenTotal); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("advance beneficiary counter: %w", err))
	}
	if err := s.redemptionRepo.SetUsage(ctx, tx, req.AssetType, req.Caller, domain.UsageStore, newStoreTotal); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("advance store counter: %w", err))
	}
	if err := s.settlementRepo.Credit(ctx, tx, req.Caller, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit escrow: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("store", req.Caller.String()).
		Str("beneficiary", req.Beneficiary.String()).
		Int64("asset_type", req.AssetType).
		Int64("amount", req.Amount).
		Msg("units redeemed")

	return s.Pending(ctx, req.Caller)
}

// StoreWithdraw debits the store's escrow and pays the value out through
// the external primitive. The debit happens first, inside the transaction;
// a failed payout rolls the debit back with it, so a store can never end
// up debited but unpaid.
func (s *RedemptionServiceImpl) StoreWithdraw(ctx context.Context, caller uuid.UUID, amount int64) (*domain.PendingSettlement, error) {
	if _, err := requireRole(ctx, s.roleRepo, caller, domain.RoleStore); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	entry, err := s.settlementRepo.GetForUpdate(ctx, tx, caller)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock escrow: %w", err))
	}
	if entry == nil || entry.Pending < amount {
		return nil, apperror.ErrInsufficientEscrow()
	}
	if err := s.settlementRepo.Debit(ctx, tx, caller, amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit escrow: %w", err))
	}
	if err := s.gateway.Payout(ctx, caller, amount); err != nil {
		return nil, apperror.ErrSettlementTransferFailed(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("store", caller.String()).
		Int64("amount", amount).
		Msg("settlement withdrawn")

	return s.Pending(ctx, caller)
}

// Pending reads the store's escrow entry. Stores with no redemptions yet
// resolve to a zero entry.
func (s *RedemptionServiceImpl) Pending(ctx context.Context, store uuid.UUID) (*domain.PendingSettlement, error) {
	if store == uuid.Nil {
		return nil, apperror.ErrZeroAddress()
	}
	entry, err := s.settlementRepo.Get(ctx, store)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get escrow: %w", err))
	}
	if entry == nil {
		return &domain.PendingSettlement{StoreID: store}, nil
	}
	return entry, nil
}
