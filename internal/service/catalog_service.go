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

// CatalogServiceImpl implements ports.CatalogService. Item types are
// created once by an organisation and never mutated or deleted; limits and
// expiry are fixed forever.
type CatalogServiceImpl struct {
	itemRepo   ports.ItemRepository
	roleRepo   ports.RoleRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewCatalogService creates a new CatalogServiceImpl.
func NewCatalogService(
	itemRepo ports.ItemRepository,
	roleRepo ports.RoleRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		itemRepo:   itemRepo,
		roleRepo:   roleRepo,
		transactor: transactor,
		log:        log,
		now:        time.Now,
	}
}

// CreateItemType registers a new redeemable asset type and returns it with
// its freshly allocated id.
func (s *CatalogServiceImpl) CreateItemType(ctx context.Context, req ports.CreateItemRequest) (*domain.ItemType, error) {
	if _, err := requireRole(ctx, s.roleRepo, req.Caller, domain.RoleOrganisation); err != nil {
		return nil, err
	}
	if req.BeneficiaryLimit <= 0 || req.StoreLimit <= 0 {
		return nil, apperror.ErrInvalidItemDefinition("both limits must be positive")
	}
	if req.IsVoucher {
		if req.AllowedStore == nil || *req.AllowedStore == uuid.Nil {
			return nil, apperror.ErrInvalidItemDefinition("voucher requires an allowed store")
		}
		if req.Expiry != nil && !req.Expiry.After(s.now()) {
			return nil, apperror.ErrInvalidItemDefinition("voucher expiry must be in the future")
		}
	}

	item := &domain.ItemType{
		IsVoucher:        req.IsVoucher,
		AllowedStore:     req.AllowedStore,
		Expiry:           req.Expiry,
		BeneficiaryLimit: req.BeneficiaryLimit,
		StoreLimit:       req.StoreLimit,
		CreatedBy:        req.Caller,
		CreatedAt:        s.now().UTC(),
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	id, err := s.itemRepo.Create(ctx, tx, item)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create item type: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	item.ID = id

	s.log.Info().
		Int64("item_id", id).
		Bool("is_voucher", item.IsVoucher).
		Int64("beneficiary_limit", item.BeneficiaryLimit).
		Int64("store_limit", item.StoreLimit).
		Msg("item type created")
	return item, nil
}

// GetItemType looks up catalog metadata by id.
func (s *CatalogServiceImpl) GetItemType(ctx context.Context, id int64) (*domain.ItemType, error) {
	item, err := s.itemRepo.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get item type: %w", err))
	}
	if item == nil {
		return nil, apperror.ErrUnknownAssetType(id)
	}
	return item, nil
}
