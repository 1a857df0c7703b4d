package service

import (
	"context"
	"fmt"

	"aid-distribution-ledger/internal/core/domain"
	"aid-distribution-ledger/internal/core/ports"
	"aid-distribution-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RoleServiceImpl implements ports.RoleService. The administrator account
// is fixed at construction from configuration.
type RoleServiceImpl struct {
	roleRepo   ports.RoleRepository
	paramsRepo ports.ParamsRepository
	transactor ports.DBTransactor
	admin      uuid.UUID
	log        zerolog.Logger
}

// NewRoleService creates a new RoleServiceImpl.
func NewRoleService(
	roleRepo ports.RoleRepository,
	paramsRepo ports.ParamsRepository,
	transactor ports.DBTransactor,
	admin uuid.UUID,
	log zerolog.Logger,
) *RoleServiceImpl {
	return &RoleServiceImpl{
		roleRepo:   roleRepo,
		paramsRepo: paramsRepo,
		transactor: transactor,
		admin:      admin,
		log:        log,
	}
}

// SetRole overwrites the account's role. Administrator only; zero-address
// accounts are rejected. No history is kept.
func (s *RoleServiceImpl) SetRole(ctx context.Context, caller uuid.UUID, account uuid.UUID, role domain.Role) error {
	if caller != s.admin {
		return apperror.ErrAdminOnly()
	}
	if account == uuid.Nil {
		return apperror.ErrZeroAddress()
	}
	if !role.Valid() {
		return apperror.Validation(fmt.Sprintf("unknown role %q", role))
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.roleRepo.Upsert(ctx, tx, account, role); err != nil {
		return apperror.InternalError(fmt.Errorf("upsert role: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("account", account.String()).
		Str("role", string(role)).
		Msg("role assigned")
	return nil
}

// SetGovernanceAuthority configures the sole principal allowed to trigger
// store admission. Administrator only.
func (s *RoleServiceImpl) SetGovernanceAuthority(ctx context.Context, caller uuid.UUID, authority uuid.UUID) error {
	if caller != s.admin {
		return apperror.ErrAdminOnly()
	}
	if authority == uuid.Nil {
		return apperror.ErrZeroAddress()
	}

	if err := s.paramsRepo.SetGovernanceAuthority(ctx, authority); err != nil {
		return apperror.InternalError(fmt.Errorf("set governance authority: %w", err))
	}

	s.log.Info().Str("authority", authority.String()).Msg("governance authority configured")
	return nil
}

// GetAccount returns the account's current role and store id. Unknown
// accounts resolve to RoleNone rather than an error.
func (s *RoleServiceImpl) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if id == uuid.Nil {
		return nil, apperror.ErrZeroAddress()
	}
	acct, err := s.roleRepo.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if acct == nil {
		return &domain.Account{ID: id, Role: domain.RoleNone}, nil
	}
	return acct, nil
}
