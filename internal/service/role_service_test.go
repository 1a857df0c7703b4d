package service

import (
	"context"
	"testing"

	"aid-distribution-ledger/internal/core/domain"
	"aid-distribution-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type roleTestDeps struct {
	svc        *RoleServiceImpl
	roleRepo   *mocks.MockRoleRepository
	paramsRepo *mocks.MockParamsRepository
	transactor *mocks.MockDBTransactor
	admin      uuid.UUID
	ctrl       *gomock.Controller
}

func setupRoleService(t *testing.T) *roleTestDeps {
	ctrl := gomock.NewController(t)
	d := &roleTestDeps{
		roleRepo:   mocks.NewMockRoleRepository(ctrl),
		paramsRepo: mocks.NewMockParamsRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		admin:      uuid.New(),
		ctrl:       ctrl,
	}
	d.svc = NewRoleService(d.roleRepo, d.paramsRepo, d.transactor, d.admin, zerolog.Nop())
	return d
}

func TestRoleService_SetRole_Success(t *testing.T) {
	d := setupRoleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	target := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.roleRepo.EXPECT().Upsert(ctx, tx, target, domain.RoleDonor).Return(nil)

	err := d.svc.SetRole(ctx, d.admin, target, domain.RoleDonor)
	require.NoError(t, err)
}

func TestRoleService_SetRole_Overwrite(t *testing.T) {
	d := setupRoleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	target := uuid.New()
	tx := &mockTx{}

	// Reassignment goes through the same upsert; no history is kept.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil).Times(2)
	d.roleRepo.EXPECT().Upsert(ctx, tx, target, domain.RoleDonor).Return(nil)
	d.roleRepo.EXPECT().Upsert(ctx, tx, target, domain.RoleBeneficiary).Return(nil)

	require.NoError(t, d.svc.SetRole(ctx, d.admin, target, domain.RoleDonor))
	require.NoError(t, d.svc.SetRole(ctx, d.admin, target, domain.RoleBeneficiary))
}

func TestRoleService_SetRole_NotAdmin(t *testing.T) {
	d := setupRoleService(t)
	defer d.ctrl.Finish()

	err := d.svc.SetRole(context.Background(), uuid.New(), uuid.New(), domain.RoleDonor)
	assertAppError(t, err, "AUTH_002")
}

func TestRoleService_SetRole_ZeroAddress(t *testing.T) {
	d := setupRoleService(t)
	defer d.ctrl.Finish()

	err := d.svc.SetRole(context.Background(), d.admin, uuid.Nil, domain.RoleDonor)
	assertAppError(t, err, "VAL_002")
}

func TestRoleService_SetRole_UnknownRole(t *testing.T) {
	d := setupRoleService(t)
	defer d.ctrl.Finish()

	err := d.svc.SetRole(context.Background(), d.admin, uuid.New(), domain.Role("WIZARD"))
	assertAppError(t, err, "VAL_001")
}

func TestRoleService_SetGovernanceAuthority_Success(t *testing.T) {
	d := setupRoleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	authority := uuid.New()

	d.paramsRepo.EXPECT().SetGovernanceAuthority(ctx, authority).Return(nil)

	err := d.svc.SetGovernanceAuthority(ctx, d.admin, authority)
	require.NoError(t, err)
}

func TestRoleService_SetGovernanceAuthority_NotAdmin(t *testing.T) {
	d := setupRoleService(t)
	defer d.ctrl.Finish()

	err := d.svc.SetGovernanceAuthority(context.Background(), uuid.New(), uuid.New())
	assertAppError(t, err, "AUTH_002")
}

func TestRoleService_GetAccount_Unknown(t *testing.T) {
	d := setupRoleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()

	d.roleRepo.EXPECT().Get(ctx, id).Return(nil, nil)

	acct, err := d.svc.GetAccount(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, acct)
	assert.Equal(t, domain.RoleNone, acct.Role)
}
