package postgres

import (
	"context"
	"testing"
	"time"

	"aid-distribution-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountColumns() []string {
	return []string{"id", "role", "store_id", "created_at", "updated_at"}
}

func TestRoleRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	account := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(account, domain.RoleDonor).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Upsert(context.Background(), tx, account, domain.RoleDonor)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM accounts a").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(accountColumns()).
			AddRow(id, domain.RoleOrganisation, (*int64)(nil), now, now))

	acct, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, acct)
	assert.Equal(t, domain.RoleOrganisation, acct.Role)
	assert.Nil(t, acct.StoreID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_Get_Unknown(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM accounts a").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(accountColumns()))

	acct, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, acct)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_Get_StoreWithIdentity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	id := uuid.New()
	storeID := int64(3)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM accounts a").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(accountColumns()).
			AddRow(id, domain.RoleStore, &storeID, now, now))

	acct, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, acct)
	require.NotNil(t, acct.StoreID)
	assert.Equal(t, int64(3), *acct.StoreID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_GetStoreID_NotAdmitted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	account := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT store_id FROM store_identities").
		WithArgs(account).
		WillReturnRows(pgxmock.NewRows([]string{"store_id"}))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	storeID, err := repo.GetStoreID(context.Background(), tx, account)
	require.NoError(t, err)
	assert.Nil(t, storeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_AllocateStoreID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	account := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO store_identities").
		WithArgs(account).
		WillReturnRows(pgxmock.NewRows([]string{"store_id"}).AddRow(int64(1)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	storeID, err := repo.AllocateStoreID(context.Background(), tx, account)
	require.NoError(t, err)
	assert.Equal(t, int64(1), storeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
