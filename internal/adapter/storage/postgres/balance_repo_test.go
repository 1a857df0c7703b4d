package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	account := uuid.New()

	mock.ExpectQuery("SELECT amount FROM balances WHERE account_id").
		WithArgs(account, int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"amount"}).AddRow(int64(42)))

	amount, err := repo.Get(context.Background(), account, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(42), amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_Get_NoRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	account := uuid.New()

	mock.ExpectQuery("SELECT amount FROM balances WHERE account_id").
		WithArgs(account, int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"amount"}))

	amount, err := repo.Get(context.Background(), account, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	account := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT amount FROM balances WHERE account_id .+ FOR UPDATE").
		WithArgs(account, int64(0)).
		WillReturnRows(pgxmock.NewRows([]string{"amount"}).AddRow(int64(100)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	amount, err := repo.GetForUpdate(context.Background(), tx, account, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(100), amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_Add_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	account := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO balances").
		WithArgs(account, int64(3), int64(-5)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Add(context.Background(), tx, account, 3, -5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_AddMinted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO asset_supply").
		WithArgs(int64(3), int64(10)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.AddMinted(context.Background(), tx, 3, 10)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_GetSupply_NeverMinted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)

	mock.ExpectQuery("SELECT asset_type, minted, burned FROM asset_supply").
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"asset_type", "minted", "burned"}))

	sup, err := repo.GetSupply(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, sup)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_SumBalances(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(77)))

	sum, err := repo.SumBalances(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(77), sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}
