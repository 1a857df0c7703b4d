package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settlementTestColumns() []string {
	return []string{"store_id", "pending", "total_redeemed", "total_withdrawn", "updated_at"}
}

func TestSettlementRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettlementRepo(mock)
	store := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM pending_settlements WHERE store_id").
		WithArgs(store).
		WillReturnRows(pgxmock.NewRows(settlementTestColumns()).
			AddRow(store, int64(40), int64(100), int64(60), now))

	entry, err := repo.Get(context.Background(), store)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, int64(40), entry.Pending)
	assert.Equal(t, int64(100), entry.TotalRedeemed)
	assert.Equal(t, int64(60), entry.TotalWithdrawn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlementRepo_Get_NeverRedeemed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettlementRepo(mock)
	store := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM pending_settlements WHERE store_id").
		WithArgs(store).
		WillReturnRows(pgxmock.NewRows(settlementTestColumns()))

	entry, err := repo.Get(context.Background(), store)
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlementRepo_Credit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettlementRepo(mock)
	store := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO pending_settlements").
		WithArgs(store, int64(25)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Credit(context.Background(), tx, store, 25)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlementRepo_Debit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettlementRepo(mock)
	store := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE pending_settlements").
		WithArgs(store, int64(25)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Debit(context.Background(), tx, store, 25)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlementRepo_Debit_MissingEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettlementRepo(mock)
	store := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE pending_settlements").
		WithArgs(store, int64(25)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Debit(context.Background(), tx, store, 25)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
