package ports

import (
	"context"

	"aid-distribution-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RoleRepository defines persistence for the account -> role table and the
// store identity bijection.
type RoleRepository interface {
	// Upsert overwrites the account's role (no history kept).
	Upsert(ctx context.Context, tx pgx.Tx, account uuid.UUID, role domain.Role) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	// GetStoreID returns the stable store id for the account, or nil if the
	// account has never been admitted.
	GetStoreID(ctx context.Context, tx pgx.Tx, account uuid.UUID) (*int64, error)
	// AllocateStoreID assigns the next sequential store id to the account
	// and records the bijection. Must only be called when no id exists yet.
	AllocateStoreID(ctx context.Context, tx pgx.Tx, account uuid.UUID) (int64, error)
}

// BalanceRepository defines persistence for (account, asset type) balances
// and per-asset supply totals. Methods accepting pgx.Tx run inside the
// atomic unit of a mutating operation with pessimistic locking.
type BalanceRepository interface {
	Get(ctx context.Context, account uuid.UUID, assetType int64) (int64, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, account uuid.UUID, assetType int64) (int64, error)
	// Add upserts the balance row by delta. Callers check sufficiency
	// beforehand under the row lock; rows never go negative.
	Add(ctx context.Context, tx pgx.Tx, account uuid.UUID, assetType int64, delta int64) error
	AddMinted(ctx context.Context, tx pgx.Tx, assetType int64, amount int64) error
	AddBurned(ctx context.Context, tx pgx.Tx, assetType int64, amount int64) error
	GetSupply(ctx context.Context, assetType int64) (*domain.AssetSupply, error)
	// SumBalances totals all balances of one asset type (conservation audit).
	SumBalances(ctx context.Context, assetType int64) (int64, error)
}

// ItemRepository defines persistence for the immutable item catalog.
type ItemRepository interface {
	// Create inserts the item and returns its freshly allocated id (>= 1).
	Create(ctx context.Context, tx pgx.Tx, item *domain.ItemType) (int64, error)
	Get(ctx context.Context, id int64) (*domain.ItemType, error)
	GetTx(ctx context.Context, tx pgx.Tx, id int64) (*domain.ItemType, error)
}

// RedemptionRepository defines persistence for the per-(asset, account,
// side) usage counters.
type RedemptionRepository interface {
	GetUsage(ctx context.Context, assetType int64, account uuid.UUID, side domain.UsageSide) (int64, error)
	GetUsageForUpdate(ctx context.Context, tx pgx.Tx, assetType int64, account uuid.UUID, side domain.UsageSide) (int64, error)
	// SetUsage writes the new counter total. Counters only ever grow.
	SetUsage(ctx context.Context, tx pgx.Tx, assetType int64, account uuid.UUID, side domain.UsageSide, total int64) error
}

// SettlementRepository defines persistence for the pending-settlement
// escrow table.
type SettlementRepository interface {
	Get(ctx context.Context, store uuid.UUID) (*domain.PendingSettlement, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, store uuid.UUID) (*domain.PendingSettlement, error)
	// Credit increases pending and total_redeemed by amount (upsert).
	Credit(ctx context.Context, tx pgx.Tx, store uuid.UUID, amount int64) error
	// Debit decreases pending and increases total_withdrawn by amount.
	Debit(ctx context.Context, tx pgx.Tx, store uuid.UUID, amount int64) error
}

// ProposalRepository defines persistence for governance proposals and vote
// records.
type ProposalRepository interface {
	// Create inserts the proposal and returns its sequential id.
	Create(ctx context.Context, tx pgx.Tx, p *domain.Proposal) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Proposal, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Proposal, error)
	// UpdateTallies persists the vote counters of a locked proposal row.
	UpdateTallies(ctx context.Context, tx pgx.Tx, p *domain.Proposal) error
	// MarkExecuted flips the terminal executed flag with its outcome.
	MarkExecuted(ctx context.Context, tx pgx.Tx, id int64, passed bool, storeID *int64) error
	HasVoted(ctx context.Context, tx pgx.Tx, proposalID int64, voter uuid.UUID) (bool, error)
	RecordVote(ctx context.Context, tx pgx.Tx, v *domain.VoteRecord) error
}

// ParamsRepository persists governance wiring parameters, currently the
// sole principal authorized to trigger store admission.
type ParamsRepository interface {
	GetGovernanceAuthority(ctx context.Context) (*uuid.UUID, error)
	GetGovernanceAuthorityTx(ctx context.Context, tx pgx.Tx) (*uuid.UUID, error)
	SetGovernanceAuthority(ctx context.Context, authority uuid.UUID) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
