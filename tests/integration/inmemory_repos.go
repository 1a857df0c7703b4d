package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"aid-distribution-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Role Repo ---

type inMemoryRoleRepo struct {
	mu          sync.RWMutex
	accounts    map[uuid.UUID]*domain.Account
	storeIDs    map[uuid.UUID]int64
	nextStoreID int64
}

func newInMemoryRoleRepo() *inMemoryRoleRepo {
	return &inMemoryRoleRepo{
		accounts: make(map[uuid.UUID]*domain.Account),
		storeIDs: make(map[uuid.UUID]int64),
	}
}

func (r *inMemoryRoleRepo) Upsert(ctx context.Context, tx pgx.Tx, account uuid.UUID, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.accounts[account]; ok {
		existing.Role = role
		existing.UpdatedAt = now
		return nil
	}
	r.accounts[account] = &domain.Account{ID: account, Role: role, CreatedAt: now, UpdatedAt: now}
	return nil
}

func (r *inMemoryRoleRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(id), nil
}

func (r *inMemoryRoleRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	return r.Get(ctx, id)
}

func (r *inMemoryRoleRepo) GetStoreID(ctx context.Context, tx pgx.Tx, account uuid.UUID) (*int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.storeIDs[account]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

func (r *inMemoryRoleRepo) AllocateStoreID(ctx context.Context, tx pgx.Tx, account uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.storeIDs[account]; ok {
		return id, nil
	}
	r.nextStoreID++
	r.storeIDs[account] = r.nextStoreID
	return r.nextStoreID, nil
}

// snapshot copies the account so callers never share repo-owned state.
// Callers must hold at least the read lock.
func (r *inMemoryRoleRepo) snapshot(id uuid.UUID) *domain.Account {
	acct, ok := r.accounts[id]
	if !ok {
		return nil
	}
	out := *acct
	if storeID, ok := r.storeIDs[id]; ok {
		out.StoreID = &storeID
	}
	return &out
}

// --- In-Memory Balance Repo ---

type balanceKey struct {
	account   uuid.UUID
	assetType int64
}

type inMemoryBalanceRepo struct {
	mu       sync.RWMutex
	balances map[balanceKey]int64
	supply   map[int64]*domain.AssetSupply
}

func newInMemoryBalanceRepo() *inMemoryBalanceRepo {
	return &inMemoryBalanceRepo{
		balances: make(map[balanceKey]int64),
		supply:   make(map[int64]*domain.AssetSupply),
	}
}

func (r *inMemoryBalanceRepo) Get(ctx context.Context, account uuid.UUID, assetType int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balances[balanceKey{account, assetType}], nil
}

func (r *inMemoryBalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, account uuid.UUID, assetType int64) (int64, error) {
	return r.Get(ctx, account, assetType)
}

func (r *inMemoryBalanceRepo) Add(ctx context.Context, tx pgx.Tx, account uuid.UUID, assetType, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := balanceKey{account, assetType}
	next := r.balances[key] + delta
	if next < 0 {
		return fmt.Errorf("balance would go negative")
	}
	r.balances[key] = next
	return nil
}

func (r *inMemoryBalanceRepo) AddMinted(ctx context.Context, tx pgx.Tx, assetType, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sup, ok := r.supply[assetType]
	if !ok {
		sup = &domain.AssetSupply{AssetType: assetType}
		r.supply[assetType] = sup
	}
	sup.Minted += amount
	return nil
}

func (r *inMemoryBalanceRepo) AddBurned(ctx context.Context, tx pgx.Tx, assetType, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sup, ok := r.supply[assetType]
	if !ok {
		sup = &domain.AssetSupply{AssetType: assetType}
		r.supply[assetType] = sup
	}
	sup.Burned += amount
	return nil
}

func (r *inMemoryBalanceRepo) GetSupply(ctx context.Context, assetType int64) (*domain.AssetSupply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sup, ok := r.supply[assetType]
	if !ok {
		return nil, nil
	}
	out := *sup
	return &out, nil
}

func (r *inMemoryBalanceRepo) SumBalances(ctx context.Context, assetType int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total int64
	for key, amount := range r.balances {
		if key.assetType == assetType {
			total += amount
		}
	}
	return total, nil
}

// --- In-Memory Item Repo ---

type inMemoryItemRepo struct {
	mu     sync.RWMutex
	items  map[int64]*domain.ItemType
	nextID int64
}

func newInMemoryItemRepo() *inMemoryItemRepo {
	return &inMemoryItemRepo{items: make(map[int64]*domain.ItemType)}
}

func (r *inMemoryItemRepo) Create(ctx context.Context, tx pgx.Tx, item *domain.ItemType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := *item
	stored.ID = r.nextID
	r.items[stored.ID] = &stored
	return stored.ID, nil
}

func (r *inMemoryItemRepo) Get(ctx context.Context, id int64) (*domain.ItemType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	out := *item
	return &out, nil
}

func (r *inMemoryItemRepo) GetTx(ctx context.Context, tx pgx.Tx, id int64) (*domain.ItemType, error) {
	return r.Get(ctx, id)
}

// --- In-Memory Redemption Repo ---

type usageKey struct {
	assetType int64
	account   uuid.UUID
	side      domain.UsageSide
}

type inMemoryRedemptionRepo struct {
	mu    sync.RWMutex
	usage map[usageKey]int64
}

func newInMemoryRedemptionRepo() *inMemoryRedemptionRepo {
	return &inMemoryRedemptionRepo{usage: make(map[usageKey]int64)}
}

func (r *inMemoryRedemptionRepo) GetUsage(ctx context.Context, assetType int64, account uuid.UUID, side domain.UsageSide) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.usage[usageKey{assetType, account, side}], nil
}

func (r *inMemoryRedemptionRepo) GetUsageForUpdate(ctx context.Context, tx pgx.Tx, assetType int64, account uuid.UUID, side domain.UsageSide) (int64, error) {
	return r.GetUsage(ctx, assetType, account, side)
}

func (r *inMemoryRedemptionRepo) SetUsage(ctx context.Context, tx pgx.Tx, assetType int64, account uuid.UUID, side domain.UsageSide, total int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.usage[usageKey{assetType, account, side}] = total
	return nil
}

// --- In-Memory Settlement Repo ---

type inMemorySettlementRepo struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*domain.PendingSettlement
}

func newInMemorySettlementRepo() *inMemorySettlementRepo {
	return &inMemorySettlementRepo{entries: make(map[uuid.UUID]*domain.PendingSettlement)}
}

func (r *inMemorySettlementRepo) Get(ctx context.Context, store uuid.UUID) (*domain.PendingSettlement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[store]
	if !ok {
		return nil, nil
	}
	out := *entry
	return &out, nil
}

func (r *inMemorySettlementRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, store uuid.UUID) (*domain.PendingSettlement, error) {
	return r.Get(ctx, store)
}

func (r *inMemorySettlementRepo) Credit(ctx context.Context, tx pgx.Tx, store uuid.UUID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[store]
	if !ok {
		entry = &domain.PendingSettlement{StoreID: store}
		r.entries[store] = entry
	}
	entry.Pending += amount
	entry.TotalRedeemed += amount
	entry.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemorySettlementRepo) Debit(ctx context.Context, tx pgx.Tx, store uuid.UUID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[store]
	if !ok || entry.Pending < amount {
		return fmt.Errorf("escrow entry short by %d", amount)
	}
	entry.Pending -= amount
	entry.TotalWithdrawn += amount
	entry.UpdatedAt = time.Now().UTC()
	return nil
}

// --- In-Memory Proposal Repo ---

type voteKey struct {
	proposalID int64
	voter      uuid.UUID
}

type inMemoryProposalRepo struct {
	mu        sync.RWMutex
	proposals map[int64]*domain.Proposal
	votes     map[voteKey]*domain.VoteRecord
	nextID    int64
}

func newInMemoryProposalRepo() *inMemoryProposalRepo {
	return &inMemoryProposalRepo{
		proposals: make(map[int64]*domain.Proposal),
		votes:     make(map[voteKey]*domain.VoteRecord),
	}
}

func (r *inMemoryProposalRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Proposal) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := *p
	stored.ID = r.nextID
	r.proposals[stored.ID] = &stored
	return stored.ID, nil
}

func (r *inMemoryProposalRepo) Get(ctx context.Context, id int64) (*domain.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.proposals[id]
	if !ok {
		return nil, nil
	}
	out := *p
	return &out, nil
}

func (r *inMemoryProposalRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Proposal, error) {
	return r.Get(ctx, id)
}

func (r *inMemoryProposalRepo) UpdateTallies(ctx context.Context, tx pgx.Tx, p *domain.Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.proposals[p.ID]
	if !ok {
		return fmt.Errorf("proposal %d not found", p.ID)
	}
	stored.ForVotes = p.ForVotes
	stored.AgainstVotes = p.AgainstVotes
	stored.AbstainVotes = p.AbstainVotes
	stored.NumVotes = p.NumVotes
	stored.SumCredibility = p.SumCredibility
	return nil
}

func (r *inMemoryProposalRepo) MarkExecuted(ctx context.Context, tx pgx.Tx, id int64, passed bool, storeID *int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.proposals[id]
	if !ok {
		return fmt.Errorf("proposal %d not found", id)
	}
	stored.Executed = true
	stored.Passed = passed
	stored.ResultStoreID = storeID
	return nil
}

func (r *inMemoryProposalRepo) HasVoted(ctx context.Context, tx pgx.Tx, proposalID int64, voter uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.votes[voteKey{proposalID, voter}]
	return ok, nil
}

func (r *inMemoryProposalRepo) RecordVote(ctx context.Context, tx pgx.Tx, v *domain.VoteRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := voteKey{v.ProposalID, v.Voter}
	if _, ok := r.votes[key]; ok {
		return fmt.Errorf("duplicate vote")
	}
	stored := *v
	r.votes[key] = &stored
	return nil
}

// --- In-Memory Params Repo ---

type inMemoryParamsRepo struct {
	mu        sync.RWMutex
	authority *uuid.UUID
}

func newInMemoryParamsRepo() *inMemoryParamsRepo {
	return &inMemoryParamsRepo{}
}

func (r *inMemoryParamsRepo) GetGovernanceAuthority(ctx context.Context) (*uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.authority == nil {
		return nil, nil
	}
	out := *r.authority
	return &out, nil
}

func (r *inMemoryParamsRepo) GetGovernanceAuthorityTx(ctx context.Context, tx pgx.Tx) (*uuid.UUID, error) {
	return r.GetGovernanceAuthority(ctx)
}

func (r *inMemoryParamsRepo) SetGovernanceAuthority(ctx context.Context, authority uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authority = &authority
	return nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serialises transactions behind one mutex, standing in
// for the row locks SELECT ... FOR UPDATE takes against real PostgreSQL.
// Services hold a transaction across their check-then-mutate sequences, so
// serialising Begin..Commit keeps concurrent tests deterministic.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &noopTx{release: sync.OnceFunc(t.mu.Unlock)}, nil
}

// noopTx is a no-op pgx.Tx whose Commit/Rollback release the transactor's
// lock. Services call Rollback via defer after Commit; the release must
// fire exactly once.
type noopTx struct {
	release func()
}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { t.release(); return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { t.release(); return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
