package ports

import (
	"context"
	"time"

	"aid-distribution-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// SettlementGateway is the external settlement-asset transfer primitive.
// Both calls are synchronous; a returned error means no external value
// moved and the surrounding ledger mutation must be rolled back.
type SettlementGateway interface {
	// CollectDeposit confirms that the externally supplied matching value
	// for a deposit has arrived.
	CollectDeposit(ctx context.Context, from uuid.UUID, amount int64, reference string) error
	// Payout transfers settlement value out to the account's owner.
	Payout(ctx context.Context, to uuid.UUID, amount int64) error
}

// MembershipChecker is the external governance-credential check: whether an
// account holds a non-zero membership-token balance.
type MembershipChecker interface {
	HasMembership(ctx context.Context, account uuid.UUID) (bool, error)
}

// CredibilityOracle draws the ternary credibility score attached to a
// governance vote. Draw returns exactly one of {0, 50, 100}.
//
// The default implementation hashes draw time, proposal id, and voter; it
// is a placeholder and unsuitable for adversarial settings.
type CredibilityOracle interface {
	Draw(proposalID int64, voter uuid.UUID, at time.Time) int64
}

// TokenService handles JWT token operations for API callers.
type TokenService interface {
	Generate(accountID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims. The caller's role is never
// carried in the token; it is re-resolved from the role registry per call
// because roles are overwritable at any time.
type TokenClaims struct {
	AccountID uuid.UUID
}

// --- Service Ports (Business Logic) ---

// RoleService manages the account -> role table and governance wiring.
type RoleService interface {
	SetRole(ctx context.Context, caller uuid.UUID, account uuid.UUID, role domain.Role) error
	SetGovernanceAuthority(ctx context.Context, caller uuid.UUID, authority uuid.UUID) error
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

// LedgerService is the fungible token ledger: settlement-credit movements
// and conversion into catalog assets.
type LedgerService interface {
	Deposit(ctx context.Context, req DepositRequest) (*domain.Balance, error)
	WithdrawDonation(ctx context.Context, caller uuid.UUID, amount int64) error
	AssignToOrganisation(ctx context.Context, caller uuid.UUID, recipient uuid.UUID, amount int64) error
	Convert(ctx context.Context, req ConvertRequest) error
	AssignToBeneficiary(ctx context.Context, req GrantRequest) error
	Balance(ctx context.Context, account uuid.UUID, assetType int64) (int64, error)
	Supply(ctx context.Context, assetType int64) (*domain.AssetSupply, error)
}

// DepositRequest holds validated input for a settlement-credit deposit.
type DepositRequest struct {
	Caller    uuid.UUID
	Amount    int64
	Reference string // external transfer reference for the matching value
}

// ConvertRequest burns settlement credit and mints a catalog asset.
type ConvertRequest struct {
	Caller      uuid.UUID
	MoneyAmount int64
	AssetType   int64
	MintAmount  int64
}

// GrantRequest transfers catalog asset units to a beneficiary.
type GrantRequest struct {
	Caller      uuid.UUID
	Beneficiary uuid.UUID
	AssetType   int64
	Amount      int64
}

// CatalogService creates and reads immutable item types.
type CatalogService interface {
	CreateItemType(ctx context.Context, req CreateItemRequest) (*domain.ItemType, error)
	GetItemType(ctx context.Context, id int64) (*domain.ItemType, error)
}

// CreateItemRequest holds validated input for item type creation.
type CreateItemRequest struct {
	Caller           uuid.UUID
	IsVoucher        bool
	AllowedStore     *uuid.UUID
	Expiry           *time.Time
	BeneficiaryLimit int64
	StoreLimit       int64
}

// RedemptionService is the redemption limiter plus the pending-settlement
// escrow.
type RedemptionService interface {
	Redeem(ctx context.Context, req RedeemRequest) (*domain.PendingSettlement, error)
	StoreWithdraw(ctx context.Context, caller uuid.UUID, amount int64) (*domain.PendingSettlement, error)
	Pending(ctx context.Context, store uuid.UUID) (*domain.PendingSettlement, error)
}

// RedeemRequest holds validated input for a store redemption.
type RedeemRequest struct {
	Caller      uuid.UUID // the redeeming store
	Beneficiary uuid.UUID
	AssetType   int64
	Amount      int64
}

// GovernanceService is the proposal/vote/execute state machine.
type GovernanceService interface {
	Propose(ctx context.Context, caller uuid.UUID, store uuid.UUID) (*domain.Proposal, error)
	CastVote(ctx context.Context, caller uuid.UUID, proposalID int64) (*domain.VoteRecord, error)
	ExecuteProposal(ctx context.Context, caller uuid.UUID, proposalID int64) (*ExecutionResult, error)
	GetProposal(ctx context.Context, id int64) (*domain.Proposal, error)
}

// ExecutionResult is the terminal record of a proposal execution. StoreID
// is 0 when the proposal failed (no store admitted).
type ExecutionResult struct {
	ProposalID int64 `json:"proposal_id"`
	Passed     bool  `json:"passed"`
	StoreID    int64 `json:"store_id"`
}
