package dto

// IssueTokenRequest is the request body for the bootstrap token endpoint.
type IssueTokenRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// SetRoleRequest is the request body for administrative role assignment.
type SetRoleRequest struct {
	Account string `json:"account" binding:"required,uuid"`
	Role    string `json:"role" binding:"required,ledger_role"`
}

// SetGovernanceAuthorityRequest designates the account whose execution
// path may admit stores.
type SetGovernanceAuthorityRequest struct {
	Authority string `json:"authority" binding:"required,uuid"`
}

// AccountResponse is the role registry view of one account.
type AccountResponse struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	StoreID *int64 `json:"store_id,omitempty"`
}

// DepositRequest is the request body for a settlement-credit deposit.
type DepositRequest struct {
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Reference string `json:"reference" binding:"required,max=100"`
}

// WithdrawRequest is the request body for donor and store withdrawals.
type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// AllocationRequest moves settlement credit to an organisation.
type AllocationRequest struct {
	Recipient string `json:"recipient" binding:"required,uuid"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
}

// ConvertRequest burns settlement credit and mints a catalog asset.
type ConvertRequest struct {
	MoneyAmount int64 `json:"money_amount" binding:"required,gt=0"`
	AssetType   int64 `json:"asset_type" binding:"required,gt=0"`
	MintAmount  int64 `json:"mint_amount" binding:"required,gt=0"`
}

// GrantRequest transfers catalog asset units to a beneficiary.
type GrantRequest struct {
	Beneficiary string `json:"beneficiary" binding:"required,uuid"`
	AssetType   int64  `json:"asset_type" binding:"required,gt=0"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	Account   string `json:"account"`
	AssetType int64  `json:"asset_type"`
	Amount    int64  `json:"amount"`
}

// SupplyResponse is the response for a supply query.
type SupplyResponse struct {
	AssetType   int64 `json:"asset_type"`
	Minted      int64 `json:"minted"`
	Burned      int64 `json:"burned"`
	Outstanding int64 `json:"outstanding"`
}

// CreateItemRequest is the request body for item type creation. Expiry is
// RFC 3339; both limit fields must be positive.
type CreateItemRequest struct {
	IsVoucher        bool    `json:"is_voucher"`
	AllowedStore     *string `json:"allowed_store,omitempty" binding:"omitempty,uuid"`
	Expiry           *string `json:"expiry,omitempty"`
	BeneficiaryLimit int64   `json:"beneficiary_limit" binding:"required,gt=0"`
	StoreLimit       int64   `json:"store_limit" binding:"required,gt=0"`
}

// ItemTypeResponse is the catalog view of one item type.
type ItemTypeResponse struct {
	ID               int64   `json:"id"`
	IsVoucher        bool    `json:"is_voucher"`
	AllowedStore     *string `json:"allowed_store,omitempty"`
	Expiry           *string `json:"expiry,omitempty"`
	BeneficiaryLimit int64   `json:"beneficiary_limit"`
	StoreLimit       int64   `json:"store_limit"`
	CreatedBy        string  `json:"created_by"`
	CreatedAt        string  `json:"created_at"`
}

// RedeemRequest is the request body for a store redemption.
type RedeemRequest struct {
	Beneficiary string `json:"beneficiary" binding:"required,uuid"`
	AssetType   int64  `json:"asset_type" binding:"required,gt=0"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
}

// SettlementResponse is the escrow view of one store.
type SettlementResponse struct {
	StoreAccount   string `json:"store_account"`
	Pending        int64  `json:"pending"`
	TotalRedeemed  int64  `json:"total_redeemed"`
	TotalWithdrawn int64  `json:"total_withdrawn"`
}

// ProposeRequest is the request body for opening a store-admission
// proposal.
type ProposeRequest struct {
	Store string `json:"store" binding:"required,uuid"`
}

// ProposalResponse is the governance view of one proposal.
type ProposalResponse struct {
	ID             int64  `json:"id"`
	Proposer       string `json:"proposer"`
	TargetStore    string `json:"target_store"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Status         string `json:"status"`
	ForVotes       int64  `json:"for_votes"`
	AgainstVotes   int64  `json:"against_votes"`
	AbstainVotes   int64  `json:"abstain_votes"`
	NumVotes       int64  `json:"num_votes"`
	SumCredibility int64  `json:"sum_credibility"`
	Passed         *bool  `json:"passed,omitempty"`
	ResultStoreID  *int64 `json:"result_store_id,omitempty"`
}

// VoteResponse is the record of one cast vote.
type VoteResponse struct {
	ProposalID int64  `json:"proposal_id"`
	Voter      string `json:"voter"`
	Choice     string `json:"choice"`
	Score      int64  `json:"score"`
	CastAt     string `json:"cast_at"`
}

// ExecutionResponse is the terminal record of a proposal execution.
type ExecutionResponse struct {
	ProposalID int64 `json:"proposal_id"`
	Passed     bool  `json:"passed"`
	StoreID    int64 `json:"store_id"`
}
