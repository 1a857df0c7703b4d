package domain

import (
	"time"

	"github.com/google/uuid"
)

// SettlementAsset is the reserved asset type for the fungible settlement
// credit. Catalog asset types start at 1.
const SettlementAsset int64 = 0

// Balance is one (account, asset type) ledger entry. Amounts are whole
// token units; zero-valued entries are semantically absent.
type Balance struct {
	AccountID uuid.UUID `json:"account_id"`
	AssetType int64     `json:"asset_type"`
	Amount    int64     `json:"amount"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AssetSupply tracks cumulative mints and burns per asset type so the
// conservation invariant (sum of balances == minted - burned) stays
// checkable without scanning history.
type AssetSupply struct {
	AssetType int64 `json:"asset_type"`
	Minted    int64 `json:"minted"`
	Burned    int64 `json:"burned"`
}

// Outstanding returns the circulating amount for the asset type.
func (s AssetSupply) Outstanding() int64 {
	return s.Minted - s.Burned
}
