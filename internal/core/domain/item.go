package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemType is the immutable catalog metadata for a redeemable asset type.
// IDs start at 1 (0 is the settlement credit) and only grow. Once created,
// limits and expiry are fixed forever.
type ItemType struct {
	ID               int64      `json:"id"`
	IsVoucher        bool       `json:"is_voucher"`
	AllowedStore     *uuid.UUID `json:"allowed_store,omitempty"` // nil = any store
	Expiry           *time.Time `json:"expiry,omitempty"`        // nil = never expires
	BeneficiaryLimit int64      `json:"beneficiary_limit"`
	StoreLimit       int64      `json:"store_limit"`
	CreatedBy        uuid.UUID  `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
}

// RedeemableBy reports whether the given store may redeem this item. Only
// vouchers restrict the redeeming store.
func (i *ItemType) RedeemableBy(store uuid.UUID) bool {
	if !i.IsVoucher || i.AllowedStore == nil {
		return true
	}
	return *i.AllowedStore == store
}

// Expired reports whether the item's voucher window has passed at the given
// instant. The expiry instant itself is still redeemable.
func (i *ItemType) Expired(at time.Time) bool {
	if !i.IsVoucher || i.Expiry == nil {
		return false
	}
	return at.After(*i.Expiry)
}

// UsageSide distinguishes the two redemption counters kept per asset type.
type UsageSide string

const (
	UsageBeneficiary UsageSide = "BENEFICIARY"
	UsageStore       UsageSide = "STORE"
)

// RedemptionUsage is a monotonically non-decreasing counter of units
// redeemed for one (asset type, account, side) key, capped by the
// corresponding ItemType limit.
type RedemptionUsage struct {
	AssetType int64     `json:"asset_type"`
	AccountID uuid.UUID `json:"account_id"`
	Side      UsageSide `json:"side"`
	Used      int64     `json:"used"`
}
