package domain

import (
	"time"

	"github.com/google/uuid"
)

// PendingSettlement is the escrow entry owed to a store. Pending grows only
// through redemption and shrinks only through withdrawal, so at all times
// Pending == TotalRedeemed - TotalWithdrawn >= 0.
type PendingSettlement struct {
	StoreID        uuid.UUID `json:"store_id"`
	Pending        int64     `json:"pending"`
	TotalRedeemed  int64     `json:"total_redeemed"`
	TotalWithdrawn int64     `json:"total_withdrawn"`
	UpdatedAt      time.Time `json:"updated_at"`
}
