package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the participant role of an account. Exactly one role is active
// per account; the administrator (or a governance execution) may overwrite
// it at any time.
type Role string

const (
	RoleNone         Role = "NONE"
	RoleDonor        Role = "DONOR"
	RoleOrganisation Role = "ORGANISATION"
	RoleBeneficiary  Role = "BENEFICIARY"
	RoleStore        Role = "STORE"
)

// ParseRole maps a wire string onto a Role. Unknown values yield RoleNone
// and false.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleNone, RoleDonor, RoleOrganisation, RoleBeneficiary, RoleStore:
		return Role(s), true
	}
	return RoleNone, false
}

// Valid reports whether r is one of the closed set of roles.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Account is an identity in the role registry. StoreID is non-nil only for
// accounts that have been admitted as a store at least once; the mapping is
// assigned once and stable across role overwrites.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	StoreID   *int64    `json:"store_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
