package service

import (
	"encoding/binary"
	"time"

	"aid-distribution-ledger/internal/core/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// HashCredibilityOracle implements ports.CredibilityOracle by hashing the
// draw time, proposal id, and voter identity, and mapping the digest onto
// {0, 50, 100} with equal weight.
//
// This is a placeholder source of randomness: the inputs are all
// observable or influenceable by callers, so it must not be used where an
// adversary benefits from steering the draw.
type HashCredibilityOracle struct{}

// NewHashCredibilityOracle creates the default oracle.
func NewHashCredibilityOracle() *HashCredibilityOracle {
	return &HashCredibilityOracle{}
}

// Draw returns one of {0, 50, 100}, deterministic in (at, proposalID,
// voter).
func (o *HashCredibilityOracle) Draw(proposalID int64, voter uuid.UUID, at time.Time) int64 {
	var buf [32]byte
	binary.BigEndian.PutUint64(buf[0:8], uint64(at.UnixNano()))
	binary.BigEndian.PutUint64(buf[8:16], uint64(proposalID))
	copy(buf[16:32], voter[:])

	digest := sha3.Sum256(buf[:])
	switch digest[0] % 3 {
	case 0:
		return domain.CredibilityAgainst
	case 1:
		return domain.CredibilityAbstain
	default:
		return domain.CredibilityFor
	}
}
