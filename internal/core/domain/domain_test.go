package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Role
		ok    bool
	}{
		{"none", "NONE", RoleNone, true},
		{"donor", "DONOR", RoleDonor, true},
		{"organisation", "ORGANISATION", RoleOrganisation, true},
		{"beneficiary", "BENEFICIARY", RoleBeneficiary, true},
		{"store", "STORE", RoleStore, true},
		{"lowercase rejected", "donor", RoleNone, false},
		{"unknown", "AUDITOR", RoleNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRole(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestAssetSupply_Outstanding(t *testing.T) {
	s := AssetSupply{AssetType: 1, Minted: 150, Burned: 40}
	assert.Equal(t, int64(110), s.Outstanding())
}

func TestItemType_RedeemableBy(t *testing.T) {
	s1 := uuid.New()
	s2 := uuid.New()

	tests := []struct {
		name string
		item ItemType
		by   uuid.UUID
		want bool
	}{
		{"good redeemable anywhere", ItemType{IsVoucher: false}, s2, true},
		{"unrestricted voucher", ItemType{IsVoucher: true}, s2, true},
		{"restricted voucher, right store", ItemType{IsVoucher: true, AllowedStore: &s1}, s1, true},
		{"restricted voucher, wrong store", ItemType{IsVoucher: true, AllowedStore: &s1}, s2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.RedeemableBy(tt.by))
		})
	}
}

func TestItemType_Expired_InclusiveBoundary(t *testing.T) {
	expiry := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	item := ItemType{IsVoucher: true, Expiry: &expiry}

	assert.False(t, item.Expired(expiry.Add(-time.Second)), "before expiry")
	assert.False(t, item.Expired(expiry), "expiry instant is still redeemable")
	assert.True(t, item.Expired(expiry.Add(time.Second)), "after expiry")

	// Goods never expire, even with a stale expiry set.
	good := ItemType{IsVoucher: false, Expiry: &expiry}
	assert.False(t, good.Expired(expiry.Add(time.Hour)))
}

func TestChoiceFromScore(t *testing.T) {
	assert.Equal(t, VoteAgainst, ChoiceFromScore(0))
	assert.Equal(t, VoteAbstain, ChoiceFromScore(50))
	assert.Equal(t, VoteFor, ChoiceFromScore(100))
}

func TestProposal_Status(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)
	p := &Proposal{StartTime: start, EndTime: end}

	assert.Equal(t, ProposalStatusOpen, p.Status(start))
	assert.Equal(t, ProposalStatusOpen, p.Status(end.Add(-time.Second)))
	assert.Equal(t, ProposalStatusClosed, p.Status(end))
	assert.Equal(t, ProposalStatusClosed, p.Status(end.Add(time.Hour)))

	p.Executed = true
	assert.Equal(t, ProposalStatusExecuted, p.Status(end.Add(time.Hour)))
}

func TestProposal_AcceptsVotes_WindowBoundaries(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)
	p := &Proposal{StartTime: start, EndTime: end}

	assert.True(t, p.AcceptsVotes(start), "start instant is open")
	assert.True(t, p.AcceptsVotes(end.Add(-time.Nanosecond)))
	assert.False(t, p.AcceptsVotes(end), "end instant is closed")
	assert.False(t, p.AcceptsVotes(start.Add(-time.Second)))
}

func TestProposal_Passes(t *testing.T) {
	tests := []struct {
		name string
		p    Proposal
		want bool
	}{
		{"no votes fails", Proposal{}, false},
		{
			// Mean credibility exactly 0.5 with scores {0,50,100}, but a
			// 1-1 For/Against split fails the strict majority check.
			"threshold met but majority tied",
			Proposal{ForVotes: 1, AgainstVotes: 1, AbstainVotes: 1, NumVotes: 3, SumCredibility: 150},
			false,
		},
		{
			"majority and threshold met",
			Proposal{ForVotes: 2, AbstainVotes: 1, NumVotes: 3, SumCredibility: 250},
			true,
		},
		{
			"majority but mean credibility below half",
			Proposal{ForVotes: 2, AgainstVotes: 1, NumVotes: 4, SumCredibility: 150},
			false,
		},
		{
			"boundary: sum exactly 50*numVotes passes",
			Proposal{ForVotes: 2, AgainstVotes: 1, NumVotes: 3, SumCredibility: 150},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Passes())
		})
	}
}

func TestProposal_Tally(t *testing.T) {
	p := &Proposal{}
	p.Tally(VoteFor, CredibilityFor)
	p.Tally(VoteAbstain, CredibilityAbstain)
	p.Tally(VoteAgainst, CredibilityAgainst)

	assert.Equal(t, int64(1), p.ForVotes)
	assert.Equal(t, int64(1), p.AbstainVotes)
	assert.Equal(t, int64(1), p.AgainstVotes)
	assert.Equal(t, int64(3), p.NumVotes)
	assert.Equal(t, int64(150), p.SumCredibility)
}
