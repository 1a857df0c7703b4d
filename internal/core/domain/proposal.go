package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProposalStatus is the derived lifecycle state of a store-admission
// proposal. Transitions are strictly Open -> Closed -> Executed; there is
// no rollback, extension, pause, or cancellation.
type ProposalStatus string

const (
	ProposalStatusOpen     ProposalStatus = "OPEN"
	ProposalStatusClosed   ProposalStatus = "CLOSED"
	ProposalStatusExecuted ProposalStatus = "EXECUTED"
)

// VoteChoice is the ternary outcome of a credibility draw.
type VoteChoice string

const (
	VoteAgainst VoteChoice = "AGAINST"
	VoteAbstain VoteChoice = "ABSTAIN"
	VoteFor     VoteChoice = "FOR"
)

// Credibility scores drawn by the oracle. The mapping onto choices is
// fixed: 0 -> Against, 50 -> Abstain, 100 -> For.
const (
	CredibilityAgainst int64 = 0
	CredibilityAbstain int64 = 50
	CredibilityFor     int64 = 100

	// CredibilityPassMean is the minimum mean credibility for a proposal
	// to pass: sumCredibility >= CredibilityPassMean * numVotes.
	CredibilityPassMean int64 = 50
)

// ChoiceFromScore maps a credibility score onto a vote choice. Scores are
// produced by the oracle and are always one of {0, 50, 100}.
func ChoiceFromScore(score int64) VoteChoice {
	switch {
	case score >= CredibilityFor:
		return VoteFor
	case score >= CredibilityAbstain:
		return VoteAbstain
	default:
		return VoteAgainst
	}
}

// Proposal is one store-admission ballot. Proposals are independent state
// machines keyed by id; windows of concurrent proposals may overlap.
type Proposal struct {
	ID             int64     `json:"id"`
	Proposer       uuid.UUID `json:"proposer"`
	TargetStore    uuid.UUID `json:"target_store"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Executed       bool      `json:"executed"`
	Passed         bool      `json:"passed"`
	ForVotes       int64     `json:"for_votes"`
	AgainstVotes   int64     `json:"against_votes"`
	AbstainVotes   int64     `json:"abstain_votes"`
	NumVotes       int64     `json:"num_votes"`
	SumCredibility int64     `json:"sum_credibility"`
	ResultStoreID  *int64    `json:"result_store_id,omitempty"`
}

// Status derives the lifecycle state at the given instant.
func (p *Proposal) Status(at time.Time) ProposalStatus {
	if p.Executed {
		return ProposalStatusExecuted
	}
	if at.Before(p.EndTime) {
		return ProposalStatusOpen
	}
	return ProposalStatusClosed
}

// AcceptsVotes reports whether the voting window is open: start <= at < end.
func (p *Proposal) AcceptsVotes(at time.Time) bool {
	return !p.Executed && !at.Before(p.StartTime) && at.Before(p.EndTime)
}

// Passes evaluates the pass criteria over the final tallies: at least one
// vote, a strict For majority over Against, and mean credibility of at
// least 0.5.
func (p *Proposal) Passes() bool {
	if p.NumVotes == 0 {
		return false
	}
	return p.ForVotes > p.AgainstVotes && p.SumCredibility >= CredibilityPassMean*p.NumVotes
}

// Tally applies one vote to the running counters.
func (p *Proposal) Tally(choice VoteChoice, score int64) {
	switch choice {
	case VoteFor:
		p.ForVotes++
	case VoteAgainst:
		p.AgainstVotes++
	case VoteAbstain:
		p.AbstainVotes++
	}
	p.NumVotes++
	p.SumCredibility += score
}

// VoteRecord blocks replay: one vote per organisation per proposal.
type VoteRecord struct {
	ProposalID int64      `json:"proposal_id"`
	Voter      uuid.UUID  `json:"voter"`
	Choice     VoteChoice `json:"choice"`
	Score      int64      `json:"score"`
	CastAt     time.Time  `json:"cast_at"`
}
