package postgres

import (
	"context"
	"errors"
	"fmt"

	"aid-distribution-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProposalRepo implements ports.ProposalRepository over the proposals and
// vote_records tables.
type ProposalRepo struct {
	pool Pool
}

// NewProposalRepo creates a new ProposalRepo.
func NewProposalRepo(pool Pool) *ProposalRepo {
	return &ProposalRepo{pool: pool}
}

const proposalColumns = `id, proposer, target_store, start_time, end_time, executed, passed,
		for_votes, against_votes, abstain_votes, num_votes, sum_credibility, result_store_id`

func scanProposal(row pgx.Row) (*domain.Proposal, error) {
	p := &domain.Proposal{}
	err := row.Scan(
		&p.ID, &p.Proposer, &p.TargetStore, &p.StartTime, &p.EndTime,
		&p.Executed, &p.Passed, &p.ForVotes, &p.AgainstVotes, &p.AbstainVotes,
		&p.NumVotes, &p.SumCredibility, &p.ResultStoreID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Create inserts the proposal and returns its sequential id.
func (r *ProposalRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Proposal) (int64, error) {
	query := `INSERT INTO proposals (proposer, target_store, start_time, end_time)
		VALUES ($1, $2, $3, $4) RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query, p.Proposer, p.TargetStore, p.StartTime, p.EndTime).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert proposal: %w", err)
	}
	return id, nil
}

// Get fetches a proposal by id (non-locking read).
func (r *ProposalRepo) Get(ctx context.Context, id int64) (*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE id = $1`

	p, err := scanProposal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get proposal: %w", err)
	}
	return p, nil
}

// GetForUpdate fetches a proposal with pessimistic locking. Voting and
// execution serialize on this lock per proposal.
// This MUST be called within a transaction.
func (r *ProposalRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE id = $1 FOR UPDATE`

	p, err := scanProposal(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get proposal for update: %w", err)
	}
	return p, nil
}

// UpdateTallies persists the vote counters of a locked proposal row.
func (r *ProposalRepo) UpdateTallies(ctx context.Context, tx pgx.Tx, p *domain.Proposal) error {
	query := `UPDATE proposals SET
			for_votes = $2, against_votes = $3, abstain_votes = $4,
			num_votes = $5, sum_credibility = $6
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		p.ID, p.ForVotes, p.AgainstVotes, p.AbstainVotes, p.NumVotes, p.SumCredibility,
	)
	if err != nil {
		return fmt.Errorf("update tallies: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("proposal not found: %d", p.ID)
	}
	return nil
}

// MarkExecuted flips the terminal executed flag with its outcome.
func (r *ProposalRepo) MarkExecuted(ctx context.Context, tx pgx.Tx, id int64, passed bool, storeID *int64) error {
	query := `UPDATE proposals SET executed = TRUE, passed = $2, result_store_id = $3 WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, passed, storeID)
	if err != nil {
		return fmt.Errorf("mark executed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("proposal not found: %d", id)
	}
	return nil
}

// HasVoted reports whether the voter already has a record on the proposal.
func (r *ProposalRepo) HasVoted(ctx context.Context, tx pgx.Tx, proposalID int64, voter uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM vote_records WHERE proposal_id = $1 AND voter = $2)`

	var voted bool
	if err := tx.QueryRow(ctx, query, proposalID, voter).Scan(&voted); err != nil {
		return false, fmt.Errorf("check vote record: %w", err)
	}
	return voted, nil
}

// RecordVote inserts the vote record. The (proposal_id, voter) primary key
// is the replay guard of last resort.
func (r *ProposalRepo) RecordVote(ctx context.Context, tx pgx.Tx, v *domain.VoteRecord) error {
	query := `INSERT INTO vote_records (proposal_id, voter, choice, score, cast_at)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := tx.Exec(ctx, query, v.ProposalID, v.Voter, v.Choice, v.Score, v.CastAt); err != nil {
		return fmt.Errorf("insert vote record: %w", err)
	}
	return nil
}
