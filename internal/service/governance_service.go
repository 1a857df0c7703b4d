package service

import (
	"context"
	"fmt"
	"time"

	"aid-distribution-ledger/internal/core/domain"
	"aid-distribution-ledger/internal/core/ports"
	"aid-distribution-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// GovernanceServiceImpl implements ports.GovernanceService: the
// proposal/vote/execute state machine that admits new stores. The service
// runs under its own principal identity; store admission only proceeds
// when that principal matches the configured governance authority.
type GovernanceServiceImpl struct {
	proposalRepo ports.ProposalRepository
	roleRepo     ports.RoleRepository
	paramsRepo   ports.ParamsRepository
	membership   ports.MembershipChecker
	oracle       ports.CredibilityOracle
	transactor   ports.DBTransactor
	principal    uuid.UUID
	votingPeriod time.Duration
	log          zerolog.Logger
	now          func() time.Time
}

// NewGovernanceService creates a new GovernanceServiceImpl.
func NewGovernanceService(
	proposalRepo ports.ProposalRepository,
	roleRepo ports.RoleRepository,
	paramsRepo ports.ParamsRepository,
	membership ports.MembershipChecker,
	oracle ports.CredibilityOracle,
	transactor ports.DBTransactor,
	principal uuid.UUID,
	votingPeriod time.Duration,
	log zerolog.Logger,
) *GovernanceServiceImpl {
	return &GovernanceServiceImpl{
		proposalRepo: proposalRepo,
		roleRepo:     roleRepo,
		paramsRepo:   paramsRepo,
		membership:   membership,
		oracle:       oracle,
		transactor:   transactor,
		principal:    principal,
		votingPeriod: votingPeriod,
		log:          log,
		now:          time.Now,
	}
}

// requireMember checks that the caller is an organisation holding a
// non-zero membership-token balance.
func (s *GovernanceServiceImpl) requireMember(ctx context.Context, caller uuid.UUID) error {
	if _, err := requireRole(ctx, s.roleRepo, caller, domain.RoleOrganisation); err != nil {
		return err
	}
	ok, err := s.membership.HasMembership(ctx, caller)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("membership check: %w", err))
	}
	if !ok {
		return apperror.ErrMembershipRequired()
	}
	return nil
}

// Propose opens a new store-admission ballot with a fixed voting window.
func (s *GovernanceServiceImpl) Propose(ctx context.Context, caller uuid.UUID, store uuid.UUID) (*domain.Proposal, error) {
	if err := s.requireMember(ctx, caller); err != nil {
		return nil, err
	}
	if store == uuid.Nil {
		return nil, apperror.ErrZeroAddress()
	}

	start := s.now().UTC()
	p := &domain.Proposal{
		Proposer:    caller,
		TargetStore: store,
		StartTime:   start,
		EndTime:     start.Add(s.votingPeriod),
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	id, err := s.proposalRepo.Create(ctx, tx, p)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create proposal: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	p.ID = id

	s.log.Info().
		Int64("proposal_id", id).
		Str("proposer", caller.String()).
		Str("target_store", store.String()).
		Time("end_time", p.EndTime).
		Msg("store-admission proposal opened")
	return p, nil
}

// CastVote draws a credibility score from the oracle and applies it to an
// open proposal. One vote per organisation per proposal; replays are
// rejected before any mutation.
func (s *GovernanceServiceImpl) CastVote(ctx context.Context, caller uuid.UUID, proposalID int64) (*domain.VoteRecord, error) {
	if err := s.requireMember(ctx, caller); err != nil {
		return nil, err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	p, err := s.proposalRepo.GetForUpdate(ctx, tx, proposalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock proposal: %w", err))
	}
	if p == nil {
		return nil, apperror.ErrUnknownProposal(proposalID)
	}
	at := s.now().UTC()
	if !p.AcceptsVotes(at) {
		return nil, apperror.ErrProposalNotOpen()
	}
	voted, err := s.proposalRepo.HasVoted(ctx, tx, proposalID, caller)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check vote record: %w", err))
	}
	if voted {
		return nil, apperror.ErrAlreadyVoted()
	}

	score := s.oracle.Draw(proposalID, caller, at)
	choice := domain.ChoiceFromScore(score)
	p.Tally(choice, score)

	record := &domain.VoteRecord{
		ProposalID: proposalID,
		Voter:      caller,
		Choice:     choice,
		Score:      score,
		CastAt:     at,
	}

	if err := s.proposalRepo.RecordVote(ctx, tx, record); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record vote: %w", err))
	}
	if err := s.proposalRepo.UpdateTallies(ctx, tx, p); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update tallies: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Int64("proposal_id", proposalID).
		Str("voter", caller.String()).
		Str("choice", string(choice)).
		Int64("score", score).
		Msg("vote cast")
	return record, nil
}

// ExecuteProposal finalises a closed proposal exactly once. A passing
// proposal admits its target store through the registry's idempotent
// admission hook; a failing one records the terminal result with store id
// 0.
func (s *GovernanceServiceImpl) ExecuteProposal(ctx context.Context, caller uuid.UUID, proposalID int64) (*ports.ExecutionResult, error) {
	if err := s.requireMember(ctx, caller); err != nil {
		return nil, err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	p, err := s.proposalRepo.GetForUpdate(ctx, tx, proposalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock proposal: %w", err))
	}
	if p == nil {
		return nil, apperror.ErrUnknownProposal(proposalID)
	}
	if p.Executed {
		return nil, apperror.ErrAlreadyExecuted()
	}
	if s.now().UTC().Before(p.EndTime) {
		return nil, apperror.ErrVotingOngoing()
	}

	result := &ports.ExecutionResult{ProposalID: proposalID, Passed: p.Passes()}
	var resultStoreID *int64
	if result.Passed {
		storeID, err := s.admitStore(ctx, tx, p.TargetStore)
		if err != nil {
			return nil, err
		}
		result.StoreID = storeID
		resultStoreID = &storeID
	}

	if err := s.proposalRepo.MarkExecuted(ctx, tx, proposalID, result.Passed, resultStoreID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark executed: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Int64("proposal_id", proposalID).
		Bool("passed", result.Passed).
		Int64("store_id", result.StoreID).
		Msg("proposal executed")
	return result, nil
}

// admitStore is the registry's store-admission hook: idempotent on the
// store identity, and gated on this engine being the configured authority.
func (s *GovernanceServiceImpl) admitStore(ctx context.Context, tx pgx.Tx, store uuid.UUID) (int64, error) {
	authority, err := s.paramsRepo.GetGovernanceAuthorityTx(ctx, tx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get governance authority: %w", err))
	}
	if authority == nil || *authority != s.principal {
		return 0, apperror.ErrUnauthorizedAdmissionCaller()
	}

	existing, err := s.roleRepo.GetStoreID(ctx, tx, store)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get store id: %w", err))
	}
	if existing != nil {
		// Re-admission: the identity is stable; only the role is confirmed.
		if err := s.roleRepo.Upsert(ctx, tx, store, domain.RoleStore); err != nil {
			return 0, apperror.InternalError(fmt.Errorf("confirm store role: %w", err))
		}
		return *existing, nil
	}

	storeID, err := s.roleRepo.AllocateStoreID(ctx, tx, store)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("allocate store id: %w", err))
	}
	if err := s.roleRepo.Upsert(ctx, tx, store, domain.RoleStore); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("set store role: %w", err))
	}
	return storeID, nil
}

// GetProposal reads a proposal by id.
func (s *GovernanceServiceImpl) GetProposal(ctx context.Context, id int64) (*domain.Proposal, error) {
	p, err := s.proposalRepo.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get proposal: %w", err))
	}
	if p == nil {
		return nil, apperror.ErrUnknownProposal(id)
	}
	return p, nil
}
