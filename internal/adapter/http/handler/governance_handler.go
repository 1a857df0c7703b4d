package handler

import (
	"strconv"
	"time"

	"aid-distribution-ledger/internal/adapter/http/dto"
	"aid-distribution-ledger/internal/adapter/http/middleware"
	"aid-distribution-ledger/internal/core/domain"
	"aid-distribution-ledger/internal/core/ports"
	"aid-distribution-ledger/pkg/apperror"
	"aid-distribution-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GovernanceHandler handles store-admission governance endpoints.
type GovernanceHandler struct {
	governanceSvc ports.GovernanceService
}

// NewGovernanceHandler creates a new GovernanceHandler.
func NewGovernanceHandler(governanceSvc ports.GovernanceService) *GovernanceHandler {
	return &GovernanceHandler{governanceSvc: governanceSvc}
}

// Propose handles POST /api/v1/governance/proposals.
func (h *GovernanceHandler) Propose(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ProposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	store, err := uuid.Parse(req.Store)
	if err != nil {
		response.Error(c, apperror.Validation("store must be a UUID"))
		return
	}

	proposal, err := h.governanceSvc.Propose(c.Request.Context(), caller, store)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toProposalResponse(proposal, time.Now()))
}

// CastVote handles POST /api/v1/governance/proposals/:id/votes.
func (h *GovernanceHandler) CastVote(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	proposalID, ok := proposalIDParam(c)
	if !ok {
		return
	}

	vote, err := h.governanceSvc.CastVote(c.Request.Context(), caller, proposalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.VoteResponse{
		ProposalID: vote.ProposalID,
		Voter:      vote.Voter.String(),
		Choice:     string(vote.Choice),
		Score:      vote.Score,
		CastAt:     vote.CastAt.Format(time.RFC3339),
	})
}

// Execute handles POST /api/v1/governance/proposals/:id/execute.
func (h *GovernanceHandler) Execute(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	proposalID, ok := proposalIDParam(c)
	if !ok {
		return
	}

	result, err := h.governanceSvc.ExecuteProposal(c.Request.Context(), caller, proposalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ExecutionResponse{
		ProposalID: result.ProposalID,
		Passed:     result.Passed,
		StoreID:    result.StoreID,
	})
}

// GetProposal handles GET /api/v1/governance/proposals/:id.
func (h *GovernanceHandler) GetProposal(c *gin.Context) {
	proposalID, ok := proposalIDParam(c)
	if !ok {
		return
	}

	proposal, err := h.governanceSvc.GetProposal(c.Request.Context(), proposalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toProposalResponse(proposal, time.Now()))
}

func proposalIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, apperror.Validation("proposal id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// toProposalResponse converts domain.Proposal to DTO with derived status.
func toProposalResponse(p *domain.Proposal, at time.Time) dto.ProposalResponse {
	resp := dto.ProposalResponse{
		ID:             p.ID,
		Proposer:       p.Proposer.String(),
		TargetStore:    p.TargetStore.String(),
		StartTime:      p.StartTime.Format(time.RFC3339),
		EndTime:        p.EndTime.Format(time.RFC3339),
		Status:         string(p.Status(at)),
		ForVotes:       p.ForVotes,
		AgainstVotes:   p.AgainstVotes,
		AbstainVotes:   p.AbstainVotes,
		NumVotes:       p.NumVotes,
		SumCredibility: p.SumCredibility,
		ResultStoreID:  p.ResultStoreID,
	}
	if p.Executed {
		passed := p.Passed
		resp.Passed = &passed
	}
	return resp
}
