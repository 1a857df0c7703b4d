package handler

import (
	"aid-distribution-ledger/internal/adapter/http/dto"
	"aid-distribution-ledger/internal/adapter/http/middleware"
	"aid-distribution-ledger/internal/core/domain"
	"aid-distribution-ledger/internal/core/ports"
	"aid-distribution-ledger/pkg/apperror"
	"aid-distribution-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RedemptionHandler handles redemption and settlement escrow endpoints.
type RedemptionHandler struct {
	redemptionSvc ports.RedemptionService
}

// NewRedemptionHandler creates a new RedemptionHandler.
func NewRedemptionHandler(redemptionSvc ports.RedemptionService) *RedemptionHandler {
	return &RedemptionHandler{redemptionSvc: redemptionSvc}
}

// Redeem handles POST /api/v1/redemptions.
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	beneficiary, err := uuid.Parse(req.Beneficiary)
	if err != nil {
		response.Error(c, apperror.Validation("beneficiary must be a UUID"))
		return
	}

	settlement, err := h.redemptionSvc.Redeem(c.Request.Context(), ports.RedeemRequest{
		Caller:      caller,
		Beneficiary: beneficiary,
		AssetType:   req.AssetType,
		Amount:      req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toSettlementResponse(settlement))
}

// StoreWithdraw handles POST /api/v1/settlements/withdrawals.
func (h *RedemptionHandler) StoreWithdraw(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	settlement, err := h.redemptionSvc.StoreWithdraw(c.Request.Context(), caller, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettlementResponse(settlement))
}

// Pending handles GET /api/v1/settlements/pending.
func (h *RedemptionHandler) Pending(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	settlement, err := h.redemptionSvc.Pending(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettlementResponse(settlement))
}

// toSettlementResponse converts domain.PendingSettlement to DTO.
func toSettlementResponse(s *domain.PendingSettlement) dto.SettlementResponse {
	return dto.SettlementResponse{
		StoreAccount:   s.StoreID.String(),
		Pending:        s.Pending,
		TotalRedeemed:  s.TotalRedeemed,
		TotalWithdrawn: s.TotalWithdrawn,
	}
}
