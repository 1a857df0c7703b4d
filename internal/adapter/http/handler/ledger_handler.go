package handler

import (
	"strconv"

	"aid-distribution-ledger/internal/adapter/http/dto"
	"aid-distribution-ledger/internal/adapter/http/middleware"
	"aid-distribution-ledger/internal/core/domain"
	"aid-distribution-ledger/internal/core/ports"
	"aid-distribution-ledger/pkg/apperror"
	"aid-distribution-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LedgerHandler handles settlement-credit and asset ledger endpoints.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// Deposit handles POST /api/v1/ledger/deposits.
func (h *LedgerHandler) Deposit(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	balance, err := h.ledgerSvc.Deposit(c.Request.Context(), ports.DepositRequest{
		Caller:    caller,
		Amount:    req.Amount,
		Reference: req.Reference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.BalanceResponse{
		Account:   balance.AccountID.String(),
		AssetType: balance.AssetType,
		Amount:    balance.Amount,
	})
}

// Withdraw handles POST /api/v1/ledger/withdrawals.
func (h *LedgerHandler) Withdraw(c *gin.Context) {
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

	if err := h.ledgerSvc.WithdrawDonation(c.Request.Context(), caller, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"withdrawn": req.Amount})
}

// Allocate handles POST /api/v1/ledger/allocations.
func (h *LedgerHandler) Allocate(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	recipient, err := uuid.Parse(req.Recipient)
	if err != nil {
		response.Error(c, apperror.Validation("recipient must be a UUID"))
		return
	}

	if err := h.ledgerSvc.AssignToOrganisation(c.Request.Context(), caller, recipient, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"recipient": recipient.String(), "amount": req.Amount})
}

// Convert handles POST /api/v1/ledger/conversions.
func (h *LedgerHandler) Convert(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledgerSvc.Convert(c.Request.Context(), ports.ConvertRequest{
		Caller:      caller,
		MoneyAmount: req.MoneyAmount,
		AssetType:   req.AssetType,
		MintAmount:  req.MintAmount,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"asset_type":   req.AssetType,
		"burned":       req.MoneyAmount,
		"minted":       req.MintAmount,
	})
}

// Grant handles POST /api/v1/ledger/grants.
func (h *LedgerHandler) Grant(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	beneficiary, err := uuid.Parse(req.Beneficiary)
	if err != nil {
		response.Error(c, apperror.Validation("beneficiary must be a UUID"))
		return
	}

	if err := h.ledgerSvc.AssignToBeneficiary(c.Request.Context(), ports.GrantRequest{
		Caller:      caller,
		Beneficiary: beneficiary,
		AssetType:   req.AssetType,
		Amount:      req.Amount,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"beneficiary": beneficiary.String(),
		"asset_type":  req.AssetType,
		"amount":      req.Amount,
	})
}

// Balance handles GET /api/v1/ledger/balance. Query params: account
// (optional, defaults to the caller) and asset_type (optional, defaults to
// the settlement credit).
func (h *LedgerHandler) Balance(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	account := caller
	if q := c.Query("account"); q != "" {
		parsed, err := uuid.Parse(q)
		if err != nil {
			response.Error(c, apperror.Validation("account must be a UUID"))
			return
		}
		account = parsed
	}

	assetType := domain.SettlementAsset
	if q := c.Query("asset_type"); q != "" {
		parsed, err := strconv.ParseInt(q, 10, 64)
		if err != nil || parsed < 0 {
			response.Error(c, apperror.Validation("asset_type must be a non-negative integer"))
			return
		}
		assetType = parsed
	}

	amount, err := h.ledgerSvc.Balance(c.Request.Context(), account, assetType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Account:   account.String(),
		AssetType: assetType,
		Amount:    amount,
	})
}

// Supply handles GET /api/v1/ledger/supply/:asset.
func (h *LedgerHandler) Supply(c *gin.Context) {
	assetType, err := strconv.ParseInt(c.Param("asset"), 10, 64)
	if err != nil || assetType < 0 {
		response.Error(c, apperror.Validation("asset must be a non-negative integer"))
		return
	}

	supply, err := h.ledgerSvc.Supply(c.Request.Context(), assetType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SupplyResponse{
		AssetType:   supply.AssetType,
		Minted:      supply.Minted,
		Burned:      supply.Burned,
		Outstanding: supply.Outstanding(),
	})
}
