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

// AdminHandler handles the administrative role registry endpoints.
type AdminHandler struct {
	roleSvc ports.RoleService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(roleSvc ports.RoleService) *AdminHandler {
	return &AdminHandler{roleSvc: roleSvc}
}

// SetRole handles POST /api/v1/admin/roles.
func (h *AdminHandler) SetRole(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := uuid.Parse(req.Account)
	if err != nil {
		response.Error(c, apperror.Validation("account must be a UUID"))
		return
	}
	role, _ := domain.ParseRole(req.Role) // closed set enforced by binding

	if err := h.roleSvc.SetRole(c.Request.Context(), caller, account, role); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AccountResponse{
		ID:   account.String(),
		Role: string(role),
	})
}

// SetGovernanceAuthority handles POST /api/v1/admin/governance-authority.
func (h *AdminHandler) SetGovernanceAuthority(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SetGovernanceAuthorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	authority, err := uuid.Parse(req.Authority)
	if err != nil {
		response.Error(c, apperror.Validation("authority must be a UUID"))
		return
	}

	if err := h.roleSvc.SetGovernanceAuthority(c.Request.Context(), caller, authority); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"authority": authority.String()})
}

// GetAccount handles GET /api/v1/accounts/:id.
func (h *AdminHandler) GetAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("account id must be a UUID"))
		return
	}

	account, err := h.roleSvc.GetAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AccountResponse{
		ID:      account.ID.String(),
		Role:    string(account.Role),
		StoreID: account.StoreID,
	})
}
