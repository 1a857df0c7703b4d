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

// CatalogHandler handles item type endpoints.
type CatalogHandler struct {
	catalogSvc ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogSvc ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// CreateItem handles POST /api/v1/items.
func (h *CatalogHandler) CreateItem(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var allowedStore *uuid.UUID
	if req.AllowedStore != nil {
		parsed, err := uuid.Parse(*req.AllowedStore)
		if err != nil {
			response.Error(c, apperror.Validation("allowed_store must be a UUID"))
			return
		}
		allowedStore = &parsed
	}

	var expiry *time.Time
	if req.Expiry != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Expiry)
		if err != nil {
			response.Error(c, apperror.Validation("expiry must be RFC 3339"))
			return
		}
		expiry = &parsed
	}

	item, err := h.catalogSvc.CreateItemType(c.Request.Context(), ports.CreateItemRequest{
		Caller:           caller,
		IsVoucher:        req.IsVoucher,
		AllowedStore:     allowedStore,
		Expiry:           expiry,
		BeneficiaryLimit: req.BeneficiaryLimit,
		StoreLimit:       req.StoreLimit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toItemTypeResponse(item))
}

// GetItem handles GET /api/v1/items/:id.
func (h *CatalogHandler) GetItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, apperror.Validation("item id must be a positive integer"))
		return
	}

	item, err := h.catalogSvc.GetItemType(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toItemTypeResponse(item))
}

// toItemTypeResponse converts domain.ItemType to DTO.
func toItemTypeResponse(item *domain.ItemType) dto.ItemTypeResponse {
	resp := dto.ItemTypeResponse{
		ID:               item.ID,
		IsVoucher:        item.IsVoucher,
		BeneficiaryLimit: item.BeneficiaryLimit,
		StoreLimit:       item.StoreLimit,
		CreatedBy:        item.CreatedBy.String(),
		CreatedAt:        item.CreatedAt.Format(time.RFC3339),
	}
	if item.AllowedStore != nil {
		s := item.AllowedStore.String()
		resp.AllowedStore = &s
	}
	if item.Expiry != nil {
		e := item.Expiry.Format(time.RFC3339)
		resp.Expiry = &e
	}
	return resp
}
