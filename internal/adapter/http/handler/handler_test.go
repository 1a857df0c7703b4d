package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aid-distribution-ledger/internal/adapter/http/dto"
	"aid-distribution-ledger/internal/adapter/http/middleware"
	"aid-distribution-ledger/internal/core/domain"
	"aid-distribution-ledger/internal/core/ports"
	"aid-distribution-ledger/internal/core/ports/mocks"
	"aid-distribution-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newAuthedContext builds a test context carrying an authenticated caller.
func newAuthedContext(t *testing.T, caller uuid.UUID, method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxAccountID, caller)
	return c, w
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response should carry a data object: %s", w.Body.String())
	return data
}

// --- Auth Handler Tests ---

func TestIssueToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	expiry := time.Now().Add(24 * time.Hour)

	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Generate(accountID).Return("signed-token", expiry, nil)

	h := NewAuthHandler(tokenSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.IssueTokenRequest{AccountID: accountID.String()})
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.IssueToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "signed-token", data["token"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])
}

func TestIssueToken_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockTokenService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader([]byte(`{"account_id":"not-a-uuid"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.IssueToken(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin Handler Tests ---

func TestSetRole_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	account := uuid.New()

	roleSvc := mocks.NewMockRoleService(ctrl)
	roleSvc.EXPECT().SetRole(gomock.Any(), caller, account, domain.RoleDonor).Return(nil)

	h := NewAdminHandler(roleSvc)
	c, w := newAuthedContext(t, caller, http.MethodPost, "/api/v1/admin/roles", dto.SetRoleRequest{
		Account: account.String(),
		Role:    "DONOR",
	})

	h.SetRole(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, account.String(), data["id"])
	assert.Equal(t, "DONOR", data["role"])
}

func TestSetRole_UnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAdminHandler(mocks.NewMockRoleService(ctrl))
	c, w := newAuthedContext(t, uuid.New(), http.MethodPost, "/api/v1/admin/roles", dto.SetRoleRequest{
		Account: uuid.New().String(),
		Role:    "OVERLORD",
	})

	h.SetRole(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetRole_NotAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	roleSvc := mocks.NewMockRoleService(ctrl)
	roleSvc.EXPECT().SetRole(gomock.Any(), caller, gomock.Any(), gomock.Any()).Return(apperror.ErrAdminOnly())

	h := NewAdminHandler(roleSvc)
	c, w := newAuthedContext(t, caller, http.MethodPost, "/api/v1/admin/roles", dto.SetRoleRequest{
		Account: uuid.New().String(),
		Role:    "STORE",
	})

	h.SetRole(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_002")
}

func TestSetGovernanceAuthority_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	authority := uuid.New()

	roleSvc := mocks.NewMockRoleService(ctrl)
	roleSvc.EXPECT().SetGovernanceAuthority(gomock.Any(), caller, authority).Return(nil)

	h := NewAdminHandler(roleSvc)
	c, w := newAuthedContext(t, caller, http.MethodPost, "/api/v1/admin/governance-authority", dto.SetGovernanceAuthorityRequest{
		Authority: authority.String(),
	})

	h.SetGovernanceAuthority(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	storeID := int64(7)

	roleSvc := mocks.NewMockRoleService(ctrl)
	roleSvc.EXPECT().GetAccount(gomock.Any(), id).Return(&domain.Account{
		ID:      id,
		Role:    domain.RoleStore,
		StoreID: &storeID,
	}, nil)

	h := NewAdminHandler(roleSvc)
	c, w := newAuthedContext(t, uuid.New(), http.MethodGet, "/api/v1/accounts/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetAccount(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "STORE", data["role"])
	assert.Equal(t, float64(7), data["store_id"])
}

func TestGetAccount_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAdminHandler(mocks.NewMockRoleService(ctrl))
	c, w := newAuthedContext(t, uuid.New(), http.MethodGet, "/api/v1/accounts/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.GetAccount(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Ledger Handler Tests ---

func TestDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	ledgerSvc := mocks.NewMockLedgerService(ctrl)
	ledgerSvc.EXPECT().Deposit(gomock.Any(), ports.DepositRequest{
		Caller:    caller,
		Amount:    500,
		Reference: "bank-ref-1",
	}).Return(&domain.Balance{
		AccountID: caller,
		AssetType: domain.SettlementAsset,
		Amount:    600,
	}, nil)

	h := NewLedgerHandler(ledgerSvc)
	c, w := newAuthedContext(t, caller, http.MethodPost, "/api/v1/ledger/deposits", dto.DepositRequest{
		Amount:    500,
		Reference: "bank-ref-1",
	})

	h.Deposit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(600), data["amount"])
	assert.Equal(t, float64(0), data["asset_type"])
}

func TestDeposit_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewLedgerHandler(mocks.NewMockLedgerService(ctrl))
	c, w := newAuthedContext(t, uuid.New(), http.MethodPost, "/api/v1/ledger/deposits", dto.DepositRequest{
		Amount: -5,
	})

	h.Deposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeposit_GatewayFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	ledgerSvc := mocks.NewMockLedgerService(ctrl)
	ledgerSvc.EXPECT().Deposit(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrDepositNotConfirmed(assert.AnError))

	h := NewLedgerHandler(ledgerSvc)
	c, w := newAuthedContext(t, caller, http.MethodPost, "/api/v1/ledger/deposits", dto.DepositRequest{
		Amount:    100,
		Reference: "ref",
	})

	h.Deposit(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "STL_002")
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	ledgerSvc := mocks.NewMockLedgerService(ctrl)
	ledgerSvc.EXPECT().WithdrawDonation(gomock.Any(), caller, int64(100)).Return(apperror.ErrInsufficientFunds())

	h := NewLedgerHandler(ledgerSvc)
	c, w := newAuthedContext(t, caller, http.MethodPost, "/api/v1/ledger/withdrawals", dto.WithdrawRequest{Amount: 100})

	h.Withdraw(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "FUND_001")
}

func TestAllocate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	recipient := uuid.New()
	ledgerSvc := mocks.NewMockLedgerService(ctrl)
	ledgerSvc.EXPECT().AssignToOrganisation(gomock.Any(), caller, recipient, int64(250)).Return(nil)

	h := NewLedgerHandler(ledgerSvc)
	c, w := newAuthedContext(t, caller, http.MethodPost, "/api/v1/ledger/allocations", dto.AllocationRequest{
		Recipient: recipient.String(),
		Amount:    250,
	})

	h.Allocate(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestConvert_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	ledgerSvc := mocks.NewMockLedgerService(ctrl)
	ledgerSvc.EXPECT().Convert(gomock.Any(), ports.ConvertRequest{
		Caller:      caller,
		MoneyAmount: 100,
		AssetType:   3,
		MintAmount:  50,
	}).Return(nil)

	h := NewLedgerHandler(ledgerSvc)
	c, w := newAuthedContext(t, caller, http.MethodPost, "/api/v1/ledger/conversions", dto.ConvertRequest{
		MoneyAmount: 100,
		AssetType:   3,
		MintAmount:  50,
	})

	h.Convert(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(50), data["minted"])
}

func TestGrant_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	beneficiary := uuid.New()
	ledgerSvc := mocks.NewMockLedgerService(ctrl)
	ledgerSvc.EXPECT().AssignToBeneficiary(gomock.Any(), ports.GrantRequest{
		Caller:      caller,
		Beneficiary: beneficiary,
		AssetType:   2,
		Amount:      10,
	}).Return(nil)

	h := NewLedgerHandler(ledgerSvc)
	c, w := newAuthedContext(t, caller, http.MethodPost, "/api/v1/ledger/grants", dto.GrantRequest{
		Beneficiary: beneficiary.String(),
		AssetType:   2,
		Amount:      10,
	})

	h.Grant(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBalance_DefaultsToCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	ledgerSvc := mocks.NewMockLedgerService(ctrl)
	ledgerSvc.EXPECT().Balance(gomock.Any(), caller, domain.SettlementAsset).Return(int64(42), nil)

	h := NewLedgerHandler(ledgerSvc)
	c, w := newAuthedContext(t, caller, http.MethodGet, "/api/v1/ledger/balance", nil)

	h.Balance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(42), data["amount"])
	assert.Equal(t, caller.String(), data["account"])
}

func TestBalance_ExplicitAccountAndAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	other := uuid.New()
	ledgerSvc := mocks.NewMockLedgerService(ctrl)
	ledgerSvc.EXPECT().Balance(gomock.Any(), other, int64(3)).Return(int64(7), nil)

	h := NewLedgerHandler(ledgerSvc)
	c, w := newAuthedContext(t, caller, http.MethodGet, "/api/v1/ledger/balance?account="+other.String()+"&asset_type=3", nil)

	h.Balance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(7), data["amount"])
	assert.Equal(t, float64(3), data["asset_type"])
}

func TestSupply_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerSvc := mocks.NewMockLedgerService(ctrl)
	ledgerSvc.EXPECT().Supply(gomock.Any(), int64(2)).Return(&domain.AssetSupply{
		AssetType: 2,
		Minted:    1000,
		Burned:    300,
	}, nil)

	h := NewLedgerHandler(ledgerSvc)
	c, w := newAuthedContext(t, uuid.New(), http.MethodGet, "/api/v1/ledger/supply/2", nil)
	c.Params = gin.Params{{Key: "asset", Value: "2"}}

	h.Supply(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(700), data["outstanding"])
}

// --- Catalog Handler Tests ---

func TestCreateItem_Voucher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	store := uuid.New()
	expiry := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second)
	expiryStr := expiry.Format(time.RFC3339)
	storeStr := store.String()

	catalogSvc := mocks.NewMockCatalogService(ctrl)
	catalogSvc.EXPECT().CreateItemType(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req ports.CreateItemRequest) (*domain.ItemType, error) {
			assert.True(t, req.IsVoucher)
			require.NotNil(t, req.AllowedStore)
			assert.Equal(t, store, *req.AllowedStore)
			require.NotNil(t, req.Expiry)
			assert.True(t, req.Expiry.Equal(expiry))
			return &domain.ItemType{
				ID:               4,
				IsVoucher:        true,
				AllowedStore:     req.AllowedStore,
				Expiry:           req.Expiry,
				BeneficiaryLimit: 5,
				StoreLimit:       100,
				CreatedBy:        caller,
				CreatedAt:        time.Now(),
			}, nil
		})

	h := NewCatalogHandler(catalogSvc)
	c, w := newAuthedContext(t, caller, http.MethodPost, "/api/v1/items", dto.CreateItemRequest{
		IsVoucher:        true,
		AllowedStore:     &storeStr,
		Expiry:           &expiryStr,
		BeneficiaryLimit: 5,
		StoreLimit:       100,
	})

	h.CreateItem(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(4), data["id"])
	assert.Equal(t, true, data["is_voucher"])
}

func TestCreateItem_BadExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bad := "next tuesday"
	h := NewCatalogHandler(mocks.NewMockCatalogService(ctrl))
	c, w := newAuthedContext(t, uuid.New(), http.MethodPost, "/api/v1/items", dto.CreateItemRequest{
		Expiry:           &bad,
		BeneficiaryLimit: 5,
		StoreLimit:       100,
	})

	h.CreateItem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateItem_InvalidDefinition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogSvc := mocks.NewMockCatalogService(ctrl)
	catalogSvc.EXPECT().CreateItemType(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInvalidItemDefinition("voucher requires a store"))

	h := NewCatalogHandler(catalogSvc)
	c, w := newAuthedContext(t, uuid.New(), http.MethodPost, "/api/v1/items", dto.CreateItemRequest{
		IsVoucher:        true,
		BeneficiaryLimit: 5,
		StoreLimit:       100,
	})

	h.CreateItem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_005")
}

func TestGetItem_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewCatalogHandler(mocks.NewMockCatalogService(ctrl))
	c, w := newAuthedContext(t, uuid.New(), http.MethodGet, "/api/v1/items/zero", nil)
	c.Params = gin.Params{{Key: "id", Value: "zero"}}

	h.GetItem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Redemption Handler Tests ---

func TestRedeem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := uuid.New()
	beneficiary := uuid.New()
	redemptionSvc := mocks.NewMockRedemptionService(ctrl)
	redemptionSvc.EXPECT().Redeem(gomock.Any(), ports.RedeemRequest{
		Caller:      store,
		Beneficiary: beneficiary,
		AssetType:   2,
		Amount:      3,
	}).Return(&domain.PendingSettlement{
		StoreID:       store,
		Pending:       30,
		TotalRedeemed: 30,
	}, nil)

	h := NewRedemptionHandler(redemptionSvc)
	c, w := newAuthedContext(t, store, http.MethodPost, "/api/v1/redemptions", dto.RedeemRequest{
		Beneficiary: beneficiary.String(),
		AssetType:   2,
		Amount:      3,
	})

	h.Redeem(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(30), data["pending"])
}

func TestRedeem_BeneficiaryLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redemptionSvc := mocks.NewMockRedemptionService(ctrl)
	redemptionSvc.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrBeneficiaryLimitExceeded())

	h := NewRedemptionHandler(redemptionSvc)
	c, w := newAuthedContext(t, uuid.New(), http.MethodPost, "/api/v1/redemptions", dto.RedeemRequest{
		Beneficiary: uuid.New().String(),
		AssetType:   2,
		Amount:      5,
	})

	h.Redeem(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "LIM_001")
}

func TestStoreWithdraw_InsufficientEscrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := uuid.New()
	redemptionSvc := mocks.NewMockRedemptionService(ctrl)
	redemptionSvc.EXPECT().StoreWithdraw(gomock.Any(), store, int64(500)).Return(nil, apperror.ErrInsufficientEscrow())

	h := NewRedemptionHandler(redemptionSvc)
	c, w := newAuthedContext(t, store, http.MethodPost, "/api/v1/settlements/withdrawals", dto.WithdrawRequest{Amount: 500})

	h.StoreWithdraw(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "FUND_002")
}

func TestPending_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := uuid.New()
	redemptionSvc := mocks.NewMockRedemptionService(ctrl)
	redemptionSvc.EXPECT().Pending(gomock.Any(), store).Return(&domain.PendingSettlement{
		StoreID:        store,
		Pending:        40,
		TotalRedeemed:  100,
		TotalWithdrawn: 60,
	}, nil)

	h := NewRedemptionHandler(redemptionSvc)
	c, w := newAuthedContext(t, store, http.MethodGet, "/api/v1/settlements/pending", nil)

	h.Pending(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(40), data["pending"])
	assert.Equal(t, float64(100), data["total_redeemed"])
	assert.Equal(t, float64(60), data["total_withdrawn"])
}

// --- Governance Handler Tests ---

func TestPropose_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	store := uuid.New()
	now := time.Now()

	governanceSvc := mocks.NewMockGovernanceService(ctrl)
	governanceSvc.EXPECT().Propose(gomock.Any(), caller, store).Return(&domain.Proposal{
		ID:          1,
		Proposer:    caller,
		TargetStore: store,
		StartTime:   now,
		EndTime:     now.Add(72 * time.Hour),
	}, nil)

	h := NewGovernanceHandler(governanceSvc)
	c, w := newAuthedContext(t, caller, http.MethodPost, "/api/v1/governance/proposals", dto.ProposeRequest{
		Store: store.String(),
	})

	h.Propose(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "OPEN", data["status"])
}

func TestPropose_NoMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	governanceSvc := mocks.NewMockGovernanceService(ctrl)
	governanceSvc.EXPECT().Propose(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperror.ErrMembershipRequired())

	h := NewGovernanceHandler(governanceSvc)
	c, w := newAuthedContext(t, uuid.New(), http.MethodPost, "/api/v1/governance/proposals", dto.ProposeRequest{
		Store: uuid.New().String(),
	})

	h.Propose(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_004")
}

func TestCastVote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	governanceSvc := mocks.NewMockGovernanceService(ctrl)
	governanceSvc.EXPECT().CastVote(gomock.Any(), caller, int64(5)).Return(&domain.VoteRecord{
		ProposalID: 5,
		Voter:      caller,
		Choice:     domain.VoteFor,
		Score:      100,
		CastAt:     time.Now(),
	}, nil)

	h := NewGovernanceHandler(governanceSvc)
	c, w := newAuthedContext(t, caller, http.MethodPost, "/api/v1/governance/proposals/5/votes", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	h.CastVote(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "FOR", data["choice"])
	assert.Equal(t, float64(100), data["score"])
}

func TestCastVote_AlreadyVoted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	governanceSvc := mocks.NewMockGovernanceService(ctrl)
	governanceSvc.EXPECT().CastVote(gomock.Any(), gomock.Any(), int64(5)).Return(nil, apperror.ErrAlreadyVoted())

	h := NewGovernanceHandler(governanceSvc)
	c, w := newAuthedContext(t, uuid.New(), http.MethodPost, "/api/v1/governance/proposals/5/votes", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	h.CastVote(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "STATE_004")
}

func TestExecute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := uuid.New()
	governanceSvc := mocks.NewMockGovernanceService(ctrl)
	governanceSvc.EXPECT().ExecuteProposal(gomock.Any(), caller, int64(9)).Return(&ports.ExecutionResult{
		ProposalID: 9,
		Passed:     true,
		StoreID:    4,
	}, nil)

	h := NewGovernanceHandler(governanceSvc)
	c, w := newAuthedContext(t, caller, http.MethodPost, "/api/v1/governance/proposals/9/execute", nil)
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	h.Execute(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, true, data["passed"])
	assert.Equal(t, float64(4), data["store_id"])
}

func TestGetProposal_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewGovernanceHandler(mocks.NewMockGovernanceService(ctrl))
	c, w := newAuthedContext(t, uuid.New(), http.MethodGet, "/api/v1/governance/proposals/-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "-1"}}

	h.GetProposal(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Health Check Tests ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(_ context.Context) error { return s.err }
func (s stubChecker) Name() string                 { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis"}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestHealthCheck_Degraded(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(
		stubChecker{name: "postgresql"},
		stubChecker{name: "redis", err: assert.AnError},
	))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	assert.Contains(t, w.Body.String(), "unhealthy")
}
