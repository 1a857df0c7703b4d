package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("FUND_001", "insufficient balance", http.StatusPaymentRequired),
			expected: "[FUND_001] insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestAuthorizationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"RoleRequired", ErrRoleRequired("STORE"), "AUTH_001", 403},
		{"AdminOnly", ErrAdminOnly(), "AUTH_002", 403},
		{"UnauthorizedAdmissionCaller", ErrUnauthorizedAdmissionCaller(), "AUTH_003", 403},
		{"MembershipRequired", ErrMembershipRequired(), "AUTH_004", 403},
		{"TargetRoleRequired", ErrTargetRoleRequired("BENEFICIARY"), "AUTH_005", 403},
		{"InvalidToken", ErrInvalidToken(), "AUTH_006", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidAmount", ErrInvalidAmount(), "VAL_001", 400},
		{"ZeroAddress", ErrZeroAddress(), "VAL_002", 400},
		{"UnknownAssetType", ErrUnknownAssetType(7), "VAL_003", 404},
		{"UnknownProposal", ErrUnknownProposal(3), "VAL_004", 404},
		{"InvalidItemDefinition", ErrInvalidItemDefinition("zero limit"), "VAL_005", 400},
		{"SettlementAssetForbidden", ErrSettlementAssetForbidden(), "VAL_006", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestStateAndLimitErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"BeneficiaryLimit", ErrBeneficiaryLimitExceeded(), "LIM_001", 422},
		{"StoreLimit", ErrStoreLimitExceeded(), "LIM_002", 422},
		{"VoucherExpired", ErrVoucherExpired(), "STATE_001", 409},
		{"WrongStore", ErrWrongStore(), "STATE_002", 409},
		{"ProposalNotOpen", ErrProposalNotOpen(), "STATE_003", 409},
		{"AlreadyVoted", ErrAlreadyVoted(), "STATE_004", 409},
		{"VotingOngoing", ErrVotingOngoing(), "STATE_005", 409},
		{"AlreadyExecuted", ErrAlreadyExecuted(), "STATE_006", 409},
		{"InsufficientFunds", ErrInsufficientFunds(), "FUND_001", 402},
		{"InsufficientEscrow", ErrInsufficientEscrow(), "FUND_002", 402},
		{"RateLimit", ErrRateLimitExceeded(), "RATE_001", 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSettlementErrors(t *testing.T) {
	inner := fmt.Errorf("gateway timeout")

	err := ErrSettlementTransferFailed(inner)
	assert.Equal(t, "STL_001", err.Code)
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))

	dep := ErrDepositNotConfirmed(inner)
	assert.Equal(t, "STL_002", dep.Code)
	assert.True(t, errors.Is(dep, inner))
}
