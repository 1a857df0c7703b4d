package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authorization (AUTH) ----

func ErrRoleRequired(role string) *AppError {
	return New("AUTH_001", fmt.Sprintf("caller must hold role %s", role), http.StatusForbidden)
}

func ErrAdminOnly() *AppError {
	return New("AUTH_002", "administrator only", http.StatusForbidden)
}

func ErrUnauthorizedAdmissionCaller() *AppError {
	return New("AUTH_003", "caller is not the configured governance authority", http.StatusForbidden)
}

func ErrMembershipRequired() *AppError {
	return New("AUTH_004", "caller holds no governance membership credential", http.StatusForbidden)
}

func ErrTargetRoleRequired(role string) *AppError {
	return New("AUTH_005", fmt.Sprintf("target account must hold role %s", role), http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_006", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "amount must be positive", http.StatusBadRequest)
}

func ErrZeroAddress() *AppError {
	return New("VAL_002", "zero-address account", http.StatusBadRequest)
}

func ErrUnknownAssetType(id int64) *AppError {
	return New("VAL_003", fmt.Sprintf("unknown asset type %d", id), http.StatusNotFound)
}

func ErrUnknownProposal(id int64) *AppError {
	return New("VAL_004", fmt.Sprintf("unknown proposal %d", id), http.StatusNotFound)
}

func ErrInvalidItemDefinition(reason string) *AppError {
	return New("VAL_005", fmt.Sprintf("invalid item type: %s", reason), http.StatusBadRequest)
}

func ErrSettlementAssetForbidden() *AppError {
	return New("VAL_006", "operation does not apply to the settlement-credit asset", http.StatusBadRequest)
}

// Validation returns a VAL_001-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Redemption caps (LIM) ----

func ErrBeneficiaryLimitExceeded() *AppError {
	return New("LIM_001", "beneficiary redemption limit exceeded", http.StatusUnprocessableEntity)
}

func ErrStoreLimitExceeded() *AppError {
	return New("LIM_002", "store redemption limit exceeded", http.StatusUnprocessableEntity)
}

// ---- State machine (STATE) ----

func ErrVoucherExpired() *AppError {
	return New("STATE_001", "voucher expired", http.StatusConflict)
}

func ErrWrongStore() *AppError {
	return New("STATE_002", "wrong store for this voucher", http.StatusConflict)
}

func ErrProposalNotOpen() *AppError {
	return New("STATE_003", "proposal is not open for voting", http.StatusConflict)
}

func ErrAlreadyVoted() *AppError {
	return New("STATE_004", "caller has already voted on this proposal", http.StatusConflict)
}

func ErrVotingOngoing() *AppError {
	return New("STATE_005", "voting window has not closed yet", http.StatusConflict)
}

func ErrAlreadyExecuted() *AppError {
	return New("STATE_006", "proposal has already been executed", http.StatusConflict)
}

// ---- Funds (FUND) ----

func ErrInsufficientFunds() *AppError {
	return New("FUND_001", "insufficient balance", http.StatusPaymentRequired)
}

func ErrInsufficientEscrow() *AppError {
	return New("FUND_002", "insufficient pending settlement", http.StatusPaymentRequired)
}

// ---- External settlement (STL) ----

func ErrSettlementTransferFailed(err error) *AppError {
	return Wrap("STL_001", "external settlement transfer failed", http.StatusBadGateway, err)
}

func ErrDepositNotConfirmed(err error) *AppError {
	return Wrap("STL_002", "external deposit value not confirmed", http.StatusBadGateway, err)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
