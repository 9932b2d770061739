package service

import (
	"errors"
	"fmt"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Error codes surfaced to API clients
const (
	ErrCodeIdentityRequired    = "identity_required"
	ErrCodeInvalidRequest      = "invalid_request"
	ErrCodeEmptyInput          = "empty_input"
	ErrCodeNoPhones            = "no_phones"
	ErrCodeInputTooLarge       = "input_too_large"
	ErrCodeLeadNotFound        = "lead_not_found"
	ErrCodeLeadUnavailable     = "lead_unavailable"
	ErrCodeLeadSoldOut         = "lead_sold_out"
	ErrCodeSelfPurchase        = "self_purchase"
	ErrCodeAlreadyPurchased    = "already_purchased"
	ErrCodeInsufficientBalance = "insufficient_balance"
	ErrCodeAccountNotFound     = "account_not_found"
	ErrCodeInvalidStatus       = "invalid_status"
	ErrCodeRateLimited         = "rate_limited"
	ErrCodeInternalError       = "internal_error"
)

func newError(code, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

func internalError(message string, err error) *ServiceError {
	return &ServiceError{Code: ErrCodeInternalError, Message: message, Err: err}
}

// ErrorCode returns the code of a *ServiceError in err's chain, or
// ErrCodeInternalError for anything else.
func ErrorCode(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return ErrCodeInternalError
}
