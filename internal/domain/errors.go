package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance   = errors.New("not enough balance")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrAmountBelowFee     = errors.New("amount must exceed the service fee")
	ErrBatchFull          = errors.New("batch is full")
	ErrBatchNotRecruiting = errors.New("batch is not recruiting")
	ErrAlreadyMember      = errors.New("user is already a batch member")
	ErrNotBatchMember     = errors.New("user is not a batch member")
	ErrInvalidReferral    = errors.New("invalid referral code")
	ErrInvalidPhone       = errors.New("phone must be in format 254XXXXXXXXX")
)

// ProviderRejectedError возвращается, когда M-Pesa приняла запрос, но отказала в STK пуше
// (ResponseCode отличный от "0").
type ProviderRejectedError struct {
	Code        string
	Description string
}

func NewProviderRejectedError(code, description string) error {
	return &ProviderRejectedError{Code: code, Description: description}
}

func (e *ProviderRejectedError) Error() string {
	return fmt.Sprintf("stk push rejected by provider: [%s] %s", e.Code, e.Description)
}
