package client

import (
	"fmt"
	"time"
)

// StatusCodeError неожиданный HTTP статус без тела ошибки Daraja.
type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}

type TooManyRequestError struct {
	RetryAfter time.Duration
}

func NewTooManyRequestError(retryAfter time.Duration) *TooManyRequestError {
	return &TooManyRequestError{RetryAfter: retryAfter}
}

func (e *TooManyRequestError) Error() string {
	return fmt.Sprintf("too many requests, retry after %.f seconds", e.RetryAfter.Seconds())
}

// ProviderError ошибка в формате Daraja: {"requestId", "errorCode", "errorMessage"}.
type ProviderError struct {
	StatusCode int
	RequestID  string
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("mpesa error %s (http %d): %s", e.Code, e.StatusCode, e.Message)
}

// TransportError запрос не дошел до M-Pesa или ответ не был получен (таймаут, обрыв соединения).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "mpesa transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
