package repoargs

import (
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateMpesaTransaction struct {
	UserID            int64
	BatchID           *int64
	Phone             string
	Amount            decimal.Decimal
	AccountReference  string
	Description       string
	MerchantRequestID string
	CheckoutRequestID string
}

// ResolveMpesaTransaction перевод транзакции из pending в терминальный статус.
type ResolveMpesaTransaction struct {
	CheckoutRequestID string
	Status            domain.TransactionStatusType
	ResultCode        int
	ResultDesc        string
	MpesaReceipt      string
	TransactionDate   *time.Time
}

type CreateSplit struct {
	TransactionID   int64
	SplitType       domain.SplitType
	Amount          decimal.Decimal
	DestinationType domain.DestinationType
	Destination     string
}

type UpdateRouting struct {
	Threshold       decimal.Decimal
	BankAccount     string
	MpesaNumber     string
	PlatformAccount string
}

type PendingForReconcile struct {
	Limit     uint
	OlderThan time.Duration
}
