package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Phone        string
	FullName     string
	Password     string
	ReferralCode string
}

type Batch struct {
	ID                 int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Name               string
	OwnerID            int64
	ContributionAmount decimal.Decimal
	MaxMembers         int
	CurrentMembers     int
	CycleDays          int
	Status             BatchStatusType
	StartedAt          *time.Time
}

// IsFull сообщает, что в батче не осталось свободных мест.
func (b *Batch) IsFull() bool {
	return b.CurrentMembers >= b.MaxMembers
}

// PayoutAmount - сумма, которую получает участник в свою очередь выплат.
func (b *Batch) PayoutAmount() decimal.Decimal {
	return b.ContributionAmount.Mul(decimal.NewFromInt(int64(b.MaxMembers)))
}

type BatchMember struct {
	ID       int64
	BatchID  int64
	UserID   int64
	Position int
	JoinedAt time.Time
}

type SavingsTransaction struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	Direction SavingsDirectionType
	Amount    decimal.Decimal
	Reference string
}

type MpesaTransaction struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	UserID            int64
	BatchID           *int64
	Phone             string
	Amount            decimal.Decimal
	AccountReference  string
	Description       string
	MerchantRequestID string
	CheckoutRequestID string
	Status            TransactionStatusType
	ResultCode        *int
	ResultDesc        string
	MpesaReceipt      string
	TransactionDate   *time.Time
	Attempts          int
}

type PaymentSplit struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	TransactionID   int64
	SplitType       SplitType
	Amount          decimal.Decimal
	DestinationType DestinationType
	Destination     string
	Status          TransactionStatusType
}

// SplitRouting - настройки маршрутизации пула. Хранится одной строкой в split_routing_config.
type SplitRouting struct {
	Threshold       decimal.Decimal
	BankAccount     string
	MpesaNumber     string
	PlatformAccount string
	UpdatedAt       time.Time
}

type PayoutSchedule struct {
	ID       int64
	BatchID  int64
	UserID   int64
	Position int
	DueDate  time.Time
	Amount   decimal.Decimal
	Status   PayoutStatusType
}

type WeeklyContribution struct {
	ID            int64
	CreatedAt     time.Time
	BatchID       int64
	UserID        int64
	TransactionID int64
	WeekNumber    int
	Amount        decimal.Decimal
}

type Referral struct {
	ID         int64
	CreatedAt  time.Time
	ReferrerID int64
	ReferredID int64
}
