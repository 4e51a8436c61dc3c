package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBatch struct {
	Name               string
	OwnerID            int64
	ContributionAmount decimal.Decimal
	MaxMembers         int
	CycleDays          int
}

type CreatePayout struct {
	BatchID  int64
	UserID   int64
	Position int
	DueDate  time.Time
	Amount   decimal.Decimal
}

type CreateContribution struct {
	BatchID       int64
	UserID        int64
	TransactionID int64
	WeekNumber    int
	Amount        decimal.Decimal
}
