package repoargs

import (
	"github.com/fsdevblog/chama/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateSavings struct {
	UserID    int64
	Direction domain.SavingsDirectionType
	Amount    decimal.Decimal
	Reference string
}

// SavingsAggregation суммы движений по сбережениям пользователя.
type SavingsAggregation struct {
	DepositAmount    decimal.Decimal
	WithdrawalAmount decimal.Decimal
}
