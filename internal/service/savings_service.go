package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/shopspring/decimal"
)

const DefaultHistoryLimit uint = 50

type SavingsService struct {
	uow         uow.UOW
	savingsRepo SavingsRepository
}

func NewSavingsService(u uow.UOW) (*SavingsService, error) {
	savingsRepo, err := uow.GetRepositoryAs[SavingsRepository](u, uow.RepositoryName(repoargs.SavingsRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &SavingsService{
		uow:         u,
		savingsRepo: savingsRepo,
	}, nil
}

type SavingsBalance struct {
	Balance   decimal.Decimal
	Deposited decimal.Decimal
	Withdrawn decimal.Decimal
}

// Balance считает баланс как сумма пополнений минус сумма снятий.
func (s *SavingsService) Balance(ctx context.Context, userID int64) (*SavingsBalance, error) {
	agg, err := s.savingsRepo.GetAggregation(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting savings balance: %w", err)
	}
	return newSavingsBalance(agg), nil
}

func (s *SavingsService) Deposit(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	reference string,
) (*domain.SavingsTransaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("depositing savings: %w", domain.ErrInvalidAmount)
	}
	deposit, err := s.savingsRepo.Create(ctx, repoargs.CreateSavings{
		UserID:    userID,
		Direction: domain.SavingsDeposit,
		Amount:    amount,
		Reference: reference,
	})
	if err != nil {
		return nil, fmt.Errorf("depositing savings: %w", err)
	}
	return deposit, nil
}

// Withdraw списывает amount со сбережений. Профиль пользователя блокируется на время транзакции, так что
// параллельные снятия видят баланс друг друга. Если amount больше баланса - domain.ErrNotEnoughBalance.
func (s *SavingsService) Withdraw(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	reference string,
) (*domain.SavingsTransaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("withdrawing savings: %w", domain.ErrInvalidAmount)
	}

	var withdrawal *domain.SavingsTransaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		savingsRepo, err := uow.GetAs[SavingsRepository](tx, uow.RepositoryName(repoargs.SavingsRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		if err = userRepo.LockByID(c, userID); err != nil {
			return err //nolint:wrapcheck
		}
		agg, err := savingsRepo.GetAggregation(c, userID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if amount.GreaterThan(newSavingsBalance(agg).Balance) {
			return domain.ErrNotEnoughBalance
		}

		withdrawal, err = savingsRepo.Create(c, repoargs.CreateSavings{
			UserID:    userID,
			Direction: domain.SavingsWithdrawal,
			Amount:    amount,
			Reference: reference,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("withdrawing savings: %w", txErr)
	}
	return withdrawal, nil
}

func (s *SavingsService) History(ctx context.Context, userID int64, limit uint) ([]domain.SavingsTransaction, error) {
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	history, err := s.savingsRepo.History(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("getting savings history: %w", err)
	}
	return history, nil
}

func newSavingsBalance(agg *repoargs.SavingsAggregation) *SavingsBalance {
	return &SavingsBalance{
		Balance:   agg.DepositAmount.Sub(agg.WithdrawalAmount),
		Deposited: agg.DepositAmount,
		Withdrawn: agg.WithdrawalAmount,
	}
}
