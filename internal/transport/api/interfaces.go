package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/service"
)

type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	Profile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, fullName string) (*domain.User, error)
	UserData(ctx context.Context, userID int64) (*service.UserData, error)
}

type BatchServicer interface {
	Create(ctx context.Context, args service.CreateBatchArgs) (*domain.Batch, error)
	Join(ctx context.Context, batchID, userID int64) (*domain.Batch, *domain.BatchMember, error)
	Get(ctx context.Context, batchID int64) (*domain.Batch, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Batch, error)
	Members(ctx context.Context, batchID int64) ([]domain.BatchMember, error)
	PayoutSchedule(ctx context.Context, batchID int64) ([]domain.PayoutSchedule, error)
}

type SavingsServicer interface {
	Balance(ctx context.Context, userID int64) (*service.SavingsBalance, error)
	Deposit(ctx context.Context, userID int64, amount decimal.Decimal, reference string) (*domain.SavingsTransaction, error)
	Withdraw(
		ctx context.Context,
		userID int64,
		amount decimal.Decimal,
		reference string,
	) (*domain.SavingsTransaction, error)
	History(ctx context.Context, userID int64, limit uint) ([]domain.SavingsTransaction, error)
}

type PaymentServicer interface {
	InitiateSTKPush(ctx context.Context, args service.InitiateSTKPushArgs) (*domain.MpesaTransaction, error)
	GetStatus(ctx context.Context, userID int64, checkoutID string) (*domain.MpesaTransaction, error)
	Splits(ctx context.Context, userID int64, checkoutID string) ([]domain.PaymentSplit, error)
	HandleCallback(ctx context.Context, result domain.PaymentResult) (*domain.MpesaTransaction, error)
}
