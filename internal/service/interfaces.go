package service

import (
	"context"
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// MpesaProvider клиент Daraja API.
type MpesaProvider interface {
	STKPush(ctx context.Context, req domain.STKPushRequest) (*domain.STKPushResponse, error)
	STKQuery(ctx context.Context, checkoutRequestID string) (*domain.STKQueryResult, error)
}

// PaymentNotifier получает каждую смену статуса платежа.
type PaymentNotifier interface {
	Publish(tx domain.MpesaTransaction)
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, args repoargs.UpdateProfile) (*domain.User, error)
	LockByID(ctx context.Context, id int64) error
}

type ReferralRepository interface {
	Create(ctx context.Context, referrerID, referredID int64) (*domain.Referral, error)
	CountByReferrer(ctx context.Context, referrerID int64) (int, error)
}

type BatchRepository interface {
	Create(ctx context.Context, args repoargs.CreateBatch) (*domain.Batch, error)
	FindByID(ctx context.Context, id int64) (*domain.Batch, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Batch, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Batch, error)
	AddMember(ctx context.Context, batchID, userID int64) (*domain.BatchMember, error)
	Activate(ctx context.Context, batchID int64, startedAt time.Time) (*domain.Batch, error)
	Members(ctx context.Context, batchID int64) ([]domain.BatchMember, error)
	IsMember(ctx context.Context, batchID, userID int64) (bool, error)
}

type PayoutRepository interface {
	BatchCreate(ctx context.Context, payouts []repoargs.CreatePayout, fn repoargs.BatchExecQueryRow)
	GetByBatchID(ctx context.Context, batchID int64) ([]domain.PayoutSchedule, error)
}

type ContributionRepository interface {
	Create(ctx context.Context, args repoargs.CreateContribution) (*domain.WeeklyContribution, error)
	GetByBatchID(ctx context.Context, batchID int64) ([]domain.WeeklyContribution, error)
}

type SavingsRepository interface {
	Create(ctx context.Context, args repoargs.CreateSavings) (*domain.SavingsTransaction, error)
	GetAggregation(ctx context.Context, userID int64) (*repoargs.SavingsAggregation, error)
	History(ctx context.Context, userID int64, limit uint) ([]domain.SavingsTransaction, error)
}

type MpesaTransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateMpesaTransaction) (*domain.MpesaTransaction, error)
	FindByCheckoutID(ctx context.Context, checkoutID string) (*domain.MpesaTransaction, error)
	Resolve(ctx context.Context, args repoargs.ResolveMpesaTransaction) (*domain.MpesaTransaction, error)
	GetForReconcile(ctx context.Context, args repoargs.PendingForReconcile) ([]domain.MpesaTransaction, error)
	IncrementAttempts(ctx context.Context, ids []int64) error
	MarkChecked(ctx context.Context, ids []int64) error
	ListByUserID(ctx context.Context, userID int64, limit uint) ([]domain.MpesaTransaction, error)
}

type PaymentSplitRepository interface {
	BatchCreate(ctx context.Context, splits []repoargs.CreateSplit, fn repoargs.BatchExecQueryRow)
	UpdateStatusByTransaction(
		ctx context.Context,
		transactionID int64,
		status domain.TransactionStatusType,
	) (int64, error)
	GetByTransactionID(ctx context.Context, transactionID int64) ([]domain.PaymentSplit, error)
}

type RoutingRepository interface {
	Get(ctx context.Context) (*domain.SplitRouting, error)
	Update(ctx context.Context, args repoargs.UpdateRouting) (*domain.SplitRouting, error)
}
