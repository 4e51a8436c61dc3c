package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/internal/service/tokens"
	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	JWTTokenExpire = 1 * time.Hour

	referralCodeLen       = 8
	recentTransactionsLen = 10
)

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*UserService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Phone        string
	FullName     string
	Password     string
	ReferralCode string
}

// Register создает пользователя и, если указан реферальный код, связь с пригласившим. Возвращает пользователя
// и jwt токен. Неизвестный реферальный код - domain.ErrInvalidReferral, занятый телефон - domain.ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", hashErr)
	}

	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		var referrer *domain.User
		if args.ReferralCode != "" {
			referrer, err = userRepo.FindByReferralCode(c, strings.ToUpper(args.ReferralCode))
			if err != nil {
				if errors.Is(err, domain.ErrRecordNotFound) {
					return domain.ErrInvalidReferral
				}
				return err //nolint:wrapcheck
			}
		}

		user, err = userRepo.CreateUser(c, repoargs.CreateUser{
			Phone:        args.Phone,
			FullName:     args.FullName,
			Password:     password,
			ReferralCode: newReferralCode(),
		})
		if err != nil {
			return err //nolint:wrapcheck
		}

		if referrer == nil {
			return nil
		}
		referralRepo, err := uow.GetAs[ReferralRepository](tx, uow.RepositoryName(repoargs.ReferralRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		_, err = referralRepo.Create(c, referrer.ID, user.ID)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", txErr)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", tokenErr)
	}
	return user, token, nil
}

type LoginUserArgs struct {
	Phone    string
	Password string
}

// Login ищет пользователя по телефону и сверяет пароль. Ошибки domain.ErrRecordNotFound и
// domain.ErrPasswordMissMatch.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByPhone(ctx, args.Phone)
	if err != nil {
		return nil, "", fmt.Errorf("login user: %w", err)
	}
	if !s.hasher.ComparePassword(args.Password, user.Password) {
		return nil, "", fmt.Errorf("login user: %w", domain.ErrPasswordMissMatch)
	}
	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login user: %w", tokenErr)
	}
	return user, token, nil
}

func (s *UserService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, fullName string) (*domain.User, error) {
	user, err := s.userRepo.UpdateProfile(ctx, userID, repoargs.UpdateProfile{FullName: fullName})
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return user, nil
}

// UserData сводные данные пользователя для главного экрана.
type UserData struct {
	User               *domain.User
	Batches            []domain.Batch
	SavingsBalance     decimal.Decimal
	Referrals          int
	RecentTransactions []domain.MpesaTransaction
}

// UserData собирает профиль, группы, баланс сбережений, количество приглашенных и последние платежи.
func (s *UserService) UserData(ctx context.Context, userID int64) (*UserData, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user data: %w", err)
	}

	batchRepo, err := uow.GetRepositoryAs[BatchRepository](s.uow, uow.RepositoryName(repoargs.BatchRepoName))
	if err != nil {
		return nil, fmt.Errorf("getting user data: %w", err)
	}
	savingsRepo, err := uow.GetRepositoryAs[SavingsRepository](s.uow, uow.RepositoryName(repoargs.SavingsRepoName))
	if err != nil {
		return nil, fmt.Errorf("getting user data: %w", err)
	}
	referralRepo, err := uow.GetRepositoryAs[ReferralRepository](s.uow,
		uow.RepositoryName(repoargs.ReferralRepoName))
	if err != nil {
		return nil, fmt.Errorf("getting user data: %w", err)
	}
	txRepo, err := uow.GetRepositoryAs[MpesaTransactionRepository](s.uow,
		uow.RepositoryName(repoargs.MpesaTxRepoName))
	if err != nil {
		return nil, fmt.Errorf("getting user data: %w", err)
	}

	batches, err := batchRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user data: %w", err)
	}
	agg, err := savingsRepo.GetAggregation(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user data: %w", err)
	}
	referrals, err := referralRepo.CountByReferrer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user data: %w", err)
	}
	recent, err := txRepo.ListByUserID(ctx, userID, recentTransactionsLen)
	if err != nil {
		return nil, fmt.Errorf("getting user data: %w", err)
	}

	return &UserData{
		User:               user,
		Batches:            batches,
		SavingsBalance:     agg.DepositAmount.Sub(agg.WithdrawalAmount),
		Referrals:          referrals,
		RecentTransactions: recent,
	}, nil
}

func newReferralCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:referralCodeLen])
}
