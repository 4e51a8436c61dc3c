package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/internal/service/mocks"
	"github.com/fsdevblog/chama/internal/service/tokens"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	repos       *repoMocks
	mockPsswd   *mocks.MockPasswordHasher
	jwtSecret   []byte
	userService *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.repos = newRepoMocks(s.T())
	s.mockPsswd = mocks.NewMockPasswordHasher(s.repos.ctrl)
	s.jwtSecret = []byte("secret")

	userService, err := NewUserService(s.repos.uow, s.jwtSecret, s.mockPsswd)
	s.Require().NoError(err)
	s.userService = userService
}

func (s *UserServiceTestSuite) fakeUser(id int64) *domain.User {
	return &domain.User{
		ID:           id,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Phone:        "2547" + gofakeit.DigitN(8),
		FullName:     gofakeit.Name(),
		Password:     "hashed",
		ReferralCode: "ABCD1234",
	}
}

func (s *UserServiceTestSuite) TestRegister() {
	referrer := s.fakeUser(1)
	created := s.fakeUser(2)

	s.mockPsswd.EXPECT().HashPassword(gomock.Any()).Return("hashed", nil).AnyTimes()

	s.Run("ok without referral", func() {
		s.repos.user.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.CreateUser) (*domain.User, error) {
				s.Equal("hashed", args.Password)
				s.Len(args.ReferralCode, referralCodeLen)
				return created, nil
			})

		user, token, err := s.userService.Register(s.T().Context(), RegisterUserArgs{
			Phone:    created.Phone,
			FullName: created.FullName,
			Password: "123456",
		})
		s.Require().NoError(err)
		s.Equal(created.ID, user.ID)

		userID, parseErr := tokens.ParseUserID(token, s.jwtSecret)
		s.Require().NoError(parseErr)
		s.Equal(created.ID, userID)
	})

	s.Run("ok with referral", func() {
		s.repos.user.EXPECT().FindByReferralCode(gomock.Any(), "ABCD1234").Return(referrer, nil)
		s.repos.user.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(created, nil)
		s.repos.referral.EXPECT().Create(gomock.Any(), referrer.ID, created.ID).
			Return(&domain.Referral{ID: 1, ReferrerID: referrer.ID, ReferredID: created.ID}, nil)

		_, _, err := s.userService.Register(s.T().Context(), RegisterUserArgs{
			Phone:        created.Phone,
			FullName:     created.FullName,
			Password:     "123456",
			ReferralCode: "abcd1234",
		})
		s.Require().NoError(err)
	})

	s.Run("unknown referral", func() {
		s.repos.user.EXPECT().FindByReferralCode(gomock.Any(), "NOPE").Return(nil, domain.ErrRecordNotFound)

		_, _, err := s.userService.Register(s.T().Context(), RegisterUserArgs{
			Phone:        created.Phone,
			Password:     "123456",
			ReferralCode: "nope",
		})
		s.Require().ErrorIs(err, domain.ErrInvalidReferral)
	})

	s.Run("duplicate phone", func() {
		s.repos.user.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateKey)

		_, _, err := s.userService.Register(s.T().Context(), RegisterUserArgs{
			Phone:    created.Phone,
			Password: "123456",
		})
		s.Require().ErrorIs(err, domain.ErrDuplicateKey)
	})
}

func (s *UserServiceTestSuite) TestLogin() {
	saved := s.fakeUser(1)

	s.repos.user.EXPECT().FindUserByPhone(gomock.Any(), saved.Phone).Return(saved, nil).Times(2)
	s.repos.user.EXPECT().FindUserByPhone(gomock.Any(), "254700000000").Return(nil, domain.ErrRecordNotFound)
	s.mockPsswd.EXPECT().ComparePassword("good", saved.Password).Return(true)
	s.mockPsswd.EXPECT().ComparePassword("bad", saved.Password).Return(false)

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{name: "ok", args: LoginUserArgs{Phone: saved.Phone, Password: "good"}},
		{name: "wrong phone", args: LoginUserArgs{Phone: "254700000000", Password: "good"},
			wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: LoginUserArgs{Phone: saved.Phone, Password: "bad"},
			wantErr: domain.ErrPasswordMissMatch},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			user, token, err := s.userService.Login(s.T().Context(), tc.args)
			if tc.wantErr != nil {
				s.Require().ErrorIs(err, tc.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(saved.ID, user.ID)
			s.NotEmpty(token)
		})
	}
}

func (s *UserServiceTestSuite) TestUserData() {
	user := s.fakeUser(7)
	batches := []domain.Batch{{ID: 1, Name: "Wamama", OwnerID: 7}}
	recent := []domain.MpesaTransaction{{ID: 3, UserID: 7, CheckoutRequestID: "ws_CO_1"}}

	s.repos.user.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
	s.repos.batch.EXPECT().ListByUserID(gomock.Any(), user.ID).Return(batches, nil)
	s.repos.savings.EXPECT().GetAggregation(gomock.Any(), user.ID).Return(&repoargs.SavingsAggregation{
		DepositAmount:    decimal.NewFromInt(1500),
		WithdrawalAmount: decimal.NewFromInt(400),
	}, nil)
	s.repos.referral.EXPECT().CountByReferrer(gomock.Any(), user.ID).Return(2, nil)
	s.repos.mpesaTx.EXPECT().ListByUserID(gomock.Any(), user.ID, uint(recentTransactionsLen)).Return(recent, nil)

	data, err := s.userService.UserData(s.T().Context(), user.ID)
	s.Require().NoError(err)
	s.Equal(user, data.User)
	s.Equal(batches, data.Batches)
	s.True(data.SavingsBalance.Equal(decimal.NewFromInt(1100)))
	s.Equal(2, data.Referrals)
	s.Equal(recent, data.RecentTransactions)
}
