package api

import (
	"net/http"
	"testing"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/service"
	"github.com/fsdevblog/chama/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SavingsHandlerTestSuite struct {
	routerSuite
}

func TestSavingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SavingsHandlerTestSuite))
}

func (s *SavingsHandlerTestSuite) TestBalance() {
	s.mockSavings.EXPECT().Balance(gomock.Any(), s.currentUserID).
		Return(&service.SavingsBalance{
			Balance:   decimal.NewFromInt(700),
			Deposited: decimal.NewFromInt(1000),
			Withdrawn: decimal.NewFromInt(300),
		}, nil)

	resp := s.authed(http.MethodGet, RouteGroup+SavingsBalanceRoute, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var body SavingsBalanceResponse
	s.Require().NoError(testutils.DecodeBody(resp, &body))
	s.InDelta(700.0, body.Balance, 0.001)
	s.InDelta(300.0, body.Withdrawn, 0.001)
}

func (s *SavingsHandlerTestSuite) TestWithdraw() {
	s.mockSavings.EXPECT().
		Withdraw(gomock.Any(), s.currentUserID, gomock.Any(), "rent").
		DoAndReturn(func(_ any, _ int64, amount decimal.Decimal, ref string) (*domain.SavingsTransaction, error) {
			if amount.GreaterThan(decimal.NewFromInt(700)) {
				return nil, domain.ErrNotEnoughBalance
			}
			return &domain.SavingsTransaction{
				Direction: domain.SavingsWithdrawal,
				Amount:    amount,
				Reference: ref,
			}, nil
		}).Times(2)

	resp := s.authed(http.MethodPost, RouteGroup+SavingsWithdrawRoute,
		map[string]any{"amount": 500, "reference": "rent"})
	s.Equal(http.StatusCreated, resp.StatusCode)
	var body SavingsTransactionResponse
	s.Require().NoError(testutils.DecodeBody(resp, &body))
	s.Equal(domain.SavingsWithdrawal, body.Direction)
	s.InDelta(500.0, body.Amount, 0.001)

	resp = s.authed(http.MethodPost, RouteGroup+SavingsWithdrawRoute,
		map[string]any{"amount": 800, "reference": "rent"})
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	s.Equal(domain.ErrNotEnoughBalance.Error(), s.errorMessage(resp))
}

func (s *SavingsHandlerTestSuite) TestDeposit() {
	s.mockSavings.EXPECT().
		Deposit(gomock.Any(), s.currentUserID, gomock.Any(), "").
		Return(nil, domain.ErrInvalidAmount)

	resp := s.authed(http.MethodPost, RouteGroup+SavingsDepositRoute, map[string]any{"amount": -5})
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	s.Equal(domain.ErrInvalidAmount.Error(), s.errorMessage(resp))
}

func (s *SavingsHandlerTestSuite) TestHistory() {
	s.mockSavings.EXPECT().History(gomock.Any(), s.currentUserID, service.DefaultHistoryLimit).
		Return([]domain.SavingsTransaction{
			{Direction: domain.SavingsDeposit, Amount: decimal.NewFromInt(1000), Reference: "ws_CO_1"},
		}, nil)
	s.mockSavings.EXPECT().History(gomock.Any(), s.currentUserID, uint(5)).
		Return([]domain.SavingsTransaction{}, nil)

	resp := s.authed(http.MethodGet, RouteGroup+SavingsHistoryRoute, nil)
	var body []SavingsTransactionResponse
	s.Require().NoError(testutils.DecodeBody(resp, &body))
	s.Require().Len(body, 1)
	s.Equal("ws_CO_1", body[0].Reference)

	resp = s.authed(http.MethodGet, RouteGroup+SavingsHistoryRoute+"?limit=5", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	for _, limit := range []string{"0", "abc", "1000"} {
		resp = s.authed(http.MethodGet, RouteGroup+SavingsHistoryRoute+"?limit="+limit, nil)
		s.Equal(http.StatusUnprocessableEntity, resp.StatusCode, limit)
		resp.Body.Close()
	}
}
