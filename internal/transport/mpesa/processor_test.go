package mpesa

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/service"
	"github.com/fsdevblog/chama/internal/transport/mpesa/client"
	"github.com/fsdevblog/chama/internal/transport/mpesa/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor   *Processor
	mockClient  *mocks.MockClient
	mockService *mocks.MockServicer
	ctrl        *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockClient = mocks.NewMockClient(s.ctrl)
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = New(s.mockService, s.mockClient, logger).
		SetWorkers(2).
		SetLimitPerIteration(10).
		SetInterval(time.Second)
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func (s *ProcessorTestSuite) TestProcess_NoPending() {
	s.mockService.EXPECT().
		PendingForReconcile(gomock.Any(), uint(10), time.Second).
		Return([]domain.MpesaTransaction{}, nil)

	err := s.processor.process(s.T().Context())
	s.ErrorIs(err, ErrNoPending)
}

func (s *ProcessorTestSuite) TestProcess_ServiceError() {
	s.mockService.EXPECT().
		PendingForReconcile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	err := s.processor.process(s.T().Context())
	s.Require().Error(err)
	s.NotErrorIs(err, ErrNoPending)
}

func (s *ProcessorTestSuite) TestProcess_CollectsResults() {
	pending := []domain.MpesaTransaction{
		{ID: 1, CheckoutRequestID: "ws_CO_1", Status: domain.TransactionStatusPending},
		{ID: 2, CheckoutRequestID: "ws_CO_2", Status: domain.TransactionStatusPending, Attempts: 3},
		{ID: 3, CheckoutRequestID: "ws_CO_3", Status: domain.TransactionStatusPending},
	}
	s.mockService.EXPECT().
		PendingForReconcile(gomock.Any(), uint(10), time.Second).
		Return(pending, nil)

	providerErr := errors.New("gateway timeout")
	s.mockClient.EXPECT().STKQuery(gomock.Any(), "ws_CO_1").
		Return(&domain.STKQueryResult{ResultCode: domain.ResultCodeSuccess, ResultDesc: "ok"}, nil)
	s.mockClient.EXPECT().STKQuery(gomock.Any(), "ws_CO_2").
		Return(&domain.STKQueryResult{Pending: true}, nil)
	s.mockClient.EXPECT().STKQuery(gomock.Any(), "ws_CO_3").
		Return(nil, providerErr)

	s.mockService.EXPECT().
		ApplyReconcileResults(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, results []service.ReconcileResult) error {
			// таймаут применения растет с количеством результатов.
			deadline, ok := ctx.Deadline()
			s.Require().True(ok)
			s.Greater(time.Until(deadline), defaultServiceTimeout)

			s.Require().Len(results, 3)
			sort.Slice(results, func(i, j int) bool {
				return results[i].Transaction.ID < results[j].Transaction.ID
			})

			s.Require().NotNil(results[0].Query)
			s.False(results[0].Query.Pending)
			s.Equal(domain.ResultCodeSuccess, results[0].Query.ResultCode)

			s.Require().NotNil(results[1].Query)
			s.True(results[1].Query.Pending)
			s.Equal(3, results[1].Transaction.Attempts)

			s.Nil(results[2].Query)
			s.ErrorIs(results[2].Error, providerErr)
			return nil
		})

	s.Require().NoError(s.processor.process(s.T().Context()))
}

func (s *ProcessorTestSuite) TestProcess_RetryAfterTooManyRequests() {
	pending := []domain.MpesaTransaction{
		{ID: 7, CheckoutRequestID: "ws_CO_7", Status: domain.TransactionStatusPending},
	}
	s.mockService.EXPECT().
		PendingForReconcile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pending, nil)

	gomock.InOrder(
		s.mockClient.EXPECT().STKQuery(gomock.Any(), "ws_CO_7").
			Return(nil, client.NewTooManyRequestError(10*time.Millisecond)),
		s.mockClient.EXPECT().STKQuery(gomock.Any(), "ws_CO_7").
			Return(&domain.STKQueryResult{ResultCode: 1032, ResultDesc: "Request cancelled by user"}, nil),
	)

	s.mockService.EXPECT().
		ApplyReconcileResults(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, results []service.ReconcileResult) error {
			s.Require().Len(results, 1)
			s.Require().NoError(results[0].Error)
			s.Equal(1032, results[0].Query.ResultCode)
			return nil
		})

	s.Require().NoError(s.processor.process(s.T().Context()))
}

func (s *ProcessorTestSuite) TestBuilders_IgnoreZero() {
	p := New(s.mockService, s.mockClient, logrus.New()).
		SetWorkers(0).
		SetLimitPerIteration(0).
		SetInterval(0)
	s.Equal(defaultWorkers, p.workers)
	s.Equal(defaultLimitPerIteration, p.limitPerIteration)
	s.Equal(defaultInterval, p.interval)
}

func (s *ProcessorTestSuite) TestApplyTimeout() {
	s.Equal(defaultServiceTimeout, applyTimeout(0))
	s.Equal(defaultServiceTimeout+50*perResultTimeout, applyTimeout(50))
}

func (s *ProcessorTestSuite) TestJitter() {
	for range 100 {
		v := jitter(100, 0.1, 0.1)
		s.GreaterOrEqual(v, 90.0)
		s.LessOrEqual(v, 110.0)
	}
}
