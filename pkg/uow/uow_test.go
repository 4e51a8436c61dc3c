package uow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/fsdevblog/chama/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
)

// fakeTx реализует только Commit/Rollback, остальные методы pgx.Tx в тестах не вызываются.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(_ context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(_ context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type stubRepo struct {
	conn uow.DBTX
}

type UOWTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockPool *mocks.MockPool
	unit     *uow.UnitOfWork
}

func TestUOWSuite(t *testing.T) {
	suite.Run(t, new(UOWTestSuite))
}

func (s *UOWTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPool = mocks.NewMockPool(s.ctrl)
	s.unit = uow.NewUnitOfWork(s.mockPool, uow.WithIsolationLevel(pgx.ReadCommitted))
	s.Require().NoError(s.unit.Register("stub", func(conn uow.DBTX) uow.Repository {
		return &stubRepo{conn: conn}
	}))
}

func (s *UOWTestSuite) TestRegister() {
	s.Require().ErrorIs(s.unit.Register("stub", func(uow.DBTX) uow.Repository { return nil }),
		uow.ErrRepositoryAlreadyRegistered)
	s.Require().ErrorIs(s.unit.Register("nil", nil), uow.ErrNilFactory)
}

func (s *UOWTestSuite) TestGetRepositoryAs() {
	repo, err := uow.GetRepositoryAs[*stubRepo](s.unit, "stub")
	s.Require().NoError(err)
	s.Equal(s.mockPool, repo.conn)

	_, err = uow.GetRepositoryAs[*stubRepo](s.unit, "missing")
	s.Require().ErrorIs(err, uow.ErrRepositoryNotRegistered)

	_, err = uow.GetRepositoryAs[string](s.unit, "stub")
	s.Require().ErrorIs(err, uow.ErrInvalidRepositoryType)
}

func (s *UOWTestSuite) TestDo_Commit() {
	tx := new(fakeTx)
	s.mockPool.EXPECT().
		BeginTx(gomock.Any(), pgx.TxOptions{IsoLevel: pgx.ReadCommitted}).
		Return(tx, nil)

	err := s.unit.Do(s.T().Context(), func(_ context.Context, t uow.TX) error {
		first, getErr := uow.GetAs[*stubRepo](t, "stub")
		s.Require().NoError(getErr)
		second, getErr := uow.GetAs[*stubRepo](t, "stub")
		s.Require().NoError(getErr)
		// внутри одной транзакции репозиторий переиспользуется.
		s.Same(first, second)
		s.Equal(tx, first.conn)
		return nil
	})
	s.Require().NoError(err)
	s.True(tx.committed)
	s.False(tx.rolledBack)
}

func (s *UOWTestSuite) TestDo_Rollback() {
	tx := new(fakeTx)
	s.mockPool.EXPECT().BeginTx(gomock.Any(), gomock.Any()).Return(tx, nil)

	wantErr := errors.New("boom")
	err := s.unit.Do(s.T().Context(), func(context.Context, uow.TX) error {
		return wantErr
	})
	s.Require().ErrorIs(err, wantErr)
	s.False(tx.committed)
	s.True(tx.rolledBack)
}
