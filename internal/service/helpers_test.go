package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/internal/service/mocks"
	"github.com/fsdevblog/chama/pkg/uow"
	uowmocks "github.com/fsdevblog/chama/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
)

// repoMocks набор моков uow и всех репозиториев. Репозитории доступны как через uow.GetRepository,
// так и внутри транзакции через TX.Get.
type repoMocks struct {
	ctrl         *gomock.Controller
	uow          *uowmocks.MockUOW
	tx           *uowmocks.MockTX
	user         *mocks.MockUserRepository
	referral     *mocks.MockReferralRepository
	batch        *mocks.MockBatchRepository
	payout       *mocks.MockPayoutRepository
	contribution *mocks.MockContributionRepository
	savings      *mocks.MockSavingsRepository
	mpesaTx      *mocks.MockMpesaTransactionRepository
	split        *mocks.MockPaymentSplitRepository
	routing      *mocks.MockRoutingRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &repoMocks{
		ctrl:         ctrl,
		uow:          uowmocks.NewMockUOW(ctrl),
		tx:           uowmocks.NewMockTX(ctrl),
		user:         mocks.NewMockUserRepository(ctrl),
		referral:     mocks.NewMockReferralRepository(ctrl),
		batch:        mocks.NewMockBatchRepository(ctrl),
		payout:       mocks.NewMockPayoutRepository(ctrl),
		contribution: mocks.NewMockContributionRepository(ctrl),
		savings:      mocks.NewMockSavingsRepository(ctrl),
		mpesaTx:      mocks.NewMockMpesaTransactionRepository(ctrl),
		split:        mocks.NewMockPaymentSplitRepository(ctrl),
		routing:      mocks.NewMockRoutingRepository(ctrl),
	}

	repos := map[repoargs.RepositoryName]uow.Repository{
		repoargs.UserRepoName:         m.user,
		repoargs.ReferralRepoName:     m.referral,
		repoargs.BatchRepoName:        m.batch,
		repoargs.PayoutRepoName:       m.payout,
		repoargs.ContributionRepoName: m.contribution,
		repoargs.SavingsRepoName:      m.savings,
		repoargs.MpesaTxRepoName:      m.mpesaTx,
		repoargs.SplitRepoName:        m.split,
		repoargs.RoutingRepoName:      m.routing,
	}
	for name, repo := range repos {
		m.uow.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		m.tx.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}

	// транзакция просто выполняет функцию с мок транзакцией.
	m.uow.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	return m
}
