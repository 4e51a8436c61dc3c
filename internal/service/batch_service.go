package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/shopspring/decimal"
)

const (
	MinBatchMembers  = 2
	MaxBatchMembers  = 50
	DefaultCycleDays = 7
)

type BatchService struct {
	uow        uow.UOW
	batchRepo  BatchRepository
	payoutRepo PayoutRepository
	now        func() time.Time
}

func NewBatchService(u uow.UOW) (*BatchService, error) {
	batchRepo, err := uow.GetRepositoryAs[BatchRepository](u, uow.RepositoryName(repoargs.BatchRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	payoutRepo, err := uow.GetRepositoryAs[PayoutRepository](u, uow.RepositoryName(repoargs.PayoutRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &BatchService{
		uow:        u,
		batchRepo:  batchRepo,
		payoutRepo: payoutRepo,
		now:        time.Now,
	}, nil
}

type CreateBatchArgs struct {
	OwnerID            int64
	Name               string
	ContributionAmount decimal.Decimal
	MaxMembers         int
	CycleDays          int
}

// Create создает группу в статусе recruiting. Владелец становится первым участником в той же транзакции.
func (b *BatchService) Create(ctx context.Context, args CreateBatchArgs) (*domain.Batch, error) {
	if !args.ContributionAmount.IsPositive() {
		return nil, fmt.Errorf("creating batch: %w", domain.ErrInvalidAmount)
	}
	if args.MaxMembers < MinBatchMembers || args.MaxMembers > MaxBatchMembers {
		return nil, fmt.Errorf("creating batch: max members must be in [%d, %d]", MinBatchMembers, MaxBatchMembers)
	}
	if args.CycleDays <= 0 {
		args.CycleDays = DefaultCycleDays
	}

	var batch *domain.Batch
	txErr := b.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		batchRepo, err := uow.GetAs[BatchRepository](tx, uow.RepositoryName(repoargs.BatchRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		batch, err = batchRepo.Create(c, repoargs.CreateBatch{
			Name:               args.Name,
			OwnerID:            args.OwnerID,
			ContributionAmount: args.ContributionAmount,
			MaxMembers:         args.MaxMembers,
			CycleDays:          args.CycleDays,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = batchRepo.AddMember(c, batch.ID, args.OwnerID); err != nil {
			return err //nolint:wrapcheck
		}
		batch.CurrentMembers++
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating batch: %w", txErr)
	}
	return batch, nil
}

// Join добавляет пользователя в группу. Строка группы блокируется до конца транзакции, поэтому конкурентные
// вступления выполняются по очереди и не могут превысить max_members. Когда группа заполняется, она переходит
// в active и для нее строится график выплат.
//
// Ошибки: domain.ErrRecordNotFound, domain.ErrBatchNotRecruiting, domain.ErrBatchFull, domain.ErrAlreadyMember.
func (b *BatchService) Join(ctx context.Context, batchID, userID int64) (*domain.Batch, *domain.BatchMember, error) {
	var batch *domain.Batch
	var member *domain.BatchMember

	txErr := b.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		batchRepo, err := uow.GetAs[BatchRepository](tx, uow.RepositoryName(repoargs.BatchRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		batch, err = batchRepo.FindByIDForUpdate(c, batchID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if batch.IsFull() {
			return domain.ErrBatchFull
		}
		if batch.Status != domain.BatchStatusRecruiting {
			return domain.ErrBatchNotRecruiting
		}

		isMember, err := batchRepo.IsMember(c, batchID, userID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if isMember {
			return domain.ErrAlreadyMember
		}

		member, err = batchRepo.AddMember(c, batchID, userID)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateKey) {
				return domain.ErrAlreadyMember
			}
			return err //nolint:wrapcheck
		}
		batch.CurrentMembers = member.Position

		if !batch.IsFull() {
			return nil
		}
		batch, err = b.activate(c, tx, batch)
		return err
	})
	if txErr != nil {
		return nil, nil, fmt.Errorf("joining batch %d: %w", batchID, txErr)
	}
	return batch, member, nil
}

// activate переводит заполненную группу в active и создает график выплат: участник с позицией p получает
// общий банк группы через p циклов после старта.
func (b *BatchService) activate(ctx context.Context, tx uow.TX, batch *domain.Batch) (*domain.Batch, error) {
	batchRepo, err := uow.GetAs[BatchRepository](tx, uow.RepositoryName(repoargs.BatchRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	payoutRepo, err := uow.GetAs[PayoutRepository](tx, uow.RepositoryName(repoargs.PayoutRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	startedAt := b.now().UTC()
	activated, err := batchRepo.Activate(ctx, batch.ID, startedAt)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	members, err := batchRepo.Members(ctx, batch.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	payouts := make([]repoargs.CreatePayout, len(members))
	for i, m := range members {
		payouts[i] = repoargs.CreatePayout{
			BatchID:  batch.ID,
			UserID:   m.UserID,
			Position: m.Position,
			DueDate:  startedAt.AddDate(0, 0, m.Position*activated.CycleDays),
			Amount:   activated.PayoutAmount(),
		}
	}

	var payoutErr error
	payoutRepo.BatchCreate(ctx, payouts, func(_ int, err error) {
		if err != nil {
			payoutErr = err
		}
	})
	if payoutErr != nil {
		return nil, payoutErr
	}
	return activated, nil
}

func (b *BatchService) Get(ctx context.Context, batchID int64) (*domain.Batch, error) {
	batch, err := b.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("getting batch %d: %w", batchID, err)
	}
	return batch, nil
}

// ListForUser возвращает группы, в которых состоит пользователь.
func (b *BatchService) ListForUser(ctx context.Context, userID int64) ([]domain.Batch, error) {
	batches, err := b.batchRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing batches of user %d: %w", userID, err)
	}
	return batches, nil
}

func (b *BatchService) Members(ctx context.Context, batchID int64) ([]domain.BatchMember, error) {
	members, err := b.batchRepo.Members(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("getting members of batch %d: %w", batchID, err)
	}
	return members, nil
}

// PayoutSchedule график выплат группы. Пустой, пока группа набирается.
func (b *BatchService) PayoutSchedule(ctx context.Context, batchID int64) ([]domain.PayoutSchedule, error) {
	if _, err := b.batchRepo.FindByID(ctx, batchID); err != nil {
		return nil, fmt.Errorf("getting payout schedule of batch %d: %w", batchID, err)
	}
	schedule, err := b.payoutRepo.GetByBatchID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("getting payout schedule of batch %d: %w", batchID, err)
	}
	return schedule, nil
}
