package pgrepo

import (
	"context"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type ContributionRepository struct {
	db uow.DBTX
}

func NewContributionRepository(db uow.DBTX) *ContributionRepository {
	return &ContributionRepository{db: db}
}

func (c *ContributionRepository) Create(
	ctx context.Context,
	args repoargs.CreateContribution,
) (*domain.WeeklyContribution, error) {
	contribution := domain.WeeklyContribution{
		BatchID:       args.BatchID,
		UserID:        args.UserID,
		TransactionID: args.TransactionID,
		WeekNumber:    args.WeekNumber,
		Amount:        args.Amount,
	}
	err := c.db.QueryRow(ctx, `
		INSERT INTO weekly_contributions (batch_id, user_id, transaction_id, week_number, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		args.BatchID, args.UserID, args.TransactionID, args.WeekNumber, args.Amount,
	).Scan(&contribution.ID, &contribution.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating contribution for transaction %d", args.TransactionID)
	}
	return &contribution, nil
}

func (c *ContributionRepository) GetByBatchID(ctx context.Context, batchID int64) ([]domain.WeeklyContribution, error) {
	rows, err := c.db.Query(ctx, `
		SELECT id, created_at, batch_id, user_id, transaction_id, week_number, amount
		FROM weekly_contributions
		WHERE batch_id = $1
		ORDER BY week_number, created_at`,
		batchID,
	)
	if err != nil {
		return nil, convertErr(err, "getting contributions of batch %d", batchID)
	}
	contributions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WeeklyContribution, error) {
		var w domain.WeeklyContribution
		scanErr := row.Scan(&w.ID, &w.CreatedAt, &w.BatchID, &w.UserID, &w.TransactionID, &w.WeekNumber, &w.Amount)
		return w, scanErr
	})
	if err != nil {
		return nil, convertErr(err, "scanning contributions of batch %d", batchID)
	}
	return contributions, nil
}
