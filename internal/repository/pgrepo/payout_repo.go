package pgrepo

import (
	"context"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type PayoutRepository struct {
	db uow.DBTX
}

func NewPayoutRepository(db uow.DBTX) *PayoutRepository {
	return &PayoutRepository{db: db}
}

// BatchCreate вставляет график выплат одним pgx.Batch. Результат каждой вставки передается в fn.
func (p *PayoutRepository) BatchCreate(
	ctx context.Context,
	payouts []repoargs.CreatePayout,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, payout := range payouts {
		batch.Queue(`
			INSERT INTO payout_schedules (batch_id, user_id, position, due_date, amount)
			VALUES ($1, $2, $3, $4, $5)`,
			payout.BatchID, payout.UserID, payout.Position, payout.DueDate, payout.Amount,
		)
	}
	execBatch(ctx, p.db, batch, len(payouts), fn, "creating payout schedule")
}

func (p *PayoutRepository) GetByBatchID(ctx context.Context, batchID int64) ([]domain.PayoutSchedule, error) {
	rows, err := p.db.Query(ctx, `
		SELECT id, batch_id, user_id, position, due_date, amount, status::text
		FROM payout_schedules
		WHERE batch_id = $1
		ORDER BY position`,
		batchID,
	)
	if err != nil {
		return nil, convertErr(err, "getting payout schedule of batch %d", batchID)
	}
	schedule, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PayoutSchedule, error) {
		var s domain.PayoutSchedule
		var status string
		scanErr := row.Scan(&s.ID, &s.BatchID, &s.UserID, &s.Position, &s.DueDate, &s.Amount, &status)
		s.Status = domain.PayoutStatusType(status)
		return s, scanErr
	})
	if err != nil {
		return nil, convertErr(err, "scanning payout schedule of batch %d", batchID)
	}
	return schedule, nil
}

// execBatch отправляет pgx.Batch и вызывает fn для результата каждого запроса по порядку.
func execBatch(
	ctx context.Context,
	db uow.DBTX,
	batch *pgx.Batch,
	size int,
	fn repoargs.BatchExecQueryRow,
	msg string,
) {
	if size == 0 {
		return
	}
	results := db.SendBatch(ctx, batch)
	defer func() {
		_ = results.Close()
	}()
	for i := range size {
		_, err := results.Exec()
		fn(i, convertErr(err, "%s #%d", msg, i))
	}
}
