package pgrepo

import (
	"context"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type PaymentSplitRepository struct {
	db uow.DBTX
}

func NewPaymentSplitRepository(db uow.DBTX) *PaymentSplitRepository {
	return &PaymentSplitRepository{db: db}
}

func (p *PaymentSplitRepository) BatchCreate(
	ctx context.Context,
	splits []repoargs.CreateSplit,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, split := range splits {
		batch.Queue(`
			INSERT INTO payment_splits (transaction_id, split_type, amount, destination_type, destination)
			VALUES ($1, $2, $3, $4, $5)`,
			split.TransactionID, string(split.SplitType), split.Amount, string(split.DestinationType),
			split.Destination,
		)
	}
	execBatch(ctx, p.db, batch, len(splits), fn, "creating payment split")
}

// UpdateStatusByTransaction переводит сплиты транзакции в status вслед за самой транзакцией. Возвращает кол-во
// обновленных строк.
func (p *PaymentSplitRepository) UpdateStatusByTransaction(
	ctx context.Context,
	transactionID int64,
	status domain.TransactionStatusType,
) (int64, error) {
	tag, err := p.db.Exec(ctx, `
		UPDATE payment_splits SET status = $2, updated_at = now()
		WHERE transaction_id = $1 AND status <> $2`,
		transactionID, string(status),
	)
	if err != nil {
		return 0, convertErr(err, "updating splits of transaction %d", transactionID)
	}
	return tag.RowsAffected(), nil
}

func (p *PaymentSplitRepository) GetByTransactionID(
	ctx context.Context,
	transactionID int64,
) ([]domain.PaymentSplit, error) {
	rows, err := p.db.Query(ctx, `
		SELECT id, created_at, updated_at, transaction_id, split_type::text, amount, destination_type::text,
		       destination, status::text
		FROM payment_splits
		WHERE transaction_id = $1
		ORDER BY id`,
		transactionID,
	)
	if err != nil {
		return nil, convertErr(err, "getting splits of transaction %d", transactionID)
	}
	splits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PaymentSplit, error) {
		var s domain.PaymentSplit
		var splitType, destinationType, status string
		scanErr := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.TransactionID, &splitType, &s.Amount,
			&destinationType, &s.Destination, &status)
		s.SplitType = domain.SplitType(splitType)
		s.DestinationType = domain.DestinationType(destinationType)
		s.Status = domain.TransactionStatusType(status)
		return s, scanErr
	})
	if err != nil {
		return nil, convertErr(err, "scanning splits of transaction %d", transactionID)
	}
	return splits, nil
}
