package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const batchColumns = `id, created_at, updated_at, name, owner_id, contribution_amount, max_members,
	current_members, cycle_days, status::text, started_at`

type BatchRepository struct {
	db uow.DBTX
}

func NewBatchRepository(db uow.DBTX) *BatchRepository {
	return &BatchRepository{db: db}
}

func (b *BatchRepository) Create(ctx context.Context, args repoargs.CreateBatch) (*domain.Batch, error) {
	row := b.db.QueryRow(ctx, `
		INSERT INTO batches (name, owner_id, contribution_amount, max_members, cycle_days)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+batchColumns,
		args.Name, args.OwnerID, args.ContributionAmount, args.MaxMembers, args.CycleDays,
	)
	batch, err := scanBatch(row)
	if err != nil {
		return nil, convertErr(err, "creating batch `%s`", args.Name)
	}
	return batch, nil
}

func (b *BatchRepository) FindByID(ctx context.Context, id int64) (*domain.Batch, error) {
	batch, err := scanBatch(b.db.QueryRow(ctx, `SELECT `+batchColumns+` FROM batches WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding batch by id %d", id)
	}
	return batch, nil
}

// FindByIDForUpdate читает батч с блокировкой строки. Имеет смысл только внутри транзакции.
func (b *BatchRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Batch, error) {
	row := b.db.QueryRow(ctx, `SELECT `+batchColumns+` FROM batches WHERE id = $1 FOR UPDATE`, id)
	batch, err := scanBatch(row)
	if err != nil {
		return nil, convertErr(err, "locking batch %d", id)
	}
	return batch, nil
}

// ListByUserID возвращает батчи, в которых состоит пользователь, от новых к старым.
func (b *BatchRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Batch, error) {
	rows, err := b.db.Query(ctx, `
		SELECT b.id, b.created_at, b.updated_at, b.name, b.owner_id, b.contribution_amount, b.max_members,
		       b.current_members, b.cycle_days, b.status::text, b.started_at
		FROM batches b
		JOIN batch_members m ON m.batch_id = b.id
		WHERE m.user_id = $1
		ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "listing batches of user %d", userID)
	}
	batches, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Batch, error) {
		batch, scanErr := scanBatch(row)
		if scanErr != nil {
			return domain.Batch{}, scanErr
		}
		return *batch, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning batches of user %d", userID)
	}
	return batches, nil
}

// AddMember добавляет участника и атомарно увеличивает счетчик участников. Если мест нет, сработает
// ограничение batches_members_capacity и вернется domain.ErrBatchFull.
func (b *BatchRepository) AddMember(ctx context.Context, batchID, userID int64) (*domain.BatchMember, error) {
	var position int
	err := b.db.QueryRow(ctx, `
		UPDATE batches SET current_members = current_members + 1, updated_at = now()
		WHERE id = $1
		RETURNING current_members`,
		batchID,
	).Scan(&position)
	if err != nil {
		return nil, convertErr(err, "incrementing members of batch %d", batchID)
	}

	member := domain.BatchMember{BatchID: batchID, UserID: userID, Position: position}
	err = b.db.QueryRow(ctx, `
		INSERT INTO batch_members (batch_id, user_id, position)
		VALUES ($1, $2, $3)
		RETURNING id, joined_at`,
		batchID, userID, position,
	).Scan(&member.ID, &member.JoinedAt)
	if err != nil {
		return nil, convertErr(err, "adding user %d to batch %d", userID, batchID)
	}
	return &member, nil
}

func (b *BatchRepository) Activate(ctx context.Context, batchID int64, startedAt time.Time) (*domain.Batch, error) {
	row := b.db.QueryRow(ctx, `
		UPDATE batches SET status = 'active', started_at = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+batchColumns,
		batchID, startedAt,
	)
	batch, err := scanBatch(row)
	if err != nil {
		return nil, convertErr(err, "activating batch %d", batchID)
	}
	return batch, nil
}

// Members возвращает участников батча в порядке очереди выплат.
func (b *BatchRepository) Members(ctx context.Context, batchID int64) ([]domain.BatchMember, error) {
	rows, err := b.db.Query(ctx, `
		SELECT id, batch_id, user_id, position, joined_at
		FROM batch_members
		WHERE batch_id = $1
		ORDER BY position`,
		batchID,
	)
	if err != nil {
		return nil, convertErr(err, "listing members of batch %d", batchID)
	}
	members, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BatchMember, error) {
		var m domain.BatchMember
		scanErr := row.Scan(&m.ID, &m.BatchID, &m.UserID, &m.Position, &m.JoinedAt)
		return m, scanErr
	})
	if err != nil {
		return nil, convertErr(err, "scanning members of batch %d", batchID)
	}
	return members, nil
}

func (b *BatchRepository) IsMember(ctx context.Context, batchID, userID int64) (bool, error) {
	var exists bool
	err := b.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM batch_members WHERE batch_id = $1 AND user_id = $2)`,
		batchID, userID,
	).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking membership of user %d in batch %d", userID, batchID)
	}
	return exists, nil
}

func scanBatch(row pgx.Row) (*domain.Batch, error) {
	var batch domain.Batch
	var status string
	if err := row.Scan(
		&batch.ID,
		&batch.CreatedAt,
		&batch.UpdatedAt,
		&batch.Name,
		&batch.OwnerID,
		&batch.ContributionAmount,
		&batch.MaxMembers,
		&batch.CurrentMembers,
		&batch.CycleDays,
		&status,
		&batch.StartedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	batch.Status = domain.BatchStatusType(status)
	return &batch, nil
}
