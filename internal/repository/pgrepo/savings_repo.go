package pgrepo

import (
	"context"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type SavingsRepository struct {
	db uow.DBTX
}

func NewSavingsRepository(db uow.DBTX) *SavingsRepository {
	return &SavingsRepository{db: db}
}

func (s *SavingsRepository) Create(ctx context.Context, args repoargs.CreateSavings) (*domain.SavingsTransaction, error) {
	savings := domain.SavingsTransaction{
		UserID:    args.UserID,
		Direction: args.Direction,
		Amount:    args.Amount,
		Reference: args.Reference,
	}
	err := s.db.QueryRow(ctx, `
		INSERT INTO savings (user_id, direction, amount, reference)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		args.UserID, string(args.Direction), args.Amount, args.Reference,
	).Scan(&savings.ID, &savings.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating %s for user %d", args.Direction, args.UserID)
	}
	return &savings, nil
}

// GetAggregation считает суммы пополнений и снятий пользователя. Баланс в БД не хранится.
func (s *SavingsRepository) GetAggregation(ctx context.Context, userID int64) (*repoargs.SavingsAggregation, error) {
	rows, err := s.db.Query(ctx, `
		SELECT direction::text, COALESCE(SUM(amount), 0)
		FROM savings
		WHERE user_id = $1
		GROUP BY direction`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "aggregating savings of user %d", userID)
	}
	defer rows.Close()

	agg := &repoargs.SavingsAggregation{DepositAmount: decimal.Zero, WithdrawalAmount: decimal.Zero}
	for rows.Next() {
		var direction string
		var sum decimal.Decimal
		if scanErr := rows.Scan(&direction, &sum); scanErr != nil {
			return nil, convertErr(scanErr, "scanning savings aggregation of user %d", userID)
		}
		if domain.SavingsDirectionType(direction) == domain.SavingsDeposit {
			agg.DepositAmount = sum
		} else {
			agg.WithdrawalAmount = sum
		}
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "aggregating savings of user %d", userID)
	}
	return agg, nil
}

// History возвращает движения по сбережениям от новых к старым.
func (s *SavingsRepository) History(ctx context.Context, userID int64, limit uint) ([]domain.SavingsTransaction, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, created_at, user_id, direction::text, amount, reference
		FROM savings
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		userID, int64(limit),
	)
	if err != nil {
		return nil, convertErr(err, "getting savings history of user %d", userID)
	}
	history, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SavingsTransaction, error) {
		var t domain.SavingsTransaction
		var direction string
		scanErr := row.Scan(&t.ID, &t.CreatedAt, &t.UserID, &direction, &t.Amount, &t.Reference)
		t.Direction = domain.SavingsDirectionType(direction)
		return t, scanErr
	})
	if err != nil {
		return nil, convertErr(err, "scanning savings history of user %d", userID)
	}
	return history, nil
}
