package pgrepo

import (
	"context"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type RoutingRepository struct {
	db uow.DBTX
}

func NewRoutingRepository(db uow.DBTX) *RoutingRepository {
	return &RoutingRepository{db: db}
}

func (r *RoutingRepository) Get(ctx context.Context) (*domain.SplitRouting, error) {
	row := r.db.QueryRow(ctx, `
		SELECT threshold, bank_account, mpesa_number, platform_account, updated_at
		FROM split_routing_config WHERE id = 1`)
	routing, err := scanRouting(row)
	if err != nil {
		return nil, convertErr(err, "getting split routing")
	}
	return routing, nil
}

func (r *RoutingRepository) Update(ctx context.Context, args repoargs.UpdateRouting) (*domain.SplitRouting, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO split_routing_config (id, threshold, bank_account, mpesa_number, platform_account)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET threshold = EXCLUDED.threshold, bank_account = EXCLUDED.bank_account,
		    mpesa_number = EXCLUDED.mpesa_number, platform_account = EXCLUDED.platform_account, updated_at = now()
		RETURNING threshold, bank_account, mpesa_number, platform_account, updated_at`,
		args.Threshold, args.BankAccount, args.MpesaNumber, args.PlatformAccount,
	)
	routing, err := scanRouting(row)
	if err != nil {
		return nil, convertErr(err, "updating split routing")
	}
	return routing, nil
}

func scanRouting(row pgx.Row) (*domain.SplitRouting, error) {
	var routing domain.SplitRouting
	if err := row.Scan(
		&routing.Threshold,
		&routing.BankAccount,
		&routing.MpesaNumber,
		&routing.PlatformAccount,
		&routing.UpdatedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &routing, nil
}
