package pgrepo

import (
	"context"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const mpesaTxColumns = `id, created_at, updated_at, user_id, batch_id, phone, amount, account_reference, description,
	merchant_request_id, checkout_request_id, status::text, result_code, result_desc, mpesa_receipt,
	transaction_date, attempts`

type MpesaTransactionRepository struct {
	db uow.DBTX
}

func NewMpesaTransactionRepository(db uow.DBTX) *MpesaTransactionRepository {
	return &MpesaTransactionRepository{db: db}
}

func (m *MpesaTransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateMpesaTransaction,
) (*domain.MpesaTransaction, error) {
	row := m.db.QueryRow(ctx, `
		INSERT INTO mpesa_transactions (user_id, batch_id, phone, amount, account_reference, description,
		                                merchant_request_id, checkout_request_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+mpesaTxColumns,
		args.UserID, args.BatchID, args.Phone, args.Amount, args.AccountReference, args.Description,
		args.MerchantRequestID, args.CheckoutRequestID,
	)
	tx, err := scanMpesaTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating mpesa transaction `%s`", args.CheckoutRequestID)
	}
	return tx, nil
}

func (m *MpesaTransactionRepository) FindByCheckoutID(
	ctx context.Context,
	checkoutID string,
) (*domain.MpesaTransaction, error) {
	row := m.db.QueryRow(ctx, `SELECT `+mpesaTxColumns+` FROM mpesa_transactions WHERE checkout_request_id = $1`,
		checkoutID)
	tx, err := scanMpesaTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding mpesa transaction `%s`", checkoutID)
	}
	return tx, nil
}

// Resolve переводит pending транзакцию в терминальный статус. Транзакция, проваленная по таймауту проверок
// (result_code = -1), тоже принимает ответ провайдера, но не повторный таймаут. Остальные завершенные транзакции
// не трогаются: если подходящей строки нет, вернется domain.ErrRecordNotFound.
func (m *MpesaTransactionRepository) Resolve(
	ctx context.Context,
	args repoargs.ResolveMpesaTransaction,
) (*domain.MpesaTransaction, error) {
	row := m.db.QueryRow(ctx, `
		UPDATE mpesa_transactions
		SET status = $2, result_code = $3, result_desc = $4, mpesa_receipt = $5, transaction_date = $6,
		    updated_at = now()
		WHERE checkout_request_id = $1
		  AND (status = 'pending' OR (status = 'failed' AND result_code = -1 AND $3 <> -1))
		RETURNING `+mpesaTxColumns,
		args.CheckoutRequestID, string(args.Status), args.ResultCode, args.ResultDesc, args.MpesaReceipt,
		args.TransactionDate,
	)
	tx, err := scanMpesaTransaction(row)
	if err != nil {
		return nil, convertErr(err, "resolving mpesa transaction `%s`", args.CheckoutRequestID)
	}
	return tx, nil
}

// GetForReconcile возвращает pending транзакции, которые не проверялись дольше OlderThan, начиная с самых давних.
func (m *MpesaTransactionRepository) GetForReconcile(
	ctx context.Context,
	args repoargs.PendingForReconcile,
) ([]domain.MpesaTransaction, error) {
	rows, err := m.db.Query(ctx, `
		SELECT `+mpesaTxColumns+`
		FROM mpesa_transactions
		WHERE status = 'pending' AND last_checked_at < now() - make_interval(secs => $2)
		ORDER BY last_checked_at
		LIMIT $1`,
		int64(args.Limit), args.OlderThan.Seconds(),
	)
	if err != nil {
		return nil, convertErr(err, "getting mpesa transactions for reconcile")
	}
	txs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MpesaTransaction, error) {
		tx, scanErr := scanMpesaTransaction(row)
		if scanErr != nil {
			return domain.MpesaTransaction{}, scanErr
		}
		return *tx, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning mpesa transactions for reconcile")
	}
	return txs, nil
}

// IncrementAttempts фиксирует очередную проверку статуса у провайдера.
func (m *MpesaTransactionRepository) IncrementAttempts(ctx context.Context, ids []int64) error {
	_, err := m.db.Exec(ctx, `
		UPDATE mpesa_transactions SET attempts = attempts + 1, last_checked_at = now()
		WHERE id = ANY($1) AND status = 'pending'`,
		ids,
	)
	if err != nil {
		return convertErr(err, "incrementing attempts for mpesa transactions `%v`", ids)
	}
	return nil
}

// MarkChecked сдвигает время последней проверки без расхода попыток: провайдер не ответил.
func (m *MpesaTransactionRepository) MarkChecked(ctx context.Context, ids []int64) error {
	_, err := m.db.Exec(ctx, `
		UPDATE mpesa_transactions SET last_checked_at = now()
		WHERE id = ANY($1) AND status = 'pending'`,
		ids,
	)
	if err != nil {
		return convertErr(err, "marking mpesa transactions `%v` as checked", ids)
	}
	return nil
}

// ListByUserID возвращает последние транзакции пользователя.
func (m *MpesaTransactionRepository) ListByUserID(
	ctx context.Context,
	userID int64,
	limit uint,
) ([]domain.MpesaTransaction, error) {
	rows, err := m.db.Query(ctx, `
		SELECT `+mpesaTxColumns+`
		FROM mpesa_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		userID, int64(limit),
	)
	if err != nil {
		return nil, convertErr(err, "listing mpesa transactions of user %d", userID)
	}
	txs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MpesaTransaction, error) {
		tx, scanErr := scanMpesaTransaction(row)
		if scanErr != nil {
			return domain.MpesaTransaction{}, scanErr
		}
		return *tx, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning mpesa transactions of user %d", userID)
	}
	return txs, nil
}

func scanMpesaTransaction(row pgx.Row) (*domain.MpesaTransaction, error) {
	var tx domain.MpesaTransaction
	var status string
	if err := row.Scan(
		&tx.ID,
		&tx.CreatedAt,
		&tx.UpdatedAt,
		&tx.UserID,
		&tx.BatchID,
		&tx.Phone,
		&tx.Amount,
		&tx.AccountReference,
		&tx.Description,
		&tx.MerchantRequestID,
		&tx.CheckoutRequestID,
		&status,
		&tx.ResultCode,
		&tx.ResultDesc,
		&tx.MpesaReceipt,
		&tx.TransactionDate,
		&tx.Attempts,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	tx.Status = domain.TransactionStatusType(status)
	return &tx, nil
}
