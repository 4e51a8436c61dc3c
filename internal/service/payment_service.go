package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/logger"
	"github.com/fsdevblog/chama/internal/metrics"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const DefaultMaxStatusAttempts = 24

type noopNotifier struct{}

func (noopNotifier) Publish(domain.MpesaTransaction) {}

type PaymentService struct {
	uow         uow.UOW
	txRepo      MpesaTransactionRepository
	splitRepo   PaymentSplitRepository
	batchRepo   BatchRepository
	provider    MpesaProvider
	notifier    PaymentNotifier
	logger      *logrus.Entry
	maxAttempts int
	now         func() time.Time
}

func NewPaymentService(u uow.UOW, provider MpesaProvider, l *logrus.Logger) (*PaymentService, error) {
	txRepo, err := uow.GetRepositoryAs[MpesaTransactionRepository](u, uow.RepositoryName(repoargs.MpesaTxRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	splitRepo, err := uow.GetRepositoryAs[PaymentSplitRepository](u, uow.RepositoryName(repoargs.SplitRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	batchRepo, err := uow.GetRepositoryAs[BatchRepository](u, uow.RepositoryName(repoargs.BatchRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &PaymentService{
		uow:         u,
		txRepo:      txRepo,
		splitRepo:   splitRepo,
		batchRepo:   batchRepo,
		provider:    provider,
		notifier:    noopNotifier{},
		logger:      logger.Component(l, "service", "payment"),
		maxAttempts: DefaultMaxStatusAttempts,
		now:         time.Now,
	}, nil
}

// SetNotifier подписывает n на смены статусов платежей.
func (s *PaymentService) SetNotifier(n PaymentNotifier) *PaymentService {
	if n != nil {
		s.notifier = n
	}
	return s
}

// SetMaxStatusAttempts задает количество проверок статуса, после которого pending платеж считается неуспешным.
func (s *PaymentService) SetMaxStatusAttempts(n int) *PaymentService {
	if n > 0 {
		s.maxAttempts = n
	}
	return s
}

type InitiateSTKPushArgs struct {
	UserID           int64
	BatchID          *int64
	Amount           decimal.Decimal
	Phone            string
	AccountReference string
	Description      string
}

// InitiateSTKPush отправляет STK пуш на телефон плательщика и сохраняет pending транзакцию. Для взноса в группу
// (BatchID != nil) в той же транзакции БД создаются обе части сплита.
//
// Ошибки: domain.ErrInvalidAmount, domain.ErrInvalidPhone, domain.ErrAmountBelowFee, domain.ErrNotBatchMember,
// *domain.ProviderRejectedError, ошибки клиента M-Pesa и ошибки сохранения.
func (s *PaymentService) InitiateSTKPush(ctx context.Context, args InitiateSTKPushArgs) (*domain.MpesaTransaction, error) {
	if err := s.validateInitiate(ctx, args); err != nil {
		return nil, fmt.Errorf("initiating stk push: %w", err)
	}

	resp, err := s.provider.STKPush(ctx, domain.STKPushRequest{
		Amount:           args.Amount,
		Phone:            args.Phone,
		AccountReference: args.AccountReference,
		Description:      args.Description,
	})
	if err != nil {
		metrics.STKPushTotal.WithLabelValues(metrics.OutcomeProviderError).Inc()
		return nil, fmt.Errorf("initiating stk push: %w", err)
	}
	if !resp.Accepted() {
		metrics.STKPushTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, fmt.Errorf("initiating stk push: %w",
			domain.NewProviderRejectedError(resp.ResponseCode, resp.ResponseDescription))
	}

	tx, err := s.persistInitiated(ctx, args, resp)
	if err != nil {
		metrics.STKPushTotal.WithLabelValues(metrics.OutcomePersistError).Inc()
		s.logger.WithError(err).
			WithField("CheckoutRequestID", resp.CheckoutRequestID).
			Error("stk push accepted by provider but not persisted")
		return nil, fmt.Errorf("initiating stk push: %w", err)
	}

	metrics.STKPushTotal.WithLabelValues(metrics.OutcomeAccepted).Inc()
	return tx, nil
}

func (s *PaymentService) validateInitiate(ctx context.Context, args InitiateSTKPushArgs) error {
	if !args.Amount.IsPositive() || !args.Amount.IsInteger() {
		return domain.ErrInvalidAmount
	}
	if !domain.IsValidMSISDN(args.Phone) {
		return domain.ErrInvalidPhone
	}
	if args.BatchID == nil {
		return nil
	}
	if !args.Amount.GreaterThan(ServiceFee) {
		return domain.ErrAmountBelowFee
	}
	isMember, err := s.batchRepo.IsMember(ctx, *args.BatchID, args.UserID)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if !isMember {
		return domain.ErrNotBatchMember
	}
	return nil
}

func (s *PaymentService) persistInitiated(
	ctx context.Context,
	args InitiateSTKPushArgs,
	resp *domain.STKPushResponse,
) (*domain.MpesaTransaction, error) {
	var tx *domain.MpesaTransaction
	txErr := s.uow.Do(ctx, func(c context.Context, t uow.TX) error {
		txRepo, err := uow.GetAs[MpesaTransactionRepository](t, uow.RepositoryName(repoargs.MpesaTxRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		tx, err = txRepo.Create(c, repoargs.CreateMpesaTransaction{
			UserID:            args.UserID,
			BatchID:           args.BatchID,
			Phone:             args.Phone,
			Amount:            args.Amount,
			AccountReference:  args.AccountReference,
			Description:       args.Description,
			MerchantRequestID: resp.MerchantRequestID,
			CheckoutRequestID: resp.CheckoutRequestID,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		if args.BatchID == nil {
			return nil
		}
		return s.createSplits(c, t, tx)
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return tx, nil
}

func (s *PaymentService) createSplits(ctx context.Context, t uow.TX, tx *domain.MpesaTransaction) error {
	routingRepo, err := uow.GetAs[RoutingRepository](t, uow.RepositoryName(repoargs.RoutingRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	splitRepo, err := uow.GetAs[PaymentSplitRepository](t, uow.RepositoryName(repoargs.SplitRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}

	routing, err := routingRepo.Get(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}
	legs, err := ComputeSplit(tx.Amount, *routing)
	if err != nil {
		return err
	}

	splits := make([]repoargs.CreateSplit, len(legs))
	for i, leg := range legs {
		splits[i] = repoargs.CreateSplit{
			TransactionID:   tx.ID,
			SplitType:       leg.Type,
			Amount:          leg.Amount,
			DestinationType: leg.DestinationType,
			Destination:     leg.Destination,
		}
	}

	var splitErr error
	splitRepo.BatchCreate(ctx, splits, func(_ int, err error) {
		if err != nil {
			splitErr = err
		}
	})
	return splitErr
}

// GetStatus возвращает платеж пользователя. Если результат платежа не окончательный (pending или таймаут проверок),
// статус запрашивается у провайдера и полученный результат сохраняется. Ответ "еще обрабатывается" ничего не меняет.
func (s *PaymentService) GetStatus(ctx context.Context, userID int64, checkoutID string) (*domain.MpesaTransaction, error) {
	tx, err := s.findOwned(ctx, userID, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("getting payment status: %w", err)
	}
	if tx.IsFinal() {
		return tx, nil
	}

	query, err := s.provider.STKQuery(ctx, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("getting payment status: %w", err)
	}
	if query.Pending {
		return tx, nil
	}

	resolved, _, err := s.ApplyResult(ctx, domain.PaymentResult{
		CheckoutRequestID: checkoutID,
		ResultCode:        query.ResultCode,
		ResultDesc:        query.ResultDesc,
	})
	if err != nil {
		return nil, fmt.Errorf("getting payment status: %w", err)
	}
	return resolved, nil
}

// Splits возвращает части платежа пользователя. У платежей вне группы частей нет.
func (s *PaymentService) Splits(ctx context.Context, userID int64, checkoutID string) ([]domain.PaymentSplit, error) {
	tx, err := s.findOwned(ctx, userID, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("getting payment splits: %w", err)
	}
	splits, err := s.splitRepo.GetByTransactionID(ctx, tx.ID)
	if err != nil {
		return nil, fmt.Errorf("getting payment splits: %w", err)
	}
	return splits, nil
}

// Find возвращает платеж по CheckoutRequestID без проверки владельца и без запроса к провайдеру.
func (s *PaymentService) Find(ctx context.Context, checkoutID string) (*domain.MpesaTransaction, error) {
	tx, err := s.txRepo.FindByCheckoutID(ctx, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("finding payment `%s`: %w", checkoutID, err)
	}
	return tx, nil
}

// findOwned скрывает чужие платежи за domain.ErrRecordNotFound.
func (s *PaymentService) findOwned(ctx context.Context, userID int64, checkoutID string) (*domain.MpesaTransaction, error) {
	tx, err := s.txRepo.FindByCheckoutID(ctx, checkoutID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if tx.UserID != userID {
		return nil, domain.ErrRecordNotFound
	}
	return tx, nil
}

// HandleCallback применяет результат из колбека провайдера. Повторный колбек по уже завершенному платежу
// ничего не меняет. Неизвестный CheckoutRequestID - domain.ErrRecordNotFound.
func (s *PaymentService) HandleCallback(ctx context.Context, result domain.PaymentResult) (*domain.MpesaTransaction, error) {
	tx, transitioned, err := s.ApplyResult(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("handling callback: %w", err)
	}
	if !transitioned {
		s.logger.WithFields(logrus.Fields{
			"CheckoutRequestID": result.CheckoutRequestID,
			"Status":            tx.Status,
		}).Debug("duplicate callback for finished payment")
	}
	return tx, nil
}

// ApplyResult переводит pending платеж в completed (ResultCode == 0) или failed. Платеж, проваленный по таймауту
// проверок статуса, тоже принимает ответ провайдера. Остальные завершенные платежи не меняются, в этом случае
// возвращается их текущее состояние и transitioned == false.
//
// При переходе в той же транзакции обновляются части сплита, а для успешного платежа записывается взнос в группу
// или пополнение сбережений (account reference SAVINGS без группы).
func (s *PaymentService) ApplyResult(
	ctx context.Context,
	result domain.PaymentResult,
) (*domain.MpesaTransaction, bool, error) {
	status := domain.StatusFromResultCode(result.ResultCode)

	var tx *domain.MpesaTransaction
	var transitioned bool
	txErr := s.uow.Do(ctx, func(c context.Context, t uow.TX) error {
		transitioned = false
		txRepo, err := uow.GetAs[MpesaTransactionRepository](t, uow.RepositoryName(repoargs.MpesaTxRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		tx, err = txRepo.Resolve(c, repoargs.ResolveMpesaTransaction{
			CheckoutRequestID: result.CheckoutRequestID,
			Status:            status,
			ResultCode:        result.ResultCode,
			ResultDesc:        result.ResultDesc,
			MpesaReceipt:      result.MpesaReceipt,
			TransactionDate:   result.TransactionDate,
		})
		if err != nil {
			if !errors.Is(err, domain.ErrRecordNotFound) {
				return err //nolint:wrapcheck
			}
			// pending строки нет: платеж уже завершен кем-то другим либо не существует.
			tx, err = txRepo.FindByCheckoutID(c, result.CheckoutRequestID)
			return err //nolint:wrapcheck
		}
		transitioned = true

		splitRepo, err := uow.GetAs[PaymentSplitRepository](t, uow.RepositoryName(repoargs.SplitRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = splitRepo.UpdateStatusByTransaction(c, tx.ID, status); err != nil {
			return err //nolint:wrapcheck
		}

		if status == domain.TransactionStatusCompleted {
			return s.creditCompleted(c, t, tx)
		}
		return nil
	})
	if txErr != nil {
		return nil, false, fmt.Errorf("applying result of `%s`: %w", result.CheckoutRequestID, txErr)
	}

	if transitioned {
		metrics.PaymentTransitions.WithLabelValues(string(tx.Status)).Inc()
		s.logger.WithFields(logrus.Fields{
			"CheckoutRequestID": tx.CheckoutRequestID,
			"Status":            tx.Status,
			"ResultCode":        result.ResultCode,
		}).Info("payment resolved")
		s.notifier.Publish(*tx)
	}
	return tx, transitioned, nil
}

// creditCompleted зачисляет успешный платеж: взнос в группу либо пополнение сбережений.
func (s *PaymentService) creditCompleted(ctx context.Context, t uow.TX, tx *domain.MpesaTransaction) error {
	if tx.BatchID != nil {
		batchRepo, err := uow.GetAs[BatchRepository](t, uow.RepositoryName(repoargs.BatchRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		contributionRepo, err := uow.GetAs[ContributionRepository](t,
			uow.RepositoryName(repoargs.ContributionRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		batch, err := batchRepo.FindByID(ctx, *tx.BatchID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		_, err = contributionRepo.Create(ctx, repoargs.CreateContribution{
			BatchID:       batch.ID,
			UserID:        tx.UserID,
			TransactionID: tx.ID,
			WeekNumber:    cycleNumber(batch, s.now()),
			Amount:        tx.Amount.Sub(ServiceFee),
		})
		return err //nolint:wrapcheck
	}

	if tx.AccountReference != domain.SavingsAccountReference {
		return nil
	}
	savingsRepo, err := uow.GetAs[SavingsRepository](t, uow.RepositoryName(repoargs.SavingsRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	reference := tx.MpesaReceipt
	if reference == "" {
		reference = tx.CheckoutRequestID
	}
	_, err = savingsRepo.Create(ctx, repoargs.CreateSavings{
		UserID:    tx.UserID,
		Direction: domain.SavingsDeposit,
		Amount:    tx.Amount,
		Reference: reference,
	})
	return err //nolint:wrapcheck
}

// cycleNumber номер цикла группы на момент now. До старта группы взносы относятся к циклу 0.
func cycleNumber(batch *domain.Batch, now time.Time) int {
	if batch.StartedAt == nil || batch.CycleDays <= 0 || now.Before(*batch.StartedAt) {
		return 0
	}
	days := int(now.Sub(*batch.StartedAt).Hours() / 24) //nolint:mnd
	return days/batch.CycleDays + 1
}

// PendingForReconcile возвращает не более limit pending платежей, не проверявшихся дольше olderThan.
func (s *PaymentService) PendingForReconcile(
	ctx context.Context,
	limit uint,
	olderThan time.Duration,
) ([]domain.MpesaTransaction, error) {
	txs, err := s.txRepo.GetForReconcile(ctx, repoargs.PendingForReconcile{Limit: limit, OlderThan: olderThan})
	if err != nil {
		return nil, fmt.Errorf("getting payments for reconcile: %w", err)
	}
	return txs, nil
}

// ReconcileResult результат проверки статуса одного платежа.
type ReconcileResult struct {
	Transaction domain.MpesaTransaction
	Query       *domain.STKQueryResult
	Error       error
}

// ApplyReconcileResults применяет результаты проверок. Платежи с итоговым ответом провайдера завершаются,
// платежам с ответом "еще обрабатывается" увеличивается счетчик проверок. Если такая проверка была последней
// допустимой, платеж завершается как failed с кодом domain.ResultCodeStatusTimeout: этот результат еще может
// перекрыть колбек или запрос статуса. Ошибка запроса к провайдеру попыткой не считается.
func (s *PaymentService) ApplyReconcileResults(ctx context.Context, results []ReconcileResult) error {
	var counted = make([]int64, 0, len(results))
	var unanswered []int64
	var errs []error

	for _, r := range results {
		result, action := s.reconcileOutcome(r)
		switch action {
		case reconcileResolved:
			if _, _, err := s.ApplyResult(ctx, result); err != nil {
				errs = append(errs, err)
			}
		case reconcileStillPending:
			counted = append(counted, r.Transaction.ID)
		case reconcileUnanswered:
			unanswered = append(unanswered, r.Transaction.ID)
		}
	}

	if len(counted) > 0 {
		if err := s.txRepo.IncrementAttempts(ctx, counted); err != nil {
			errs = append(errs, err)
		}
	}
	if len(unanswered) > 0 {
		if err := s.txRepo.MarkChecked(ctx, unanswered); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("applying reconcile results: %w", errors.Join(errs...))
	}
	return nil
}

type reconcileAction int

const (
	reconcileResolved reconcileAction = iota
	reconcileStillPending
	reconcileUnanswered
)

func (s *PaymentService) reconcileOutcome(r ReconcileResult) (domain.PaymentResult, reconcileAction) {
	result := domain.PaymentResult{CheckoutRequestID: r.Transaction.CheckoutRequestID}

	switch {
	case r.Error != nil || r.Query == nil:
		metrics.ReconcileChecks.WithLabelValues("error").Inc()
		s.logger.WithError(r.Error).
			WithField("CheckoutRequestID", r.Transaction.CheckoutRequestID).
			Warn("status query failed")
		return result, reconcileUnanswered
	case !r.Query.Pending:
		metrics.ReconcileChecks.WithLabelValues("resolved").Inc()
		result.ResultCode = r.Query.ResultCode
		result.ResultDesc = r.Query.ResultDesc
		return result, reconcileResolved
	case r.Transaction.Attempts+1 >= s.maxAttempts:
		metrics.ReconcileChecks.WithLabelValues("timeout").Inc()
		result.ResultCode = domain.ResultCodeStatusTimeout
		result.ResultDesc = domain.StatusTimeoutDesc
		return result, reconcileResolved
	default:
		metrics.ReconcileChecks.WithLabelValues("pending").Inc()
		return result, reconcileStillPending
	}
}
