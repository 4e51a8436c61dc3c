// Package mpesa сверяет статусы pending платежей с M-Pesa, если колбек провайдера не пришел.
package mpesa

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/logger"
	"github.com/fsdevblog/chama/internal/service"
	"github.com/fsdevblog/chama/internal/transport/mpesa/client"
	"github.com/sirupsen/logrus"
)

var ErrNoPending = errors.New("no pending payments")

const (
	defaultServiceTimeout         = 3 * time.Second
	perResultTimeout              = 200 * time.Millisecond
	defaultAPITimeout             = 10 * time.Second
	defaultInterval               = 5 * time.Second
	defaultLimitPerIteration uint = 100
	defaultWorkers           uint = 5
)

// Processor периодически запрашивает статус pending платежей и передает результаты в сервисный слой.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	interval          time.Duration
	limitPerIteration uint
	workers           uint
}

func New(svs Servicer, c Client, l *logrus.Logger) *Processor {
	return &Processor{
		svs:               svs,
		client:            c,
		l:                 logger.Component(l, "mpesa", "reconciler"),
		interval:          defaultInterval,
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultWorkers,
	}
}

// SetInterval устанавливает паузу между итерациями. Платеж проверяется не чаще одного раза за interval.
func (p *Processor) SetInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

// SetLimitPerIteration устанавливает кол-во платежей, проверяемых за одну итерацию.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	if limit > 0 {
		p.limitPerIteration = limit
	}
	return p
}

// SetWorkers устанавливает кол-во воркеров, параллельно опрашивающих M-Pesa.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// Run опрашивает статусы до отмены контекста.
//
// Алгоритм работы:
//  1. Каждые interval (с небольшим разбросом) через сервисный слой запрашивается список pending платежей, которые
//     не проверялись дольше interval.
//  2. Воркеры параллельно запрашивают статус каждого платежа у M-Pesa.
//  3. Результаты передаются в сервисный слой одним вызовом. Там же учитывается бюджет проверок.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"interval":          p.interval,
		"limitPerIteration": p.limitPerIteration,
		"workers":           p.workers,
	}).Info("Starting")

	for {
		wait := time.Duration(jitter(float64(p.interval), 0.1, 0.1)) //nolint:mnd
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(wait):
			if err := p.process(ctx); err != nil && !errors.Is(err, ErrNoPending) {
				p.l.WithError(err).Error("process error")
			}
		}
	}
}

func (p *Processor) process(ctx context.Context) error {
	txs, err := p.produce(ctx)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}

	results := p.runWorkers(ctx, txs)
	if len(results) == 0 {
		return nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, applyTimeout(len(results)))
	defer cancel()

	if applyErr := p.svs.ApplyReconcileResults(reqCtx, results); applyErr != nil {
		return fmt.Errorf("process: %w", applyErr)
	}
	return nil
}

// applyTimeout каждый результат применяется в своей транзакции, поэтому таймаут растет с их количеством.
func applyTimeout(results int) time.Duration {
	return defaultServiceTimeout + time.Duration(results)*perResultTimeout
}

// produce возвращает ErrNoPending, если проверять нечего.
func (p *Processor) produce(ctx context.Context) ([]domain.MpesaTransaction, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	txs, err := p.svs.PendingForReconcile(produceCtx, p.limitPerIteration, p.interval)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}
	if len(txs) == 0 {
		return nil, ErrNoPending
	}
	return txs, nil
}

// runWorkers fan-out/fan-in: платежи раздаются воркерам, результаты собираются после завершения всех воркеров.
func (p *Processor) runWorkers(ctx context.Context, txs []domain.MpesaTransaction) []service.ReconcileResult {
	taskCh := make(chan domain.MpesaTransaction, len(txs))
	for _, tx := range txs {
		taskCh <- tx
	}
	close(taskCh)

	resultCh := make(chan service.ReconcileResult, len(txs))
	wg := new(sync.WaitGroup)
	for i := range p.workers {
		wg.Add(1)
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	results := make([]service.ReconcileResult, 0, len(txs))
	for result := range resultCh {
		results = append(results, result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan domain.MpesaTransaction,
	resultCh chan<- service.ReconcileResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case tx, ok := <-taskCh:
			if !ok {
				return
			}
			result := p.check(ctx, tx)
			l := p.l.WithFields(logrus.Fields{
				"worker":            workerID,
				"CheckoutRequestID": tx.CheckoutRequestID,
				"attempt":           tx.Attempts + 1,
			})
			if result.Error != nil {
				l.WithError(result.Error).Warn("stk query")
			} else {
				l.WithField("pending", result.Query.Pending).Debug("stk query")
			}
			resultCh <- result
		}
	}
}

// check запрашивает статус платежа. На 429 ждет время из Retry-After и повторяет запрос.
func (p *Processor) check(ctx context.Context, tx domain.MpesaTransaction) service.ReconcileResult {
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		query, err := p.client.STKQuery(reqCtx, tx.CheckoutRequestID)
		cancel()

		if err == nil {
			return service.ReconcileResult{Transaction: tx, Query: query}
		}

		var tooManyReq *client.TooManyRequestError
		if !errors.As(err, &tooManyReq) {
			return service.ReconcileResult{Transaction: tx, Error: err}
		}
		select {
		case <-ctx.Done():
			return service.ReconcileResult{Transaction: tx, Error: ctx.Err()}
		case <-time.After(tooManyReq.RetryAfter):
		}
	}
}
