package mpesa

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/service"
)

type Client interface {
	STKQuery(ctx context.Context, checkoutRequestID string) (*domain.STKQueryResult, error)
}

type Servicer interface {
	PendingForReconcile(ctx context.Context, limit uint, olderThan time.Duration) ([]domain.MpesaTransaction, error)
	ApplyReconcileResults(ctx context.Context, results []service.ReconcileResult) error
}
