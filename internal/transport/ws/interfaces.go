package ws

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/chama/internal/domain"
)

type PaymentFinder interface {
	Find(ctx context.Context, checkoutID string) (*domain.MpesaTransaction, error)
}
