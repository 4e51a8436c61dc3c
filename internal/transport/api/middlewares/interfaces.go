package middlewares

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"
)

// WindowCounter считает запросы в фиксированном окне.
type WindowCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}
