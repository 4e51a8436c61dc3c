package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/chama/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	healthTimeout         = time.Second
)

const (
	RouteGroup           = "/api"
	RegisterRoute        = "/user/register"
	LoginRoute           = "/user/login"
	ProfileRoute         = "/user/profile"
	UserDataRoute        = "/user/data"
	BatchesRoute         = "/batches"
	BatchRoute           = "/batches/:id"
	BatchJoinRoute       = "/batches/:id/join"
	BatchScheduleRoute   = "/batches/:id/schedule"
	SavingsBalanceRoute  = "/savings/balance"
	SavingsHistoryRoute  = "/savings/history"
	SavingsDepositRoute  = "/savings/deposit"
	SavingsWithdrawRoute = "/savings/withdraw"
	STKPushRoute         = "/payments/stkpush"
	PaymentStatusRoute   = "/payments/:checkoutID/status"
	PaymentSplitsRoute   = "/payments/:checkoutID/splits"
	CallbackRoute        = "/payments/callback"
	StatusStreamRoute    = "/ws/payments/:checkoutID"
	MetricsRoute         = "/metrics"
	HealthRoute          = "/health"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	UserService    UserServicer
	BatchService   BatchServicer
	SavingsService SavingsServicer
	PaymentService PaymentServicer
	JWTSecretKey   []byte
	// CallbackToken секрет в query параметре callback url. Пустой - без проверки.
	CallbackToken string
	// RateCounter счетчик для ограничения STK пушей. nil - без ограничения.
	RateCounter   WindowCounter
	STKRateLimit  int
	STKRateWindow time.Duration
	// StatusStream websocket обработчик статусов платежа.
	StatusStream gin.HandlerFunc
	// HealthCheck проверка зависимостей (БД). nil - всегда ok.
	HealthCheck func(ctx context.Context) error
}

// WindowCounter см. middlewares.WindowCounter.
type WindowCounter = middlewares.WindowCounter

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}
	if args.Logger == nil {
		args.Logger = logrus.StandardLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.Logger(args.Logger))
	r.Use(middlewares.Metrics())
	r.Use(middlewares.Errors())

	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))
	r.GET(HealthRoute, healthHandler(args.HealthCheck))
	if args.StatusStream != nil {
		r.GET(StatusStreamRoute, args.StatusStream)
	}

	authHandler := NewAuthHandler(args.UserService)
	profileHandler := NewProfileHandler(args.UserService)
	batchesHandler := NewBatchesHandler(args.BatchService)
	savingsHandler := NewSavingsHandler(args.SavingsService)
	paymentsHandler := NewPaymentsHandler(args.PaymentService)
	callbackHandler := NewCallbackHandler(args.PaymentService, args.CallbackToken, args.Logger)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)
	api.POST(CallbackRoute, callbackHandler.Handle)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(ProfileRoute, profileHandler.Show)
	api.PATCH(ProfileRoute, profileHandler.Update)
	api.GET(UserDataRoute, profileHandler.Data)

	api.POST(BatchesRoute, batchesHandler.Create)
	api.GET(BatchesRoute, batchesHandler.Index)
	api.GET(BatchRoute, batchesHandler.Show)
	api.POST(BatchJoinRoute, batchesHandler.Join)
	api.GET(BatchScheduleRoute, batchesHandler.Schedule)

	api.GET(SavingsBalanceRoute, savingsHandler.Balance)
	api.GET(SavingsHistoryRoute, savingsHandler.History)
	api.POST(SavingsDepositRoute, savingsHandler.Deposit)
	api.POST(SavingsWithdrawRoute, savingsHandler.Withdraw)

	api.POST(STKPushRoute,
		middlewares.RateLimit(args.RateCounter, args.STKRateLimit, args.STKRateWindow, args.Logger),
		paymentsHandler.STKPush,
	)
	api.GET(PaymentStatusRoute, paymentsHandler.Status)
	api.GET(PaymentSplitsRoute, paymentsHandler.Splits)
	return r, nil
}

func healthHandler(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c, healthTimeout)
			defer cancel()
			if err := check(ctx); err != nil {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
