package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/chama/internal/config"
	"github.com/fsdevblog/chama/internal/repository/pgrepo"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/internal/service"
	"github.com/fsdevblog/chama/internal/service/psswd"
	"github.com/fsdevblog/chama/internal/transport/api"
	"github.com/fsdevblog/chama/internal/transport/api/middlewares"
	"github.com/fsdevblog/chama/internal/transport/mpesa"
	"github.com/fsdevblog/chama/internal/transport/mpesa/client"
	"github.com/fsdevblog/chama/internal/transport/ws"
	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	shutdownTimeout  = 10 * time.Second
	redisPingTimeout = 2 * time.Second
	stkRateWindow    = time.Minute
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := InitUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	mpesaClient := client.New(client.Config{
		BaseURL:        a.Config.Mpesa.BaseURL,
		ConsumerKey:    a.Config.Mpesa.ConsumerKey,
		ConsumerSecret: a.Config.Mpesa.ConsumerSecret,
		ShortCode:      a.Config.Mpesa.ShortCode,
		PassKey:        a.Config.Mpesa.PassKey,
		CallbackURL:    a.Config.Mpesa.CallbackURL,
	})

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret: []byte(a.Config.JWTSecret),
		Hasher:    psswd.New(),
		Provider:  mpesaClient,
		Logger:    a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	hub := ws.NewHub(a.Logger)
	services.PaymentService.
		SetNotifier(hub).
		SetMaxStatusAttempts(a.Config.MaxStatusAttempts)

	routerArgs := api.RouterArgs{
		Logger:         a.Logger,
		UserService:    services.UserService,
		BatchService:   services.BatchService,
		SavingsService: services.SavingsService,
		PaymentService: services.PaymentService,
		JWTSecretKey:   []byte(a.Config.JWTSecret),
		CallbackToken:  a.Config.Mpesa.CallbackToken,
		STKRateLimit:   a.Config.STKRateLimit,
		STKRateWindow:  stkRateWindow,
		StatusStream:   ws.NewHandler(hub, services.PaymentService, a.Config.AllowedOrigin, a.Logger).Stream,
		HealthCheck:    conn.Ping,
	}

	if redisClient := a.connectRedis(notifyCtx); redisClient != nil {
		defer redisClient.Close()
		routerArgs.RateCounter = middlewares.NewRedisCounter(redisClient)
	}

	router, rErr := api.New(routerArgs)
	if rErr != nil {
		return fmt.Errorf("app run: %s", rErr.Error())
	}

	processor := mpesa.New(services.PaymentService, mpesaClient, a.Logger).
		SetInterval(a.Config.ReconcileInterval).
		SetWorkers(a.Config.ReconcileWorkers).
		SetLimitPerIteration(50) //nolint:mnd

	go processor.Run(notifyCtx)

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		a.Logger.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app shutdown: %w", err)
		}
		return nil
	case err := <-errChan:
		return err
	}
}

// connectRedis возвращает nil, если redis не настроен или недоступен. Без redis STK пуши не ограничиваются.
func (a *App) connectRedis(ctx context.Context) *redis.Client {
	if a.Config.Redis.Addr == "" {
		a.Logger.Warn("redis address is not set, stk push rate limit disabled")
		return nil
	}
	redisClient := redis.NewClient(&redis.Options{
		Addr:     a.Config.Redis.Addr,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		a.Logger.WithError(err).Warn("redis is unavailable, stk push rate limit disabled")
		_ = redisClient.Close()
		return nil
	}
	return redisClient
}

// InitUOW регистрирует репозитории в unit of work. Конкурентные вступления в группу и списания упорядочиваются
// блокировками строк (FOR UPDATE), поэтому транзакциям достаточно read committed.
func InitUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn, uow.WithIsolationLevel(pgx.ReadCommitted))

	factories := map[uow.RepositoryName]uow.RepositoryFactory{
		uow.RepositoryName(repoargs.UserRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		uow.RepositoryName(repoargs.ReferralRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewReferralRepository(dbtx)
		},
		uow.RepositoryName(repoargs.BatchRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewBatchRepository(dbtx)
		},
		uow.RepositoryName(repoargs.PayoutRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPayoutRepository(dbtx)
		},
		uow.RepositoryName(repoargs.ContributionRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewContributionRepository(dbtx)
		},
		uow.RepositoryName(repoargs.SavingsRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewSavingsRepository(dbtx)
		},
		uow.RepositoryName(repoargs.MpesaTxRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewMpesaTransactionRepository(dbtx)
		},
		uow.RepositoryName(repoargs.SplitRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPaymentSplitRepository(dbtx)
		},
		uow.RepositoryName(repoargs.RoutingRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewRoutingRepository(dbtx)
		},
	}
	if err := unitOfWork.RegisterAll(factories); err != nil {
		return nil, fmt.Errorf("init UOW: %s", err.Error())
	}
	return unitOfWork, nil
}
