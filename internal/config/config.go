package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultRunAddress        = "localhost:8080"
	defaultMigrationsDir     = "internal/db/migrations"
	defaultMpesaBaseURL      = "https://sandbox.safaricom.co.ke"
	defaultReconcileInterval = 5 * time.Second
	defaultMaxStatusAttempts = 24
	defaultReconcileWorkers  = 5
	defaultSTKRateLimit      = 5

	stkRateLimitEnv = "STK_RATE_LIMIT"
)

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"`
}

type MpesaConfig struct {
	BaseURL        string `env:"MPESA_BASE_URL"`
	ConsumerKey    string `env:"MPESA_CONSUMER_KEY"`
	ConsumerSecret string `env:"MPESA_CONSUMER_SECRET"`
	ShortCode      string `env:"MPESA_SHORTCODE"`
	PassKey        string `env:"MPESA_PASSKEY"`
	CallbackURL    string `env:"MPESA_CALLBACK_URL"`
	// CallbackToken сверяется с query параметром token входящего колбека.
	CallbackToken string `env:"MPESA_CALLBACK_TOKEN"`
}

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`

	Redis RedisConfig
	Mpesa MpesaConfig

	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL"`
	MaxStatusAttempts int           `env:"MAX_STATUS_ATTEMPTS"`
	ReconcileWorkers  uint          `env:"RECONCILE_WORKERS"`
	// STKRateLimit STK пушей в минуту на пользователя. 0 - без ограничения.
	STKRateLimit int `env:"STK_RATE_LIMIT"`
}

// LoadConfig собирает конфиг из переменных окружения (в том числе из .env) и флагов. Переменные окружения
// имеют приоритет над флагами.
func LoadConfig(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if dotEnvErr := godotenv.Load(); dotEnvErr != nil && !errors.Is(dotEnvErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", dotEnvErr.Error())
	}

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(args, &flagsConfig); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	if conf.MaxStatusAttempts < 1 {
		return nil, errors.New("max status attempts must be positive")
	}
	return conf, nil
}

func MustLoadConfig(args []string) *Config {
	config, err := LoadConfig(args)
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(args []string, flagConfig *Config) error {
	fs := flag.NewFlagSet("chama", flag.ContinueOnError)

	fs.StringVar(&flagConfig.RunAddress, "a", defaultRunAddress, "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", defaultMigrationsDir, "Database migrations directory")
	fs.StringVar(&flagConfig.Redis.Addr, "r", "", "Redis address for rate limiting, empty disables it")
	fs.StringVar(&flagConfig.Mpesa.BaseURL, "mpesa-url", defaultMpesaBaseURL, "Daraja API base url")
	fs.DurationVar(&flagConfig.ReconcileInterval, "reconcile-interval", defaultReconcileInterval,
		"Pause between payment status checks")
	fs.IntVar(&flagConfig.MaxStatusAttempts, "max-status-attempts", defaultMaxStatusAttempts,
		"Status checks before a pending payment fails")
	fs.UintVar(&flagConfig.ReconcileWorkers, "reconcile-workers", defaultReconcileWorkers,
		"Parallel status checks")
	fs.IntVar(&flagConfig.STKRateLimit, "stk-rate-limit", defaultSTKRateLimit, "STK pushes per minute per user")

	return fs.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig

	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.Redis.Addr = defaultIfBlank(envConfig.Redis.Addr, flagsConfig.Redis.Addr)
	conf.Mpesa.BaseURL = defaultIfBlank(envConfig.Mpesa.BaseURL, flagsConfig.Mpesa.BaseURL)
	conf.ReconcileInterval = defaultIfBlank(envConfig.ReconcileInterval, flagsConfig.ReconcileInterval)
	conf.MaxStatusAttempts = defaultIfBlank(envConfig.MaxStatusAttempts, flagsConfig.MaxStatusAttempts)
	conf.ReconcileWorkers = defaultIfBlank(envConfig.ReconcileWorkers, flagsConfig.ReconcileWorkers)
	// 0 в окружении отключает лимит, поэтому здесь важно наличие переменной, а не ее значение.
	if _, ok := os.LookupEnv(stkRateLimitEnv); !ok {
		conf.STKRateLimit = flagsConfig.STKRateLimit
	}
	return &conf
}

func defaultIfBlank[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}

// String скрывает секреты, чтобы конфиг можно было писать в лог.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s MigrationsDir:%s Redis:%s MpesaBaseURL:%s ShortCode:%s CallbackURL:%s "+
			"ReconcileInterval:%s MaxStatusAttempts:%d ReconcileWorkers:%d STKRateLimit:%d}",
		c.RunAddress, c.MigrationsDir, c.Redis.Addr, c.Mpesa.BaseURL, c.Mpesa.ShortCode, c.Mpesa.CallbackURL,
		c.ReconcileInterval, c.MaxStatusAttempts, c.ReconcileWorkers, c.STKRateLimit,
	)
}
