package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"RUN_ADDRESS", "DATABASE_URI", "MIGRATIONS_DIR", "JWT_SECRET", "REDIS_ADDR", "MPESA_BASE_URL",
		"RECONCILE_INTERVAL", "MAX_STATUS_ATTEMPTS", "RECONCILE_WORKERS", "STK_RATE_LIMIT", "MPESA_CONSUMER_KEY",
	} {
		// Setenv восстановит исходное значение после теста.
		s.T().Setenv(key, os.Getenv(key))
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *ConfigTestSuite) TestDefaults() {
	s.T().Setenv("JWT_SECRET", "secret")

	conf, err := LoadConfig([]string{"-d", "postgres://localhost/chama"})
	s.Require().NoError(err)
	s.Equal(defaultRunAddress, conf.RunAddress)
	s.Equal("postgres://localhost/chama", conf.DatabaseDSN)
	s.Equal(defaultMpesaBaseURL, conf.Mpesa.BaseURL)
	s.Equal(5*time.Second, conf.ReconcileInterval)
	s.Equal(24, conf.MaxStatusAttempts)
	s.Equal(uint(5), conf.ReconcileWorkers)
	s.Empty(conf.Redis.Addr)
}

func (s *ConfigTestSuite) TestEnvOverridesFlags() {
	s.T().Setenv("JWT_SECRET", "secret")
	s.T().Setenv("DATABASE_URI", "postgres://env/chama")
	s.T().Setenv("RUN_ADDRESS", ":9000")
	s.T().Setenv("RECONCILE_INTERVAL", "2s")
	s.T().Setenv("MAX_STATUS_ATTEMPTS", "3")
	s.T().Setenv("MPESA_CONSUMER_KEY", "key")

	conf, err := LoadConfig([]string{"-d", "postgres://flag/chama", "-a", ":8000", "-max-status-attempts", "10"})
	s.Require().NoError(err)
	s.Equal("postgres://env/chama", conf.DatabaseDSN)
	s.Equal(":9000", conf.RunAddress)
	s.Equal(2*time.Second, conf.ReconcileInterval)
	s.Equal(3, conf.MaxStatusAttempts)
	s.Equal("key", conf.Mpesa.ConsumerKey)
	s.NotContains(conf.String(), "key")
}

func (s *ConfigTestSuite) TestSTKRateLimit() {
	s.T().Setenv("JWT_SECRET", "secret")
	args := []string{"-d", "postgres://localhost/chama"}

	conf, err := LoadConfig(args)
	s.Require().NoError(err)
	s.Equal(defaultSTKRateLimit, conf.STKRateLimit)

	conf, err = LoadConfig(append(args, "-stk-rate-limit", "0"))
	s.Require().NoError(err)
	s.Equal(0, conf.STKRateLimit)

	// явный 0 в окружении отключает лимит и перекрывает флаг.
	s.T().Setenv("STK_RATE_LIMIT", "0")
	conf, err = LoadConfig(append(args, "-stk-rate-limit", "7"))
	s.Require().NoError(err)
	s.Equal(0, conf.STKRateLimit)
}

func (s *ConfigTestSuite) TestInvalid() {
	_, err := LoadConfig(nil)
	s.Require().ErrorContains(err, "database DSN is not set")

	_, err = LoadConfig([]string{"-d", "postgres://localhost/chama"})
	s.Require().ErrorContains(err, "jwt secret is not set")

	s.T().Setenv("JWT_SECRET", "secret")
	s.T().Setenv("RECONCILE_INTERVAL", "soon")
	_, err = LoadConfig([]string{"-d", "postgres://localhost/chama"})
	s.Require().ErrorContains(err, "parse env config")

	s.Panics(func() { MustLoadConfig([]string{"-unknown"}) })
}
