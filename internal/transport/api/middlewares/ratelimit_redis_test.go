package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// Запускается только при заданном REDIS_ADDR.
func TestRedisRateLimitIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, Password: os.Getenv("REDIS_PASSWORD")})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(t.Context()).Err())

	l := logrus.New()
	l.SetOutput(io.Discard)

	// уникальный путь, чтобы ключи не пересекались между запусками.
	path := "/test-" + uuid.NewString()
	r := gin.New()
	r.GET(path, RateLimit(NewRedisCounter(client), 2, 2*time.Second, l), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for range 2 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	ttl, err := client.TTL(t.Context(), "rl:"+path+":192.0.2.1").Result()
	require.NoError(t, err)
	require.Positive(t, ttl)
}
