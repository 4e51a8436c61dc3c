package middlewares

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/chama/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const rateLimitTimeout = 500 * time.Millisecond

// RedisCounter реализует WindowCounter через INCR/EXPIRE.
type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	val, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", key, err)
	}
	if val == 1 {
		// первый запрос в окне, выставляем время жизни ключа.
		if expErr := r.client.Expire(ctx, key, window).Err(); expErr != nil {
			return 0, fmt.Errorf("expire %s: %w", key, expErr)
		}
	}
	return val, nil
}

// RateLimit ограничивает кол-во запросов на роут до limit за window. Ключ - id текущего юзера, если он есть
// в контексте, иначе ip клиента. Если счетчик недоступен, запрос пропускается.
func RateLimit(counter WindowCounter, limit int, window time.Duration, l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil || limit <= 0 {
			c.Next()
			return
		}

		ident := c.ClientIP()
		if userID, ok := c.Get(CurrentUserIDKey); ok {
			ident = fmt.Sprintf("u%d", userID)
		}
		key := "rl:" + c.FullPath() + ":" + ident

		ctx, cancel := context.WithTimeout(c, rateLimitTimeout)
		defer cancel()

		val, err := counter.Incr(ctx, key, window)
		if err != nil {
			l.WithError(err).WithField("key", key).Warn("rate limiter unavailable")
			c.Next()
			return
		}

		if val > int64(limit) {
			metrics.RateLimitBlocked.WithLabelValues(c.FullPath()).Inc()
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(window.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
