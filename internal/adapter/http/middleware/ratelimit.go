package middleware

import (
	"net/http"
	"time"

	"temporada_ferias/pkg"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/zap"
)

const limiterPrefix = "temporada_ferias:limiter"

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests, try again later", http.StatusTooManyRequests)

// NewLimiter builds a limiter from a "<limit>-<period>" rate such as "60-M".
// A nil redis client keeps the counters in process memory.
func NewLimiter(formatted string, client *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}

	var store limiter.Store
	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: limiterPrefix})
		if err != nil {
			return nil, err
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: limiterPrefix, CleanUpInterval: time.Minute})
	}
	return limiter.New(store, rate), nil
}

// RateLimit limits each client IP per route. Store failures let the request through.
func RateLimit(l *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.FullPath() + ":" + c.ClientIP()
		ctx, err := l.Get(c.Request.Context(), key)
		if err != nil {
			zap.L().Error("[http][ratelimit] store failure", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", cast.ToString(ctx.Limit))
		c.Header("X-RateLimit-Remaining", cast.ToString(ctx.Remaining))
		c.Header("X-RateLimit-Reset", cast.ToString(ctx.Reset))

		if ctx.Reached {
			zap.L().Warn("[http][ratelimit] limit reached", zap.String("key", key))
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
