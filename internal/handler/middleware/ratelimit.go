package middleware

import (
	"log/slog"
	"net/http"

	"shopify-qrcode-app/internal/handler/httperr"
	"shopify-qrcode-app/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const scanLimiterPrefix = "qrcode_scan"

var errRateLimited = errs.New("rate limit exceeded")

// NewScanRateLimiter limits requests per client IP. With a nil client the
// counters live in process memory and are not shared between replicas.
func NewScanRateLimiter(formatted string, client *redis.Client) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid scan rate limit %q", formatted)
	}

	var store limiter.Store
	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: scanLimiterPrefix})
		if err != nil {
			return nil, errs.Wrap(err, "failed to create redis limiter store")
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          scanLimiterPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
	}

	slog.Info("Scan rate limiter initialized", "rate", formatted, "redis", client != nil)

	return mgin.NewMiddleware(
		limiter.New(store, rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// fail open; the scan itself does not depend on the limiter
			slog.Error("rate limiter store failed", "error", err.Error())
			c.Next()
		}),
	), nil
}
