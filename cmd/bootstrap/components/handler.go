package components

import (
	"shopify-qrcode-app/internal/handler"
	"shopify-qrcode-app/internal/handler/api"
	"shopify-qrcode-app/internal/handler/middleware"
	"shopify-qrcode-app/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQRCodeHandler,
		middleware.NewAuthMiddleware,
		NewRouterParams,
	),
	fx.Invoke(handler.NewRouter),
)

// rdb may be nil, in which case scan limits are kept in memory.
func NewRouterParams(cfg config.Config, qrcodeHandler *api.QRCodeHandler, authMiddleware *middleware.AuthMiddleware, rdb *redis.Client) (handler.RouterParams, error) {
	scanLimiter, err := middleware.NewScanRateLimiter(cfg.RateLimit.Scan, rdb)
	if err != nil {
		return handler.RouterParams{}, err
	}
	return handler.RouterParams{
		QRCodeHandler:   qrcodeHandler,
		AuthMiddleware:  authMiddleware,
		ScanRateLimiter: scanLimiter,
	}, nil
}
