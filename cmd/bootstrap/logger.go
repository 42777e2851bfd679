package bootstrap

import (
	"log/slog"

	"shopify-qrcode-app/internal/handler/middleware"
	"shopify-qrcode-app/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
