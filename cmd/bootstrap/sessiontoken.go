package bootstrap

import (
	"shopify-qrcode-app/internal/pkg/clock"
	"shopify-qrcode-app/internal/pkg/config"
	"shopify-qrcode-app/internal/pkg/sessiontoken"

	"go.uber.org/fx"
)

var SessionTokenModule = fx.Module("sessiontoken",
	fx.Provide(
		NewSessionTokenVerifier,
	),
)

func NewSessionTokenVerifier(cfg config.Config, clk clock.Clock) *sessiontoken.Verifier {
	return sessiontoken.NewVerifier(cfg.Shopify.APIKey, cfg.Shopify.APISecret, clk)
}
