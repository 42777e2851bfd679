package bootstrap

import (
	"net/http"

	"shopify-qrcode-app/internal/infra/qrimage"
	"shopify-qrcode-app/internal/infra/shopify"
	"shopify-qrcode-app/internal/pkg/config"
	"shopify-qrcode-app/internal/usecase/shared"

	"go.uber.org/fx"
)

var ShopifyModule = fx.Module("shopify",
	fx.Provide(
		fx.Annotate(
			NewAdminClient,
			fx.As(new(shared.ProductLookup)),
		),
		fx.Annotate(
			NewScanImageRenderer,
			fx.As(new(shared.ScanImageRenderer)),
		),
	),
)

func NewAdminClient(cfg config.Config, tokens shopify.AccessTokenSource) *shopify.AdminClient {
	return shopify.NewAdminClient(tokens, cfg.Shopify.APIVersion,
		shopify.WithHTTPClient(&http.Client{Timeout: cfg.Shopify.LookupTimeout}),
	)
}

func NewScanImageRenderer(cfg config.Config) (*qrimage.Renderer, error) {
	return qrimage.NewRenderer(cfg.App.URL, cfg.QR.ImageSize, cfg.QR.RecoveryLevel)
}
