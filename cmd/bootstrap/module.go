package bootstrap

import (
	"shopify-qrcode-app/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	SessionTokenModule,
	ShopifyModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
