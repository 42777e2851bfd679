package components

import (
	"shopify-qrcode-app/internal/pkg/clock"
	"shopify-qrcode-app/internal/pkg/config"
	"shopify-qrcode-app/internal/usecase"
	"shopify-qrcode-app/internal/usecase/commands"
	"shopify-qrcode-app/internal/usecase/queries"
	"shopify-qrcode-app/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewQRCodeUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		fx.Annotate(
			NewSupplementer,
			fx.As(new(queries.QRCodeSupplementer)),
		),
		queries.NewQRCodeQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewSupplementer(cfg config.Config, images shared.ScanImageRenderer, products shared.ProductLookup) *queries.Supplementer {
	return queries.NewSupplementer(images, products, cfg.Shopify.LookupTimeout)
}
