package components

import (
	"shopify-qrcode-app/internal/infra/readstore"
	"shopify-qrcode-app/internal/infra/shopify"
	sqlc "shopify-qrcode-app/internal/infra/sqlc/generated"
	"shopify-qrcode-app/internal/infra/uow"
	"shopify-qrcode-app/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction inside the unit of work,
// so only readstores and the unit of work itself are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// QRCode
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.QRCodeReadQueries)),
		),
		fx.Annotate(
			readstore.NewQRCodeReadStore,
			fx.As(new(queries.QRCodeReadStore)),
		),
		// Shop session
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ShopSessionReadQueries)),
		),
		fx.Annotate(
			readstore.NewShopSessionReadStore,
			fx.As(new(shopify.AccessTokenSource)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
