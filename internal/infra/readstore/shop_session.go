package readstore

import (
	"context"

	"shopify-qrcode-app/internal/infra"
	sqlc "shopify-qrcode-app/internal/infra/sqlc/generated"
	"shopify-qrcode-app/internal/pkg/pgconv"
)

type ShopSessionReadQueries interface {
	GetOfflineAccessToken(ctx context.Context, db sqlc.DBTX, shop string) (string, error)
}

type ShopSessionReadStore struct {
	queries ShopSessionReadQueries
	db      sqlc.DBTX
}

func NewShopSessionReadStore(queries ShopSessionReadQueries, db sqlc.DBTX) *ShopSessionReadStore {
	return &ShopSessionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ShopSessionReadStore) FindOfflineAccessToken(ctx context.Context, shop string) (string, error) {
	token, err := r.queries.GetOfflineAccessToken(ctx, r.db, shop)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("offline session not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to get offline access token", err)
	}
	return token, nil
}
