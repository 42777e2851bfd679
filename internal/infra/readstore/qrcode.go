package readstore

import (
	"context"

	"shopify-qrcode-app/internal/domain/qrcode"
	"shopify-qrcode-app/internal/infra"
	"shopify-qrcode-app/internal/infra/repository/converter"
	sqlc "shopify-qrcode-app/internal/infra/sqlc/generated"
	"shopify-qrcode-app/internal/pkg/pgconv"
)

type QRCodeReadQueries interface {
	GetQRCodeByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Qrcodes, error)
	ListQRCodesByShop(ctx context.Context, db sqlc.DBTX, shop string) ([]sqlc.Qrcodes, error)
}

type QRCodeReadStore struct {
	queries QRCodeReadQueries
	db      sqlc.DBTX
}

func NewQRCodeReadStore(queries QRCodeReadQueries, db sqlc.DBTX) *QRCodeReadStore {
	return &QRCodeReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID looks the code up by primary key only. Callers that act on behalf
// of a shop must check ownership themselves.
func (r *QRCodeReadStore) FindByID(ctx context.Context, id int64) (*qrcode.QRCode, error) {
	row, err := r.queries.GetQRCodeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("qr code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get qr code by id", err)
	}
	return converter.QRCodeFromRow(row), nil
}

// FindAllByShop returns the shop's codes newest first. No rows is an empty
// slice, not an error.
func (r *QRCodeReadStore) FindAllByShop(ctx context.Context, shop string) ([]*qrcode.QRCode, error) {
	rows, err := r.queries.ListQRCodesByShop(ctx, r.db, shop)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list qr codes by shop", err, infra.KindDBFailure)
	}
	return converter.QRCodesFromRows(rows), nil
}
