package repository

import (
	"context"

	"shopify-qrcode-app/internal/domain/qrcode"
	"shopify-qrcode-app/internal/infra"
	"shopify-qrcode-app/internal/infra/repository/converter"
	sqlc "shopify-qrcode-app/internal/infra/sqlc/generated"
	"shopify-qrcode-app/internal/pkg/pgconv"
)

type QRCodeWriteQueries interface {
	GetQRCodeByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Qrcodes, error)
	IncrementQRCodeScans(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	CreateQRCode(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateQRCodeParams) (int64, error)
}

type QRCodeRepository struct {
	queries QRCodeWriteQueries
	db      sqlc.DBTX
}

func NewQRCodeRepository(queries QRCodeWriteQueries, db sqlc.DBTX) *QRCodeRepository {
	return &QRCodeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *QRCodeRepository) FindByID(ctx context.Context, id int64) (*qrcode.QRCode, error) {
	row, err := r.queries.GetQRCodeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("qr code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get qr code by id", err)
	}
	return converter.QRCodeFromRow(row), nil
}

// IncrementScans adds one scan in a single UPDATE so concurrent scans never
// lose an increment.
func (r *QRCodeRepository) IncrementScans(ctx context.Context, id int64) error {
	affected, err := r.queries.IncrementQRCodeScans(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment qr code scans", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("qr code not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *QRCodeRepository) Create(ctx context.Context, qr *qrcode.QRCode) (int64, error) {
	id, err := r.queries.CreateQRCode(ctx, r.db, converter.QRCodeToCreateParams(qr))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create qr code", err)
	}
	return id, nil
}
