package shared

import (
	"context"

	"shopify-qrcode-app/internal/domain/qrcode"
)

type UnitOfWork interface {
	// Within runs fn in one read-committed transaction. It is attempted once;
	// any error rolls back and is returned as is.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	QRCodes() QRCodeRepository
}

type QRCodeRepository interface {
	FindByID(ctx context.Context, id int64) (*qrcode.QRCode, error)
	IncrementScans(ctx context.Context, id int64) error
	Create(ctx context.Context, qr *qrcode.QRCode) (int64, error)
}
