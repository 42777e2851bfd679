package converter

import (
	"shopify-qrcode-app/internal/domain/qrcode"
	sqlc "shopify-qrcode-app/internal/infra/sqlc/generated"
	"shopify-qrcode-app/internal/pkg/pgconv"
)

func QRCodeToCreateParams(qr *qrcode.QRCode) sqlc.CreateQRCodeParams {
	return sqlc.CreateQRCodeParams{
		Shop:             qr.Shop(),
		Title:            qr.Title(),
		Destination:      qr.Destination().String(),
		ProductID:        qr.ProductID(),
		ProductHandle:    pgconv.StringPtrToPgtype(qr.ProductHandle()),
		ProductVariantID: pgconv.StringPtrToPgtype(qr.ProductVariantID()),
	}
}

// QRCodeFromRow does not validate the destination. A stored row with an
// unknown destination or a bad variant id fails later in DestinationURL.
func QRCodeFromRow(row sqlc.Qrcodes) *qrcode.QRCode {
	return qrcode.Reconstruct(
		row.ID,
		row.Shop,
		row.Title,
		qrcode.Destination(row.Destination),
		row.ProductID,
		pgconv.StringPtrFromPgtype(row.ProductHandle),
		pgconv.StringPtrFromPgtype(row.ProductVariantID),
		row.Scans,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func QRCodesFromRows(rows []sqlc.Qrcodes) []*qrcode.QRCode {
	out := make([]*qrcode.QRCode, len(rows))
	for i, row := range rows {
		out[i] = QRCodeFromRow(row)
	}
	return out
}
