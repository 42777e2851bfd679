//go:build unit || e2e

package builder

import (
	"time"

	"shopify-qrcode-app/internal/domain/qrcode"
	reqdto "shopify-qrcode-app/internal/handler/dto/request"
	sqlc "shopify-qrcode-app/internal/infra/sqlc/generated"
	"shopify-qrcode-app/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type QRCodeBuilder struct {
	ID               int64
	Shop             string
	Title            string
	Destination      string
	ProductID        string
	ProductHandle    string
	ProductVariantID string
	Scans            int32
	CreatedAt        time.Time
}

func NewQRCodeBuilder() *QRCodeBuilder {
	return &QRCodeBuilder{
		ID:               1,
		Shop:             "s.myshopify.com",
		Title:            "Mug poster",
		Destination:      string(qrcode.DestinationProduct),
		ProductID:        "gid://shopify/Product/1",
		ProductHandle:    "mug",
		ProductVariantID: "gid://shopify/ProductVariant/987",
		Scans:            0,
		CreatedAt:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func (b *QRCodeBuilder) With(mutate func(*QRCodeBuilder)) *QRCodeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *QRCodeBuilder) BuildDomain() *qrcode.QRCode {
	return qrcode.Reconstruct(
		b.ID,
		b.Shop,
		b.Title,
		qrcode.Destination(b.Destination),
		b.ProductID,
		optional(b.ProductHandle),
		optional(b.ProductVariantID),
		b.Scans,
		b.CreatedAt,
	)
}

func (b *QRCodeBuilder) BuildFormInput() qrcode.FormInput {
	return qrcode.FormInput{
		Title:            b.Title,
		ProductID:        b.ProductID,
		ProductHandle:    b.ProductHandle,
		ProductVariantID: b.ProductVariantID,
		Destination:      b.Destination,
	}
}

func (b *QRCodeBuilder) BuildInfra() sqlc.Qrcodes {
	return sqlc.Qrcodes{
		ID:               b.ID,
		Shop:             b.Shop,
		Title:            b.Title,
		Destination:      b.Destination,
		ProductID:        b.ProductID,
		ProductHandle:    pgText(b.ProductHandle),
		ProductVariantID: pgText(b.ProductVariantID),
		Scans:            b.Scans,
		CreatedAt:        pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *QRCodeBuilder) BuildCreateRequestDTO() reqdto.CreateQRCodeRequest {
	return reqdto.CreateQRCodeRequest{
		Title:            b.Title,
		ProductID:        b.ProductID,
		ProductHandle:    b.ProductHandle,
		ProductVariantID: b.ProductVariantID,
		Destination:      b.Destination,
	}
}

// BuildView returns the supplemented view of a code whose product still exists.
func (b *QRCodeBuilder) BuildView() *queries.QRCodeView {
	productTitle := "Ceramic Mug"
	productImage := "https://cdn.example.test/mug.png"
	productAlt := "A white mug"
	return &queries.QRCodeView{
		ID:               b.ID,
		Shop:             b.Shop,
		Title:            b.Title,
		Destination:      b.Destination,
		ProductID:        b.ProductID,
		ProductHandle:    optional(b.ProductHandle),
		ProductVariantID: optional(b.ProductVariantID),
		Scans:            b.Scans,
		CreatedAt:        b.CreatedAt,
		ProductDeleted:   false,
		ProductTitle:     &productTitle,
		ProductImage:     &productImage,
		ProductAlt:       &productAlt,
		DestinationURL:   "https://" + b.Shop + "/products/" + b.ProductHandle,
		Image:            "data:image/png;base64,iVBORw0KGgo=",
	}
}

// Fluent builder methods
func (b *QRCodeBuilder) WithID(id int64) *QRCodeBuilder {
	b.ID = id
	return b
}

func (b *QRCodeBuilder) WithShop(shop string) *QRCodeBuilder {
	b.Shop = shop
	return b
}

func (b *QRCodeBuilder) WithTitle(title string) *QRCodeBuilder {
	b.Title = title
	return b
}

func (b *QRCodeBuilder) WithDestination(destination string) *QRCodeBuilder {
	b.Destination = destination
	return b
}

func (b *QRCodeBuilder) WithProductID(productID string) *QRCodeBuilder {
	b.ProductID = productID
	return b
}

func (b *QRCodeBuilder) WithProductHandle(handle string) *QRCodeBuilder {
	b.ProductHandle = handle
	return b
}

func (b *QRCodeBuilder) WithProductVariantID(variantID string) *QRCodeBuilder {
	b.ProductVariantID = variantID
	return b
}

func (b *QRCodeBuilder) WithScans(scans int32) *QRCodeBuilder {
	b.Scans = scans
	return b
}

func (b *QRCodeBuilder) AsCart() *QRCodeBuilder {
	b.Destination = string(qrcode.DestinationCart)
	return b
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func pgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
