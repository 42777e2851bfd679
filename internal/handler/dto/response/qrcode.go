package response

import (
	"time"

	"shopify-qrcode-app/internal/usecase/commands"
	"shopify-qrcode-app/internal/usecase/queries"
)

type QRCodeResponse struct {
	ID               int64     `json:"id"`
	Shop             string    `json:"shop"`
	Title            string    `json:"title"`
	Destination      string    `json:"destination"`
	ProductID        string    `json:"productId"`
	ProductHandle    *string   `json:"productHandle"`
	ProductVariantID *string   `json:"productVariantId"`
	Scans            int32     `json:"scans"`
	CreatedAt        time.Time `json:"createdAt"`
	ProductDeleted   bool      `json:"productDeleted"`
	ProductTitle     *string   `json:"productTitle"`
	ProductImage     *string   `json:"productImage"`
	ProductAlt       *string   `json:"productAlt"`
	DestinationURL   string    `json:"destinationUrl"`
	Image            string    `json:"image"`
}

func FromQRCodeView(v *queries.QRCodeView) *QRCodeResponse {
	return &QRCodeResponse{
		ID:               v.ID,
		Shop:             v.Shop,
		Title:            v.Title,
		Destination:      v.Destination,
		ProductID:        v.ProductID,
		ProductHandle:    v.ProductHandle,
		ProductVariantID: v.ProductVariantID,
		Scans:            v.Scans,
		CreatedAt:        v.CreatedAt,
		ProductDeleted:   v.ProductDeleted,
		ProductTitle:     v.ProductTitle,
		ProductImage:     v.ProductImage,
		ProductAlt:       v.ProductAlt,
		DestinationURL:   v.DestinationURL,
		Image:            v.Image,
	}
}

// FromQRCodeViews never returns nil so an empty list encodes as [].
func FromQRCodeViews(views []*queries.QRCodeView) []*QRCodeResponse {
	out := make([]*QRCodeResponse, len(views))
	for i, v := range views {
		out[i] = FromQRCodeView(v)
	}
	return out
}

type QRCodeImageResponse struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

func FromQRCodeImageView(v *queries.QRCodeImageView) *QRCodeImageResponse {
	return &QRCodeImageResponse{
		Title: v.Title,
		Image: v.Image,
	}
}

type CreateQRCodeResponse struct {
	ID int64 `json:"id"`
}

func FromCreateQRCodeResult(r *commands.CreateQRCodeResult) *CreateQRCodeResponse {
	return &CreateQRCodeResponse{ID: r.ID}
}
