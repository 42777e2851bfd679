package qrcode

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

type QRCode struct {
	id               int64
	shop             string
	title            string
	destination      Destination
	productID        string
	productHandle    *string
	productVariantID *string
	scans            int32
	createdAt        time.Time
}

// New builds an unsaved code from form input. The id and createdAt are
// assigned by the store.
func New(shop string, in FormInput) (*QRCode, error) {
	if verr := ValidateForm(in); verr != nil {
		return nil, verr
	}

	qr := &QRCode{
		shop:        shop,
		title:       strings.TrimSpace(in.Title),
		destination: Destination(in.Destination),
		productID:   in.ProductID,
	}
	switch qr.destination {
	case DestinationProduct:
		handle := strings.TrimSpace(in.ProductHandle)
		qr.productHandle = &handle
	case DestinationCart:
		variant := in.ProductVariantID
		qr.productVariantID = &variant
	}
	return qr, nil
}

// Reconstruct restores a stored code without validation; integrity problems
// surface when the destination is resolved.
func Reconstruct(id int64, shop, title string, destination Destination, productID string, productHandle, productVariantID *string, scans int32, createdAt time.Time) *QRCode {
	return &QRCode{
		id:               id,
		shop:             shop,
		title:            title,
		destination:      destination,
		productID:        productID,
		productHandle:    productHandle,
		productVariantID: productVariantID,
		scans:            scans,
		createdAt:        createdAt,
	}
}

func (q *QRCode) ID() int64                { return q.id }
func (q *QRCode) Shop() string             { return q.shop }
func (q *QRCode) Title() string            { return q.title }
func (q *QRCode) Destination() Destination { return q.destination }
func (q *QRCode) ProductID() string        { return q.productID }
func (q *QRCode) ProductHandle() *string   { return q.productHandle }
func (q *QRCode) ProductVariantID() *string {
	return q.productVariantID
}
func (q *QRCode) Scans() int32         { return q.scans }
func (q *QRCode) CreatedAt() time.Time { return q.createdAt }

// BelongsTo reports whether the code is owned by shop.
func (q *QRCode) BelongsTo(shop string) bool {
	return q.shop == shop
}

// DestinationURL is where a scan of this code sends the customer.
func (q *QRCode) DestinationURL() (string, error) {
	switch q.destination {
	case DestinationProduct:
		if q.productHandle == nil || *q.productHandle == "" {
			return "", ErrMissingProductHandle
		}
		return "https://" + q.shop + "/products/" + *q.productHandle, nil
	case DestinationCart:
		if q.productVariantID == nil {
			return "", ErrMalformedVariantID
		}
		variant, err := VariantNumericID(*q.productVariantID)
		if err != nil {
			return "", err
		}
		return "https://" + q.shop + "/cart/" + variant + ":1", nil
	default:
		return "", ErrUnknownDestination
	}
}

func ScanPath(id int64) string {
	return "/qrcodes/" + strconv.FormatInt(id, 10) + "/scan"
}

// ScanURL resolves the scan path of id against the app's public origin.
func ScanURL(appURL string, id int64) (string, error) {
	base, err := url.Parse(appURL)
	if err != nil || !base.IsAbs() || base.Host == "" {
		return "", ErrInvalidAppURL
	}
	return base.ResolveReference(&url.URL{Path: ScanPath(id)}).String(), nil
}
