package qrcode

import "shopify-qrcode-app/internal/pkg/errs"

var (
	// ErrMalformedVariantID means a stored cart code carries a variant id the
	// storefront cannot route. It is a data-integrity fault, never defaulted.
	ErrMalformedVariantID   = errs.New("unrecognized product variant ID")
	ErrMissingProductHandle = errs.New("product destination without product handle")
	ErrUnknownDestination   = errs.New("unknown destination")
	ErrInvalidAppURL        = errs.New("app URL must be an absolute URL")
)

type Destination string

const (
	DestinationProduct Destination = "product"
	DestinationCart    Destination = "cart"
)

func (d Destination) String() string {
	return string(d)
}

func (d Destination) IsValid() bool {
	switch d {
	case DestinationProduct, DestinationCart:
		return true
	default:
		return false
	}
}

func ParseDestination(s string) (Destination, error) {
	d := Destination(s)
	if !d.IsValid() {
		return "", ErrUnknownDestination
	}
	return d, nil
}
