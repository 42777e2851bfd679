package shared

import "context"

// ProductSnapshot is what the Admin API reports about a code's product.
type ProductSnapshot struct {
	Title    string
	ImageURL *string
	ImageAlt *string
}

// ProductLookup returns nil, nil when the product no longer exists.
type ProductLookup interface {
	LookupProduct(ctx context.Context, shop, productID string) (*ProductSnapshot, error)
}

type ScanImageRenderer interface {
	RenderScanImage(id int64) (string, error)
}
