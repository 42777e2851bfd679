package queries

import (
	"context"
	"time"

	"shopify-qrcode-app/internal/domain/qrcode"
	"shopify-qrcode-app/internal/pkg/errs"
	"shopify-qrcode-app/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

// Supplementer joins a stored code with its scan image and the live product
// data from the Admin API.
type Supplementer struct {
	images        shared.ScanImageRenderer
	products      shared.ProductLookup
	lookupTimeout time.Duration
}

func NewSupplementer(images shared.ScanImageRenderer, products shared.ProductLookup, lookupTimeout time.Duration) *Supplementer {
	return &Supplementer{
		images:        images,
		products:      products,
		lookupTimeout: lookupTimeout,
	}
}

// Supplement fails as a whole if any part fails. A product that no longer
// exists is not a failure; it yields ProductDeleted.
func (s *Supplementer) Supplement(ctx context.Context, qr *qrcode.QRCode) (*QRCodeView, error) {
	destinationURL, err := qr.DestinationURL()
	if err != nil {
		return nil, errs.Wrapf(err, "qr code %d", qr.ID())
	}

	var (
		image   string
		product *shared.ProductSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rendered, err := s.images.RenderScanImage(qr.ID())
		if err != nil {
			return err
		}
		image = rendered
		return nil
	})

	g.Go(func() error {
		lookupCtx := gctx
		if s.lookupTimeout > 0 {
			var cancel context.CancelFunc
			lookupCtx, cancel = context.WithTimeout(gctx, s.lookupTimeout)
			defer cancel()
		}

		found, err := s.products.LookupProduct(lookupCtx, qr.Shop(), qr.ProductID())
		if err != nil {
			if errs.Is(err, errs.ErrShopNotInstalled) || errs.Is(err, errs.ErrDatabaseOperationFailed) {
				return err
			}
			return errs.Mark(err, errs.ErrRemoteLookupFailure)
		}
		product = found
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newQRCodeView(qr, destinationURL, image, product), nil
}

func newQRCodeView(qr *qrcode.QRCode, destinationURL, image string, product *shared.ProductSnapshot) *QRCodeView {
	view := &QRCodeView{
		ID:               qr.ID(),
		Shop:             qr.Shop(),
		Title:            qr.Title(),
		Destination:      qr.Destination().String(),
		ProductID:        qr.ProductID(),
		ProductHandle:    qr.ProductHandle(),
		ProductVariantID: qr.ProductVariantID(),
		Scans:            qr.Scans(),
		CreatedAt:        qr.CreatedAt(),
		ProductDeleted:   product == nil,
		DestinationURL:   destinationURL,
		Image:            image,
	}
	if product != nil {
		title := product.Title
		view.ProductTitle = &title
		view.ProductImage = product.ImageURL
		view.ProductAlt = product.ImageAlt
	}
	return view
}
