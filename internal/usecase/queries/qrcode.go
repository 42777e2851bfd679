package queries

import (
	"context"
	"time"

	"shopify-qrcode-app/internal/domain/qrcode"
	"shopify-qrcode-app/internal/infra"
	"shopify-qrcode-app/internal/pkg/errs"
	"shopify-qrcode-app/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

// QRCodeView is a stored code plus its derived fields.
type QRCodeView struct {
	ID               int64
	Shop             string
	Title            string
	Destination      string
	ProductID        string
	ProductHandle    *string
	ProductVariantID *string
	Scans            int32
	CreatedAt        time.Time

	ProductDeleted bool
	ProductTitle   *string
	ProductImage   *string
	ProductAlt     *string
	DestinationURL string
	Image          string
}

// QRCodeImageView is what the public detail page shows.
type QRCodeImageView struct {
	Title string
	Image string
}

// MaxConcurrentSupplements bounds the Admin API calls a single list request
// keeps in flight.
const MaxConcurrentSupplements = 8

type QRCodeReadStore interface {
	FindByID(ctx context.Context, id int64) (*qrcode.QRCode, error)
	FindAllByShop(ctx context.Context, shop string) ([]*qrcode.QRCode, error)
}

type QRCodeSupplementer interface {
	Supplement(ctx context.Context, qr *qrcode.QRCode) (*QRCodeView, error)
}

type QRCodeQueries interface {
	ListByShop(ctx context.Context, shop string) ([]*QRCodeView, error)
	GetByID(ctx context.Context, shop string, id int64) (*QRCodeView, error)
	GetImage(ctx context.Context, id int64) (*QRCodeImageView, error)
}

type qrcodeQueriesImpl struct {
	store        QRCodeReadStore
	supplementer QRCodeSupplementer
	images       shared.ScanImageRenderer
}

func NewQRCodeQueries(store QRCodeReadStore, supplementer QRCodeSupplementer, images shared.ScanImageRenderer) QRCodeQueries {
	return &qrcodeQueriesImpl{
		store:        store,
		supplementer: supplementer,
		images:       images,
	}
}

// ListByShop supplements every code concurrently; the result keeps the
// store's newest-first order and is never nil.
func (q *qrcodeQueriesImpl) ListByShop(ctx context.Context, shop string) ([]*QRCodeView, error) {
	codes, err := q.store.FindAllByShop(ctx, shop)
	if err != nil {
		return nil, err
	}

	views := make([]*QRCodeView, len(codes))
	if len(codes) == 0 {
		return views, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentSupplements)
	for i, code := range codes {
		g.Go(func() error {
			view, err := q.supplementer.Supplement(gctx, code)
			if err != nil {
				return err
			}
			views[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// GetByID hides codes of other shops behind ErrQRCodeNotFound.
func (q *qrcodeQueriesImpl) GetByID(ctx context.Context, shop string, id int64) (*QRCodeView, error) {
	code, err := q.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !code.BelongsTo(shop) {
		return nil, errs.ErrQRCodeNotFound
	}
	return q.supplementer.Supplement(ctx, code)
}

func (q *qrcodeQueriesImpl) GetImage(ctx context.Context, id int64) (*QRCodeImageView, error) {
	code, err := q.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	image, err := q.images.RenderScanImage(code.ID())
	if err != nil {
		return nil, err
	}
	return &QRCodeImageView{Title: code.Title(), Image: image}, nil
}

func (q *qrcodeQueriesImpl) findByID(ctx context.Context, id int64) (*qrcode.QRCode, error) {
	code, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrQRCodeNotFound
		}
		return nil, err
	}
	return code, nil
}
