package commands

import (
	"context"
	"log/slog"

	"shopify-qrcode-app/internal/domain/qrcode"
	"shopify-qrcode-app/internal/infra"
	"shopify-qrcode-app/internal/pkg/errs"
	"shopify-qrcode-app/internal/usecase/shared"
)

type QRCodeCommands interface {
	// Scan records one scan and returns where to send the customer.
	Scan(ctx context.Context, id int64) (string, error)
	Create(ctx context.Context, shop string, req CreateQRCodeRequest) (*CreateQRCodeResult, error)
}

type qrcodeUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewQRCodeUseCase(uow shared.UnitOfWork) QRCodeCommands {
	return &qrcodeUseCaseImpl{uow: uow}
}

// Scan resolves the destination before counting, so a record that cannot be
// resolved is never counted. The increment is committed before returning.
func (uc *qrcodeUseCaseImpl) Scan(ctx context.Context, id int64) (string, error) {
	var destinationURL string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		code, err := tx.QRCodes().FindByID(ctx, id)
		if err != nil {
			return notFoundOr(err)
		}

		url, err := code.DestinationURL()
		if err != nil {
			slog.ErrorContext(ctx, "qr code has unusable destination",
				slog.Int64("qrcode_id", id),
				slog.String("shop", code.Shop()),
				slog.String("error", err.Error()))
			return errs.Wrapf(err, "qr code %d", id)
		}

		if err := tx.QRCodes().IncrementScans(ctx, id); err != nil {
			return notFoundOr(err)
		}
		destinationURL = url
		return nil
	})
	if err != nil {
		return "", err
	}
	return destinationURL, nil
}

func (uc *qrcodeUseCaseImpl) Create(ctx context.Context, shop string, req CreateQRCodeRequest) (*CreateQRCodeResult, error) {
	code, err := qrcode.New(shop, qrcode.FormInput{
		Title:            req.Title,
		ProductID:        req.ProductID,
		ProductHandle:    req.ProductHandle,
		ProductVariantID: req.ProductVariantID,
		Destination:      req.Destination,
	})
	if err != nil {
		return nil, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.QRCodes().Create(ctx, code)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateQRCodeResult{ID: createdID}, nil
}

func notFoundOr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrQRCodeNotFound)
	}
	return err
}
