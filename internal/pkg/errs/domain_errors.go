package errs

import "errors"

// Sentinel errors shared by the usecase layers. Lower layers attach these with
// Mark so handlers can match with errors.Is while keeping the original cause.
var (
	// QR code errors
	ErrQRCodeNotFound = errors.New("qr code not found")

	// Remote (Admin API) errors
	ErrRemoteLookupFailure = errors.New("remote product lookup failed")
	ErrShopNotInstalled    = errors.New("no offline session for shop")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
