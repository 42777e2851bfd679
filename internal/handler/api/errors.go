package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"shopify-qrcode-app/internal/domain/qrcode"
	"shopify-qrcode-app/internal/handler/httperr"
	"shopify-qrcode-app/internal/handler/middleware"
	"shopify-qrcode-app/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesOnError = 12

var errInvalidID = errs.New("invalid qr code id")

// parseID accepts only positive decimal ids.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func abortWithUsecaseError(c *gin.Context, err error) {
	var verrs qrcode.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", gin.H{"errors": verrs})
	case errs.Is(err, errs.ErrQRCodeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "QR code not found", nil)
	case errs.Is(err, errs.ErrShopNotInstalled):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Shop has no active installation", nil)
	case errs.Is(err, errs.ErrRemoteLookupFailure):
		slog.Error("product lookup failed",
			"request_id", middleware.GetRequestID(c),
			"path", c.Request.URL.Path,
			"error", err.Error())
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Product lookup failed", nil)
	default:
		slog.Error("request failed",
			"request_id", middleware.GetRequestID(c),
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, stackLinesOnError))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
