package qrimage

import (
	"encoding/base64"
	"fmt"
	"strings"

	"shopify-qrcode-app/internal/domain/qrcode"
	"shopify-qrcode-app/internal/pkg/errs"

	goqrcode "github.com/skip2/go-qrcode"
)

const dataURLPrefix = "data:image/png;base64,"

var ErrUnknownRecoveryLevel = errs.New("unknown QR recovery level")

// Renderer encodes a code's public scan URL as a PNG data URL.
type Renderer struct {
	appURL string
	size   int
	level  goqrcode.RecoveryLevel
}

func NewRenderer(appURL string, size int, recoveryLevel string) (*Renderer, error) {
	level, err := ParseRecoveryLevel(recoveryLevel)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid QR image size %d", size)
	}
	return &Renderer{
		appURL: appURL,
		size:   size,
		level:  level,
	}, nil
}

func ParseRecoveryLevel(s string) (goqrcode.RecoveryLevel, error) {
	switch strings.ToLower(s) {
	case "low":
		return goqrcode.Low, nil
	case "", "medium":
		return goqrcode.Medium, nil
	case "high":
		return goqrcode.High, nil
	case "highest":
		return goqrcode.Highest, nil
	default:
		return 0, errs.Wrapf(ErrUnknownRecoveryLevel, "%q", s)
	}
}

func (r *Renderer) RenderScanImage(id int64) (string, error) {
	scanURL, err := qrcode.ScanURL(r.appURL, id)
	if err != nil {
		return "", err
	}

	png, err := goqrcode.Encode(scanURL, r.level, r.size)
	if err != nil {
		return "", errs.Wrapf(err, "failed to encode qr image for %d", id)
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}
