//go:build unit

package qrimage_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"shopify-qrcode-app/internal/domain/qrcode"
	"shopify-qrcode-app/internal/infra/qrimage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderScanImage(t *testing.T) {
	renderer, err := qrimage.NewRenderer("https://app.example.com", 128, "medium")
	require.NoError(t, err)

	actual, err := renderer.RenderScanImage(7)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(actual, "data:image/png;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(actual, "data:image/png;base64,"))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestRenderer_RenderScanImage_IsStablePerID(t *testing.T) {
	renderer, err := qrimage.NewRenderer("https://app.example.com", 64, "low")
	require.NoError(t, err)

	first, err := renderer.RenderScanImage(3)
	require.NoError(t, err)
	second, err := renderer.RenderScanImage(3)
	require.NoError(t, err)
	other, err := renderer.RenderScanImage(4)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestRenderer_InvalidAppURL(t *testing.T) {
	renderer, err := qrimage.NewRenderer("not a url", 64, "medium")
	require.NoError(t, err)

	_, err = renderer.RenderScanImage(1)
	assert.ErrorIs(t, err, qrcode.ErrInvalidAppURL)
}

func TestNewRenderer_Validation(t *testing.T) {
	_, err := qrimage.NewRenderer("https://app.example.com", 64, "extreme")
	assert.ErrorIs(t, err, qrimage.ErrUnknownRecoveryLevel)

	_, err = qrimage.NewRenderer("https://app.example.com", 0, "medium")
	assert.Error(t, err)
}

func TestParseRecoveryLevel(t *testing.T) {
	for _, level := range []string{"low", "medium", "HIGH", "highest", ""} {
		_, err := qrimage.ParseRecoveryLevel(level)
		assert.NoError(t, err, level)
	}
}
