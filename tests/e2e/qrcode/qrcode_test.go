//go:build e2e

package qrcode_test

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	resdto "shopify-qrcode-app/internal/handler/dto/response"
	"shopify-qrcode-app/tests/common/authtest"
	"shopify-qrcode-app/tests/common/builder"
	"shopify-qrcode-app/tests/common/dbtest"
	"shopify-qrcode-app/tests/common/httptest"
	"shopify-qrcode-app/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	shopA  = "alpha.myshopify.com"
	shopB  = "beta.myshopify.com"
	tokenA = "shpat_alpha"
	tokenB = "shpat_beta"

	mugGID     = "gid://shopify/Product/1"
	posterGID  = "gid://shopify/Product/2"
	deletedGID = "gid://shopify/Product/404"

	adminQRCodesURL = "/api/qrcodes"
)

type QRCodeSuite struct {
	e2e.SharedSuite
}

func TestQRCodeSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(QRCodeSuite))
}

func (s *QRCodeSuite) sessionToken(shop string) string {
	return authtest.SessionToken(s.T(), s.Config.Shopify.APIKey, s.Config.Shopify.APISecret, shop, time.Now())
}

func (s *QRCodeSuite) installShops() {
	t := s.T()
	dbtest.CreateOfflineSession(t, s.DB, shopA, tokenA)
	dbtest.CreateOfflineSession(t, s.DB, shopB, tokenB)
	s.AdminAPI.ExpectToken(shopA, tokenA)
	s.AdminAPI.ExpectToken(shopB, tokenB)
	s.AdminAPI.AddProduct(mugGID, e2e.FakeProduct{Title: "Ceramic Mug", ImageURL: "https://cdn.example.test/mug.png", AltText: "A white mug"})
	s.AdminAPI.AddProduct(posterGID, e2e.FakeProduct{Title: "Poster"})
}

// =============================================================================
// Scan: count and redirect
// =============================================================================

func (s *QRCodeSuite) TestScan() {
	s.Run("each scan is counted and redirects to the product page", func() {
		t := s.T()
		id := dbtest.CreateTestQRCode(t, s.DB, builder.NewQRCodeBuilder().WithShop(shopA).WithProductHandle("mug"))
		url := fmt.Sprintf("/qrcodes/%d/scan", id)

		for range 3 {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
			httptest.AssertRedirect(t, w, "https://"+shopA+"/products/mug")
		}

		require.Equal(t, int32(3), dbtest.GetScans(t, s.DB, id))
	})

	s.Run("cart destination redirects to a one-item cart", func() {
		t := s.T()
		id := dbtest.CreateTestQRCode(t, s.DB, builder.NewQRCodeBuilder().WithShop(shopA).AsCart().
			WithProductHandle("").WithProductVariantID("gid://shopify/ProductVariant/987"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/qrcodes/%d/scan", id), nil, "")

		httptest.AssertRedirect(t, w, "https://"+shopA+"/cart/987:1")
		require.Equal(t, int32(1), dbtest.GetScans(t, s.DB, id))
	})

	s.Run("concurrent scans are all counted", func() {
		t := s.T()
		id := dbtest.CreateTestQRCode(t, s.DB, builder.NewQRCodeBuilder().WithShop(shopA))
		url := fmt.Sprintf("/qrcodes/%d/scan", id)

		const n = 40
		var wg sync.WaitGroup
		codes := make([]int, n)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		for i, code := range codes {
			require.Equal(t, http.StatusFound, code, "scan %d", i)
		}
		require.Equal(t, int32(n), dbtest.GetScans(t, s.DB, id))
	})

	s.Run("unresolvable record is not counted", func() {
		t := s.T()
		id := dbtest.CreateTestQRCode(t, s.DB, builder.NewQRCodeBuilder().WithShop(shopA).AsCart().
			WithProductHandle("").WithProductVariantID("not-a-gid"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/qrcodes/%d/scan", id), nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "")
		require.Equal(t, int32(0), dbtest.GetScans(t, s.DB, id))
	})

	s.Run("unknown id", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/qrcodes/999999/scan", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "QR code not found")
	})

	s.Run("non-numeric id", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/qrcodes/abc/scan", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid id")
	})
}

// =============================================================================
// Public detail page
// =============================================================================

func (s *QRCodeSuite) TestDetail() {
	s.Run("title and scan image, no product lookup", func() {
		t := s.T()
		// no offline session: the public page must not need one
		id := dbtest.CreateTestQRCode(t, s.DB, builder.NewQRCodeBuilder().WithShop(shopA).WithTitle("Window sticker"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/qrcodes/%d", id), nil, "")

		var body resdto.QRCodeImageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "Window sticker", body.Title)
		require.True(t, strings.HasPrefix(body.Image, "data:image/png;base64,"), body.Image)
	})
}

// =============================================================================
// Admin list and detail
// =============================================================================

func (s *QRCodeSuite) TestList() {
	s.Run("newest first, own shop only, supplemented", func() {
		t := s.T()
		s.installShops()

		older := dbtest.CreateTestQRCode(t, s.DB, builder.NewQRCodeBuilder().WithShop(shopA).WithTitle("Older").WithScans(2))
		_ = dbtest.CreateTestQRCode(t, s.DB, builder.NewQRCodeBuilder().WithShop(shopB).WithTitle("Other shop"))
		newer := dbtest.CreateTestQRCode(t, s.DB, builder.NewQRCodeBuilder().WithShop(shopA).WithTitle("Newer").
			WithProductID(deletedGID).WithProductHandle("gone"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminQRCodesURL, nil, s.sessionToken(shopA))

		var body []resdto.QRCodeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Len(t, body, 2)

		title, image, alt := "Ceramic Mug", "https://cdn.example.test/mug.png", "A white mug"
		handleMug, handleGone := "mug", "gone"
		variant := "gid://shopify/ProductVariant/987"
		want := []resdto.QRCodeResponse{
			{
				ID: newer, Shop: shopA, Title: "Newer", Destination: "product",
				ProductID: deletedGID, ProductHandle: &handleGone, ProductVariantID: &variant,
				ProductDeleted: true,
				DestinationURL: "https://" + shopA + "/products/gone",
			},
			{
				ID: older, Shop: shopA, Title: "Older", Destination: "product",
				ProductID: mugGID, ProductHandle: &handleMug, ProductVariantID: &variant,
				Scans:        2,
				ProductTitle: &title, ProductImage: &image, ProductAlt: &alt,
				DestinationURL: "https://" + shopA + "/products/mug",
			},
		}
		opts := cmpopts.IgnoreFields(resdto.QRCodeResponse{}, "CreatedAt", "Image")
		if diff := cmp.Diff(want, body, opts); diff != "" {
			t.Errorf("list mismatch (-want +got):\n%s", diff)
		}
		for _, qr := range body {
			require.True(t, strings.HasPrefix(qr.Image, "data:image/png;base64,"))
		}
	})

	s.Run("shop without codes gets []", func() {
		t := s.T()
		s.installShops()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminQRCodesURL, nil, s.sessionToken(shopB))

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[]`, w.Body.String())
	})

	s.Run("Admin API outage is a 502", func() {
		t := s.T()
		s.installShops()
		s.AdminAPI.SetFailing(true)
		dbtest.CreateTestQRCode(t, s.DB, builder.NewQRCodeBuilder().WithShop(shopA))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminQRCodesURL, nil, s.sessionToken(shopA))

		httptest.AssertErrorResponse(t, w, http.StatusBadGateway, "Product lookup failed")
	})

	s.Run("uninstalled shop is a 401", func() {
		t := s.T()
		dbtest.CreateTestQRCode(t, s.DB, builder.NewQRCodeBuilder().WithShop(shopA))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminQRCodesURL, nil, s.sessionToken(shopA))

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("missing session token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminQRCodesURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Session token required")
	})

	s.Run("token signed with another secret", func() {
		t := s.T()
		token := authtest.SessionToken(t, s.Config.Shopify.APIKey, "not-the-secret", shopA, time.Now())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminQRCodesURL, nil, token)

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired session token")
		httptest.AssertHeaders(t, w, map[string]string{"X-Shopify-Retry-Invalid-Session-Request": "1"})
	})
}

func (s *QRCodeSuite) TestGet() {
	s.Run("own code", func() {
		t := s.T()
		s.installShops()
		id := dbtest.CreateTestQRCode(t, s.DB, builder.NewQRCodeBuilder().WithShop(shopA).WithProductID(posterGID))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%d", adminQRCodesURL, id), nil, s.sessionToken(shopA))

		var body resdto.QRCodeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, id, body.ID)
		require.NotNil(t, body.ProductTitle)
		require.Equal(t, "Poster", *body.ProductTitle)
		require.Nil(t, body.ProductImage)
		require.False(t, body.ProductDeleted)
	})

	s.Run("another shop's code is not found", func() {
		t := s.T()
		s.installShops()
		id := dbtest.CreateTestQRCode(t, s.DB, builder.NewQRCodeBuilder().WithShop(shopB))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%d", adminQRCodesURL, id), nil, s.sessionToken(shopA))

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "QR code not found")
	})
}

// =============================================================================
// Create
// =============================================================================

func (s *QRCodeSuite) TestCreate() {
	s.Run("created code is listed for its shop and scannable", func() {
		t := s.T()
		s.installShops()
		reqBody := builder.NewQRCodeBuilder().WithProductID(mugGID).AsCart().BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminQRCodesURL, reqBody, s.sessionToken(shopA))

		var created resdto.CreateQRCodeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Positive(t, created.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%d", adminQRCodesURL, created.ID), nil, s.sessionToken(shopA))
		var got resdto.QRCodeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, shopA, got.Shop)
		require.Equal(t, "cart", got.Destination)
		require.Nil(t, got.ProductHandle)
		require.Equal(t, int32(0), got.Scans)
		require.Equal(t, "https://"+shopA+"/cart/987:1", got.DestinationURL)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/qrcodes/%d/scan", created.ID), nil, "")
		httptest.AssertRedirect(t, w, "https://"+shopA+"/cart/987:1")
	})

	s.Run("invalid form returns field errors", func() {
		t := s.T()
		reqBody := map[string]any{"productId": mugGID, "destination": "cart", "productVariantId": "987"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminQRCodesURL, reqBody, s.sessionToken(shopA))

		body := httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Validation failed")
		require.Equal(t, map[string]string{
			"title":            "Title is required",
			"productVariantId": "Product variant is required for cart destination",
		}, body.Detail.Errors)
	})
}
