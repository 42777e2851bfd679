//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"shopify-qrcode-app/internal/handler/middleware"
	"shopify-qrcode-app/internal/pkg/sessiontoken"
	"shopify-qrcode-app/tests/common/httptest"
	usecasemock "shopify-qrcode-app/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
	auth := middleware.NewAuthMiddleware(validator)

	router := gin.New()
	router.GET("/api/whoami", auth.RequireSession(), func(c *gin.Context) {
		shop, _ := middleware.GetShop(c)
		c.JSON(http.StatusOK, gin.H{"shop": shop})
	})
	return router, validator
}

func TestRequireSession(t *testing.T) {
	t.Run("bearer token", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("good-token").Return("s.myshopify.com", nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/whoami", nil, "good-token")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "s.myshopify.com", body["shop"])
	})

	t.Run("id_token query parameter", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("query-token").Return("s.myshopify.com", nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/whoami?id_token=query-token", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/whoami", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Session token required")
		assert.Empty(t, rec.Header().Get("X-Shopify-Retry-Invalid-Session-Request"))
	})

	t.Run("non-bearer authorization header", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/api/whoami", nil,
			map[string]string{"Authorization": "Basic dXNlcjpwYXNz"})

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Session token required")
	})

	t.Run("expired token asks App Bridge to retry", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("stale-token").Return("", sessiontoken.ErrExpiredToken)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/whoami", nil, "stale-token")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired session token")
		httptest.AssertHeaders(t, rec, map[string]string{"X-Shopify-Retry-Invalid-Session-Request": "1"})
	})
}
