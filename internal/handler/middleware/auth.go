package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"shopify-qrcode-app/internal/handler/httperr"
	"shopify-qrcode-app/internal/pkg/errs"
	"shopify-qrcode-app/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errMissingSessionToken = errs.New("missing session token")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxShopKey = "shop"

	// App Bridge fetches a fresh session token and retries once when it sees
	// this header on a 401.
	retryInvalidSessionHeader = "X-Shopify-Retry-Invalid-Session-Request"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireSession authenticates embedded admin requests by their session
// token, sent as a bearer token or as the id_token query parameter.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = c.Query("id_token")
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSessionToken, "Session token required", nil)
			return
		}

		shop, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Session token validation failed", "error", err.Error())
			c.Header(retryInvalidSessionHeader, "1")
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session token", nil)
			return
		}

		c.Set(ctxShopKey, shop)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetShop returns the authenticated shop domain from context
func GetShop(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxShopKey)
	if !exists {
		return "", false
	}
	shop, ok := v.(string)
	return shop, ok && shop != ""
}
