//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"shopify-qrcode-app/internal/pkg/sessiontoken"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// SessionClaims builds the claims an embedded admin page would send for shop.
func SessionClaims(apiKey, shop string, issuedAt time.Time) sessiontoken.Claims {
	return sessiontoken.Claims{
		Dest: "https://" + shop,
		SID:  uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://" + shop + "/admin",
			Subject:   "1",
			Audience:  jwt.ClaimStrings{apiKey},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Minute)),
			ID:        uuid.NewString(),
		},
	}
}

func SessionToken(t *testing.T, apiKey, apiSecret, shop string, issuedAt time.Time) string {
	t.Helper()
	claims := SessionClaims(apiKey, shop, issuedAt)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(apiSecret))
	require.NoError(t, err)
	return token
}
