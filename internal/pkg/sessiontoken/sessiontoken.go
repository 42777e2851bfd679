package sessiontoken

import (
	"errors"
	"net/url"
	"time"

	"shopify-qrcode-app/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
	ErrShopMismatch = errors.New("session token issuer does not match destination shop")
)

// Embedded admin apps receive a short-lived HS256 token signed with the app
// secret. dest is the shop origin, iss is the shop admin URL.
type Claims struct {
	Dest string `json:"dest"`
	SID  string `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

// Shop returns the shop domain the token was issued for.
func (c *Claims) Shop() (string, error) {
	dest, err := url.Parse(c.Dest)
	if err != nil || dest.Host == "" {
		return "", ErrInvalidToken
	}
	iss, err := url.Parse(c.Issuer)
	if err != nil || iss.Host != dest.Host {
		return "", ErrShopMismatch
	}
	return dest.Host, nil
}

type Verifier struct {
	apiKey string
	secret []byte
	clock  clock.Clock
	leeway time.Duration
}

func NewVerifier(apiKey, apiSecret string, clk clock.Clock) *Verifier {
	return &Verifier{
		apiKey: apiKey,
		secret: []byte(apiSecret),
		clock:  clk,
		leeway: 5 * time.Second,
	}
}

func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(v.apiKey),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
		jwt.WithTimeFunc(v.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
