package usecase

import (
	"shopify-qrcode-app/internal/pkg/sessiontoken"
)

// TokenValidator resolves the shop an admin session token was issued for.
type TokenValidator interface {
	ValidateToken(tokenString string) (string, error)
}

type tokenValidatorImpl struct {
	verifier *sessiontoken.Verifier
}

func NewTokenValidator(verifier *sessiontoken.Verifier) TokenValidator {
	return &tokenValidatorImpl{
		verifier: verifier,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, error) {
	claims, err := t.verifier.Verify(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Shop()
}
