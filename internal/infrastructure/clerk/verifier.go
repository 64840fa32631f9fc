package clerk

import (
	"crypto/rsa"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier checks a bearer token and returns the Clerk user id it was
// issued for.
type TokenVerifier interface {
	Verify(token string) (clerkID string, err error)
}

var _ TokenVerifier = (*Verifier)(nil)

// Verifier validates Clerk session tokens offline. Clerk signs them RS256
// with the instance key pair; the public half is configured as PEM.
type Verifier struct {
	publicKey *rsa.PublicKey
}

// NewVerifier parses the PEM-encoded instance public key.
func NewVerifier(pemKey string) (*Verifier, error) {
	if pemKey == "" {
		return nil, fmt.Errorf("clerk: CLERK_JWT_PUBLIC_KEY not configured")
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemKey))
	if err != nil {
		return nil, fmt.Errorf("clerk: parse public key: %w", err)
	}
	return &Verifier{publicKey: key}, nil
}

// Verify checks signature and expiry, then returns the token subject.
func (v *Verifier) Verify(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.publicKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("clerk: invalid session token: %w", err)
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("clerk: session token has no subject")
	}
	return sub, nil
}
