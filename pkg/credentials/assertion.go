package credentials

import (
	"crypto/rsa"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// assertionTTL is the maximum lifetime Google accepts for a JWT bearer
// assertion.
const assertionTTL = time.Hour

// assertionClaims are the claims of an OAuth 2.0 JWT bearer assertion
// (RFC 7523) as Google's token endpoint expects them.
type assertionClaims struct {
	jwt.RegisteredClaims

	// Scope is the space-delimited list of requested scopes
	Scope string `json:"scope,omitempty"`
}

// assertionSigner signs bearer assertions with a service account's RSA key.
type assertionSigner struct {
	kid string
	key *rsa.PrivateKey
}

// newAssertionSigner parses a PEM encoded RSA key in either PKCS1 or PKCS8
// form, which is what service account key files contain.
func newAssertionSigner(kid string, pemKey []byte) (*assertionSigner, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemKey)
	if err != nil {
		return nil, fmt.Errorf("credentials: parse service account private key: %w", err)
	}

	return &assertionSigner{kid: kid, key: key}, nil
}

// sign builds and signs an assertion for email, addressed to audience (the
// token endpoint).
func (s *assertionSigner) sign(email, audience string, scopes []string, now time.Time) (string, error) {
	claims := assertionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    email,
			Subject:   email,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(assertionTTL)),
		},
		Scope: strings.Join(scopes, " "),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if s.kid != "" {
		t.Header["kid"] = s.kid
	}
	return t.SignedString(s.key)
}
