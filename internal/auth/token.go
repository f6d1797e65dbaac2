// Package auth implements issuance and validation of the signed bearer
// tokens the API uses instead of sessions.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime embedded in issued tokens.
const DefaultTokenTTL = 7 * 24 * time.Hour

// ErrMalformedToken covers every decode failure: corrupt encoding, wrong
// signing method, bad signature, unparseable claims.
var ErrMalformedToken = errors.New("malformed token")

// TokenClaims is the decoded view of a token's payload.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec issues and validates HS256-signed tokens carrying a subject
// and expiration. The secret is fixed for the process lifetime and safe for
// concurrent use.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec returns a codec signing with secret. A non-positive ttl
// falls back to DefaultTokenTTL.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue produces a signed token with the given subject, issued now and
// expiring after the codec's TTL.
func (c *TokenCodec) Issue(subject string) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode parses and signature-checks the token, returning its claims.
// Expiration is NOT enforced here; callers that care use IsValid. Any
// parse or signature failure yields ErrMalformedToken.
func (c *TokenCodec) Decode(token string) (TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, c.keyFunc,
		jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return TokenClaims{}, ErrMalformedToken
	}

	out := TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// Subject returns the token's subject without enforcing expiration. Used by
// the request authenticator to know which principal to load.
func (c *TokenCodec) Subject(token string) (string, error) {
	claims, err := c.Decode(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// IsValid reports whether the token decodes cleanly, names expectedSubject,
// and expires strictly after the current time. Every failure mode is false,
// never an error.
func (c *TokenCodec) IsValid(token, expectedSubject string) bool {
	claims, err := c.Decode(token)
	if err != nil {
		return false
	}
	if claims.Subject != expectedSubject {
		return false
	}
	return claims.ExpiresAt.After(c.now())
}

func (c *TokenCodec) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return c.secret, nil
}
