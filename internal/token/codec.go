// Package token implements issuance and verification of the HS256 bearer
// tokens that gate every protected route. Verification is deterministic and
// side-effect free: the same token string always yields the same result, and
// verifying never extends a token's lifetime.
package token

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("token is malformed")
	ErrBadSignature = errors.New("token signature is invalid")
	ErrExpired      = errors.New("token is expired")
)

// bearerShape is the structural precondition for verification: three
// dot-separated base64url segments. Anything else is rejected as malformed
// before any cryptography runs.
var bearerShape = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`)

// Claims is the identity payload embedded in a token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Codec mints and verifies tokens with a process-wide secret. The secret is
// loaded once at startup and passed in here; rotating it invalidates every
// previously issued token.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl, now: time.Now}
}

// NewCodecWithClock is NewCodec with an injectable clock for expiry tests.
func NewCodecWithClock(secret []byte, ttl time.Duration, now func() time.Time) *Codec {
	return &Codec{secret: secret, ttl: ttl, now: now}
}

// Mint signs a token for subject with iat=now and exp=now+ttl.
func (c *Codec) Mint(subject string) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates tok. Failures map onto exactly one of
// ErrMalformed, ErrBadSignature, ErrExpired.
func (c *Codec) Verify(tok string) (Claims, error) {
	if !bearerShape.MatchString(tok) {
		return Claims{}, ErrMalformed
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		default:
			return Claims{}, ErrBadSignature
		}
	}
	if !parsed.Valid {
		return Claims{}, ErrBadSignature
	}

	out := Claims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
