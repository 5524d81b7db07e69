// Package auth issues and verifies the signed session credential.
// Tokens are self-contained HS256 JWTs carrying the account id as
// subject plus the display name; there is no server-side session
// table and no revocation list.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the credential lifetime applied when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

var (
	// ErrTokenInvalid covers malformed input, wrong algorithm, bad
	// signature, and structurally valid tokens missing a subject.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is returned for a well-signed token whose
	// expiry has passed.
	ErrTokenExpired = errors.New("token expired")
)

// Identity is the trusted, decoded form of a verified credential.
// It never carries the password or hash.
type Identity struct {
	UserID string
	Name   string
}

type sessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session credentials with a process-wide
// secret. The secret is immutable after construction.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a Codec. A zero ttl falls back to DefaultTTL; a
// negative ttl is kept as-is so tests can mint already-expired tokens.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL reports the configured credential lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue produces a signed credential for the given account. Expiry is
// always issuance time plus the fixed TTL.
func (c *Codec) Issue(userID, name string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks the signature and expiry of a credential and returns
// the decoded Identity. Malformed input is reported as ErrTokenInvalid,
// never as a panic.
func (c *Codec) Verify(token string) (Identity, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" {
		return Identity{}, ErrTokenInvalid
	}

	return Identity{UserID: claims.Subject, Name: claims.Name}, nil
}
