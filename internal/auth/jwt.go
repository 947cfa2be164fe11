// Package auth issues and checks session credentials: short-lived JWT access
// tokens and opaque random tokens (refresh tokens, confirmation links) that
// are stored only as SHA-256 hashes.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Validation failures. Expired tokens are reported separately so that the
// page middleware can tell a stale session from a forged one.
var (
	ErrTokenExpired = errors.New("access token expired")
	ErrTokenInvalid = errors.New("access token invalid")
)

const (
	// accessKind marks session tokens so that a JWT minted for another
	// purpose with the same secret is not accepted as a session.
	accessKind = "access"
	clockSkew  = 30 * time.Second
)

type accessClaims struct {
	Kind string `json:"knd"`
	jwt.RegisteredClaims
}

// JWTManager issues and validates HS256 access tokens and generates the
// opaque refresh tokens that accompany them.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	parser    *jwt.Parser
}

// NewJWTManager creates a new JWT manager. The secret length is enforced by
// config validation.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

// AccessTTL is the lifetime of issued access tokens.
func (m *JWTManager) AccessTTL() time.Duration {
	return m.accessTTL
}

// GenerateAccessToken signs a session token for userID.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Kind: accessKind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken returns the user the token was issued for. Errors wrap
// ErrTokenExpired or ErrTokenInvalid.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, fmt.Errorf("%w: empty", ErrTokenInvalid)
	}

	var claims accessClaims
	_, err := m.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return uuid.Nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case err != nil:
		return uuid.Nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	case claims.Kind != accessKind:
		return uuid.Nil, fmt.Errorf("%w: kind %q", ErrTokenInvalid, claims.Kind)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: subject %q", ErrTokenInvalid, claims.Subject)
	}
	return userID, nil
}

// GenerateRefreshToken returns a new refresh token and the hash it is stored
// under.
func (m *JWTManager) GenerateRefreshToken() (raw string, hash string, err error) {
	return NewOpaqueToken()
}

// NewOpaqueToken returns 32 random bytes encoded with base64url together
// with the hash under which the token is stored.
func NewOpaqueToken() (raw string, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate random bytes: %w", err)
	}

	raw = base64.RawURLEncoding.EncodeToString(b)
	return raw, HashToken(raw), nil
}

// HashToken is the hex SHA-256 of a raw token.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
