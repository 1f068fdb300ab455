package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
)

// SessionCookieName is the cookie holding the sealed session token.
const SessionCookieName = "sesion"

// sessionClaims is the payload sealed into the cookie. The session data
// itself lives in the server-side store; the cookie only carries the opaque
// token, encrypted so it cannot be forged or inspected.
type sessionClaims struct {
	Token  string    `json:"token"`
	Expiry time.Time `json:"expiry"`
}

// TokenSealer encrypts and decrypts session cookie values with PASETO v2.
type TokenSealer struct {
	key []byte
}

// NewTokenSealer returns a sealer for the given 32-byte symmetric key.
func NewTokenSealer(key []byte) (*TokenSealer, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("symmetric key must be 32 bytes long, got %d", len(key))
	}
	return &TokenSealer{key: key}, nil
}

// Seal wraps the opaque session token into an encrypted cookie value.
func (s *TokenSealer) Seal(token string, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		Token:  token,
		Expiry: time.Now().Add(ttl),
	}
	sealed, err := paseto.NewV2().Encrypt(s.key, claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to seal session token: %w", err)
	}
	return sealed, nil
}

// Open decrypts a cookie value and returns the opaque session token inside.
func (s *TokenSealer) Open(sealed string) (string, error) {
	var claims sessionClaims
	if err := paseto.NewV2().Decrypt(sealed, s.key, &claims, nil); err != nil {
		return "", fmt.Errorf("failed to open session token: %w", err)
	}
	if time.Now().After(claims.Expiry) {
		return "", errors.New("session token expired")
	}
	return claims.Token, nil
}
