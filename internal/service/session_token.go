package service

import (
	"errors"
	"fmt"
	"time"

	"duttmandir/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// The persisted session is the identity signed as an HS256 token. The
// signature doubles as a corruption check: anything that fails to parse
// and verify is treated as corrupt and discarded.
const (
	sessionIssuer       = "duttmandir"
	sessionTokenVersion = 1
)

// ErrCorruptSession marks persisted session data that failed to decode.
var ErrCorruptSession = errors.New("corrupt session data")

type sessionClaims struct {
	jwt.RegisteredClaims
	Version  int             `json:"v"`
	Identity models.Identity `json:"identity"`
}

// encodeSession serializes an identity (never a secret) for persistence.
func encodeSession(identity models.Identity, key []byte) (string, error) {
	// No ExpiresAt: the session lives until logout.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   sessionIssuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Version:  sessionTokenVersion,
		Identity: identity,
	})
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// decodeSession restores the identity from a persisted token. Every failure
// mode collapses into ErrCorruptSession: the caller discards and moves on.
func decodeSession(raw string, key []byte) (models.Identity, error) {
	token, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return models.Identity{}, ErrCorruptSession
	}
	if claims.Version != sessionTokenVersion {
		return models.Identity{}, fmt.Errorf("%w: unknown schema version %d", ErrCorruptSession, claims.Version)
	}
	if !claims.Identity.Role.Valid() {
		return models.Identity{}, fmt.Errorf("%w: invalid role %q", ErrCorruptSession, claims.Identity.Role)
	}
	return claims.Identity, nil
}
