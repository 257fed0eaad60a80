package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken indicates no session token has been saved yet.
var ErrNoToken = errors.New("not logged in")

// Session describes what the client can read out of a saved token. The token
// is never verified client-side; the backend is the authority. Inspection only
// exists to show who is logged in and to pre-empt calls that would come back
// 401 anyway.
type Session struct {
	Username  string
	ExpiresAt time.Time
}

// Expired reports whether the session has lapsed at the given instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Inspect decodes a bearer token without verifying its signature.
func Inspect(token string) (Session, error) {
	if token == "" {
		return Session{}, ErrNoToken
	}

	var claims sessionClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return Session{}, fmt.Errorf("malformed session token: %w", err)
	}

	s := Session{Username: claims.Username}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}
