package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Identity is the public part of a user carried in tokens and stored in
// the request context by the auth middleware.
type Identity struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Claims is the JWT claim set issued for a user.
type Claims struct {
	Identity
	TokenType TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// Token is a signed JWT together with its parsed claims.
type Token struct {
	Claims Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// ExpiresAt returns the "exp" claim or the zero time when it is absent.
func (t Token) ExpiresAt() time.Time {
	if t.Claims.ExpiresAt == nil {
		return time.Time{}
	}
	return t.Claims.ExpiresAt.Time
}

// Session is returned by login and refresh: the user identity plus a fresh
// token pair.
type Session struct {
	Identity
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
