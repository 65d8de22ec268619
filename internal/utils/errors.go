package utils

import "errors"

var (
	ErrInvalidTokenParams         = errors.New("invalid params for generating JWT Token")
	ErrInvalidToken               = errors.New("invalid token")
	ErrTokenClaims                = errors.New("token claims are unusable")
	ErrUnexpectedTokenType        = errors.New("unexpected token type")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
