package service

import "errors"

// Registration and activation.
var (
	ErrEmailAlreadyActivated  = errors.New("email already activated")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrSendEmailFailed        = errors.New("send email failed")
	ErrUserNotFoundOrExpired  = errors.New("user not found or expired")
)

// Authentication and tokens.
var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrInvalidRefreshToken     = errors.New("invalid refresh token")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenVerificationFailed = errors.New("token verification failed")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)

// User administration.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrNothingToUpdate  = errors.New("nothing to update")
	ErrEmailAlreadyUsed = errors.New("email already used")
	ErrEmailNotSent     = errors.New("email not sent")
)

// Contacts.
var (
	ErrContactNotSaved = errors.New("failed to create contact or address")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStorageUnavailable    = errors.New("storage is unavailable")
)
