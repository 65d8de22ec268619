// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings written into the response
// envelope by the HTTP handlers and middleware.
//
// Msg* constants go into the envelope "message" field, Err* constants into
// its "errors" list. Keeping them in one place keeps the wording of the API
// consistent.
package app

// Envelope messages of successful operations.
const (
	MsgUserCreated           = "User created, please check your email"
	MsgUserActivated         = "User activated successfully"
	MsgLoginSuccess          = "Login successfully"
	MsgRefreshSuccess        = "Refresh successfully"
	MsgUsersRetrieved        = "Users retrieved"
	MsgUserUpdated           = "User updated successfully"
	MsgUserDeleted           = "User deleted successfully"
	MsgForgotPasswordSuccess = "Forgot Password success, please check your email"
	MsgContactCreated        = "Contact created successfully"
	MsgServiceHealthy        = "Service is healthy"
)

// Envelope messages of failed operations.
const (
	MsgRegisterFailed       = "Register failed"
	MsgActivateFailed       = "Activate User failed"
	MsgLoginFailed          = "Login failed"
	MsgRefreshFailed        = "Refresh failed"
	MsgUpdateFailed         = "Update failed"
	MsgListUsersFailed      = "List Users failed"
	MsgDeleteFailed         = "Delete failed"
	MsgForgotPasswordFailed = "Forgot Password failed"
	MsgCreateContactFailed  = "Create Contact failed"

	// MsgContactValidationFailed is used when the contact or any of its
	// addresses did not pass validation.
	MsgContactValidationFailed = "Create Contact failed due to validation errors"

	MsgAuthenticationFailed = "Authentication Failed"
	MsgInternalServerError  = "Internal Server Error"
	MsgInvalidRoute         = "Invalid Route"
	MsgBadRequest           = "Bad Request"
	MsgPayloadTooLarge      = "Payload Too Large"
	MsgServiceUnavailable   = "Service Unavailable"
)

// Entries of the envelope "errors" list.
const (
	ErrSendEmailFailed        = "Send email failed"
	ErrEmailAlreadyActivated  = "Email already activated"
	ErrEmailAlreadyRegistered = "Email already registered, please check your email"
	ErrUserNotFoundOrExpired  = "User not found or expired"
	ErrInvalidEmailOrPassword = "Invalid email or password"
	ErrRefreshTokenNotFound   = "Refresh token not found"
	ErrInvalidRefreshToken    = "Invalid refresh token"
	ErrUserNotFound           = "User not found"
	ErrNothingToUpdate        = "Nothing to update"
	ErrEmailAlreadyUsed       = "Email already used"
	ErrEmailNotSent           = "Email not sent"
	ErrContactNotSaved        = "Failed to create contact or address"

	ErrTokenNotFound           = "Token not found"
	ErrInvalidToken            = "Invalid token"
	ErrTokenVerificationFailed = "Token verification failed"

	ErrPageNotFound = "Page Not Found"
	ErrInvalidJSON  = "Invalid JSON was passed"
	ErrBodyTooLarge = "Request body is too large"
	ErrUnknown      = "Unknown error"
	ErrDatabaseDown = "Database is not reachable"
)
