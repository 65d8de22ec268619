// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAuthorizationHeader is reported when a request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is reported when a request body is not a JSON object.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrNoIdentity is reported when a handler behind the auth middleware
	// finds no identity in the request context.
	ErrNoIdentity = errors.New("no identity in request context")

	errPanic = errors.New("panic recovered")
)

// OperationError is a failure that a handler could not map to a client
// error. Op names the operation ("users.register"), Detail is the text
// shown to the client and Err is the internal cause, which is only logged.
type OperationError struct {
	Op     string
	Detail string
	Err    error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Detail, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
