package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
)

// errorResponse is how a service error is presented to the client.
type errorResponse struct {
	err    error
	status int
	text   string
}

// errorStatusMap is matched in order, so more specific sentinels go first.
var errorStatusMap = []errorResponse{
	{service.ErrSendEmailFailed, http.StatusInternalServerError, app.ErrSendEmailFailed},
	{service.ErrEmailNotSent, http.StatusBadRequest, app.ErrEmailNotSent},
	{service.ErrEmailAlreadyActivated, http.StatusBadRequest, app.ErrEmailAlreadyActivated},
	{service.ErrEmailAlreadyRegistered, http.StatusBadRequest, app.ErrEmailAlreadyRegistered},
	{service.ErrUserNotFoundOrExpired, http.StatusBadRequest, app.ErrUserNotFoundOrExpired},
	{service.ErrInvalidCredentials, http.StatusBadRequest, app.ErrInvalidEmailOrPassword},
	{service.ErrInvalidRefreshToken, http.StatusBadRequest, app.ErrInvalidRefreshToken},
	{service.ErrUserNotFound, http.StatusNotFound, app.ErrUserNotFound},
	{service.ErrNothingToUpdate, http.StatusBadRequest, app.ErrNothingToUpdate},
	{service.ErrEmailAlreadyUsed, http.StatusBadRequest, app.ErrEmailAlreadyUsed},
	{service.ErrContactNotSaved, http.StatusBadRequest, app.ErrContactNotSaved},
	{service.ErrStorageUnavailable, http.StatusServiceUnavailable, app.ErrDatabaseDown},
}

// responseFromError finds the client presentation of err. ok is false for
// errors that are not part of the API contract.
func responseFromError(err error) (errorResponse, bool) {
	for _, resp := range errorStatusMap {
		if errors.Is(err, resp.err) {
			return resp, true
		}
	}
	return errorResponse{}, false
}
