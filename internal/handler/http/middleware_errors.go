package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// forward hands an unexpected failure of op to the error handler.
func (h *Handler) forward(w http.ResponseWriter, r *http.Request, op, detail string, err error) {
	h.handleError(w, r, &OperationError{Op: op, Detail: detail, Err: err})
}

// handleError logs err with its whole chain and answers 500. Only the
// Detail of an *OperationError is shown to the client.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	detail := app.ErrUnknown
	event := log.Error().Err(err)

	var opErr *OperationError
	if errors.As(err, &opErr) {
		detail = opErr.Detail
		event = event.Str("op", opErr.Op)
	}
	event.Msg("request failed")

	writeEnvelope(w, r, http.StatusInternalServerError, models.Response{
		Errors:  []string{detail},
		Message: app.MsgInternalServerError,
	})
}

// withRecovery turns a panic in a downstream handler into a 500 response.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Debug().Bytes("stack", debug.Stack()).Msg("stack of recovered panic")
			h.handleError(w, r, fmt.Errorf("%w: %v", errPanic, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
