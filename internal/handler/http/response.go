package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// operation names a handler for logs and holds its failure messages.
type operation struct {
	name string

	// failed is the envelope message of any failed request.
	failed string

	// invalid replaces failed when the input did not pass validation.
	invalid string
}

var (
	opRegister       = operation{name: "users.register", failed: app.MsgRegisterFailed}
	opActivate       = operation{name: "users.activate", failed: app.MsgActivateFailed}
	opLogin          = operation{name: "users.login", failed: app.MsgLoginFailed}
	opRefresh        = operation{name: "users.refresh", failed: app.MsgRefreshFailed}
	opListUsers      = operation{name: "users.list", failed: app.MsgListUsersFailed}
	opUpdateUser     = operation{name: "users.update", failed: app.MsgUpdateFailed}
	opDeleteUser     = operation{name: "users.delete", failed: app.MsgDeleteFailed}
	opForgotPassword = operation{name: "users.forgotPassword", failed: app.MsgForgotPasswordFailed}
	opCreateContact  = operation{
		name:    "contacts.create",
		failed:  app.MsgCreateContactFailed,
		invalid: app.MsgContactValidationFailed,
	}
)

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, response models.Response) {
	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func respond(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	writeEnvelope(w, r, status, models.Response{Message: message, Data: data})
}

func respondErrors(w http.ResponseWriter, r *http.Request, status int, message string, errs ...string) {
	writeEnvelope(w, r, status, models.Response{Errors: errs, Message: message})
}

// maxBodyBytes caps the size of a JSON request body.
const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON object from the request body. A missing body
// decodes to an empty object.
func decodeJSON(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	var input map[string]any
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if input == nil {
		input = map[string]any{}
	}
	return input, nil
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Debug().Err(err).Msg("bad request")

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondErrors(w, r, http.StatusRequestEntityTooLarge, app.MsgPayloadTooLarge, app.ErrBodyTooLarge)
		return
	}
	respondErrors(w, r, http.StatusBadRequest, app.MsgBadRequest, app.ErrInvalidJSON)
}

// fail writes the response of a failed operation. Validation errors and
// known service errors are reported to the client, anything else goes to
// the error middleware.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op operation, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.Error
	if errors.As(err, &validationErr) {
		message := op.failed
		if op.invalid != "" {
			message = op.invalid
		}
		log.Debug().Str("op", op.name).Strs("errors", validationErr.Messages).Msg("validation failed")
		writeEnvelope(w, r, http.StatusBadRequest, models.Response{
			Errors:  validationErr.Messages,
			Message: message,
			Data:    validationErr.Data,
		})
		return
	}

	if resp, ok := responseFromError(err); ok {
		event := log.Debug()
		if resp.status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.Err(err).Str("op", op.name).Int("status", resp.status).Msg("operation failed")
		respondErrors(w, r, resp.status, op.failed, resp.text)
		return
	}

	h.forward(w, r, op.name, op.failed, err)
}
