package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &OperationError{Op: "users.register", Detail: "Register failed", Err: cause}

	assert.Equal(t, "users.register: Register failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestForward_WritesDetailAndLogsCause(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	rr := httptest.NewRecorder()

	h.forward(rr, req, "contacts.create", "Create Contact failed", errors.New("pq: deadlock detected"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeEnvelope(t, rr)
	assert.Equal(t, []string{"Create Contact failed"}, resp.Errors)
	assert.Equal(t, "Internal Server Error", resp.Message)
	assert.NotContains(t, rr.Body.String(), "deadlock")

	assert.Contains(t, buf.String(), `"op":"contacts.create"`)
	assert.Contains(t, buf.String(), "deadlock detected")
}

func TestHandleError_UnknownError(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
	rr := httptest.NewRecorder()

	h.handleError(rr, req, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, []string{"Unknown error"}, decodeEnvelope(t, rr).Errors)
}

func TestWithRecovery(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	t.Run("panic becomes 500 envelope", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("nil map write")
		})
		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
		rr := httptest.NewRecorder()

		require.NotPanics(t, func() { h.withRecovery(next).ServeHTTP(rr, req) })

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		resp := decodeEnvelope(t, rr)
		assert.Equal(t, []string{"Unknown error"}, resp.Errors)
		assert.Equal(t, "Internal Server Error", resp.Message)
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})
		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.withRecovery(next).ServeHTTP(httptest.NewRecorder(), req)
		})
	})

	t.Run("no panic passes through", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})
		rr := httptest.NewRecorder()

		h.withRecovery(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusAccepted, rr.Code)
	})
}

func TestResponseFromError_UnknownError(t *testing.T) {
	_, ok := responseFromError(errors.New("anything"))
	assert.False(t, ok)
}
