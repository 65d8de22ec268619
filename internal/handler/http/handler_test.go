package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID      = "0190a8e4-3b7c-7d2e-9f01-23456789abcd"
	testAccessToken = "access-token"
)

var testIdentity = models.Identity{UserID: testUserID, Name: "Jane", Email: "jane@example.com"}

// testServices holds the mocks behind a Handler built by newTestHandler.
type testServices struct {
	users    *mock.MockUserService
	contacts *mock.MockContactService
	tokens   *mock.MockTokenService
	appInfo  *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := testServices{
		users:    mock.NewMockUserService(ctrl),
		contacts: mock.NewMockContactService(ctrl),
		tokens:   mock.NewMockTokenService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		UserService:    mocks.users,
		ContactService: mocks.contacts,
		TokenService:   mocks.tokens,
		AppInfoService: mocks.appInfo,
	}

	return NewHandler(services, config.Server{RequestTimeout: time.Second}, logger.Nop()), mocks
}

// expectAuthenticated makes the token service accept testAccessToken.
func (m testServices) expectAuthenticated() {
	m.tokens.EXPECT().
		ParseAccessToken(gomock.Any(), testAccessToken).
		Return(models.Token{Claims: models.Claims{Identity: testIdentity, TokenType: models.AccessToken}}, nil)
}

// serve sends a request through the full router.
func serve(t *testing.T, h *Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func withAccessToken() []string {
	return []string{"Authorization", "Bearer " + testAccessToken}
}

// decodeEnvelope parses the response body as the JSON envelope.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) models.Response {
	t.Helper()

	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp
}

// captureLogs makes h write its logs to the returned buffer.
func captureLogs(h *Handler) *bytes.Buffer {
	var buf bytes.Buffer
	h.logger = &logger.Logger{Logger: zerolog.New(&buf)}
	return &buf
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	cfg := config.Server{RequestTimeout: 5 * time.Second, AllowedOrigins: []string{"https://app.example.com"}}
	log := logger.Nop()

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
	assert.Equal(t, []string{"https://app.example.com"}, h.allowedOrigins)
	assert.Equal(t, log, h.logger)
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users"},
		{http.MethodPut, "/api/users/" + testUserID},
		{http.MethodDelete, "/api/users/" + testUserID},
		{http.MethodPost, "/api/contacts"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rr := serve(t, h, rt.method, rt.path, `{}`)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			resp := decodeEnvelope(t, rr)
			assert.Equal(t, []string{"Token not found"}, resp.Errors)
			assert.Equal(t, "Authentication Failed", resp.Message)
		})
	}
}

func TestInit_InvalidRoute(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/api/unknown"},
		{"path outside api prefix", http.MethodPost, "/users"},
		{"known path with unsupported method", http.MethodPatch, "/api/users/login"},
		{"parameterised path with unsupported method", http.MethodGet, "/api/users/" + testUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rr := serve(t, h, tt.method, tt.path, "")

			assert.Equal(t, http.StatusNotFound, rr.Code)
			resp := decodeEnvelope(t, rr)
			assert.Equal(t, []string{"Page Not Found"}, resp.Errors)
			assert.Equal(t, "Invalid Route", resp.Message)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	rr := serve(t, h, http.MethodGet, "/api/version", "", traceIDHeader, "trace-123")

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, config.Server{AllowedOrigins: []string{"https://app.example.com"}}, logger.Nop())

	rr := serve(t, h, http.MethodOptions, "/api/contacts", "",
		"Origin", "https://app.example.com",
		"Access-Control-Request-Method", http.MethodPost,
	)

	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
}
