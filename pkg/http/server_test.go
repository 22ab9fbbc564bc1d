package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hawk-session-service/pkg/auth"
	pkghttp "github.com/klwxsrx/hawk-session-service/pkg/http"
	"github.com/klwxsrx/hawk-session-service/pkg/observability"
)

type testHandler struct {
	method string
	path   string
	handle pkghttp.HandlerFunc
}

func (h testHandler) Method() string { return h.method }
func (h testHandler) Path() string   { return h.path }
func (h testHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	return h.handle(w, r)
}

type testPrincipal struct {
	id string
}

func (p testPrincipal) Type() auth.PrincipalType { return "test" }
func (p testPrincipal) ID() *string              { return &p.id }

type testToken string

func (t testToken) Type() auth.PrincipalType { return "test" }

type testProvider struct {
	err error
}

func (p testProvider) Authenticate(_ context.Context, token auth.Token) (auth.Authentication[testPrincipal], error) {
	if p.err != nil {
		return nil, p.err
	}
	return auth.Auth[testPrincipal]{AuthPrincipal: &testPrincipal{id: string(token.(testToken))}}, nil
}

func testTokenProvider(r *http.Request) (auth.Token, bool) {
	value := r.Header.Get("X-Test-Token")
	return testToken(value), value != ""
}

func serve(t *testing.T, srv pkghttp.Server, req *http.Request) (*httptest.ResponseRecorder, pkghttp.ErrorBody) {
	t.Helper()

	rec := httptest.NewRecorder()
	srv.HTTPHandler().ServeHTTP(rec, req)

	var body pkghttp.ErrorBody
	if rec.Code >= http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestServer_Register_MapsErrorsToStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		handle     pkghttp.HandlerFunc
		wantCode   int
		wantReason string
		wantMsg    string
	}{
		{
			name: "success_with_body",
			handle: func(w pkghttp.ResponseWriter, _ *http.Request) error {
				w.SetJSONBody(map[string]bool{"success": true})
				return nil
			},
			wantCode: http.StatusOK,
		},
		{
			name: "parsing_error_is_bad_request",
			handle: func(_ pkghttp.ResponseWriter, r *http.Request) error {
				_, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[map[string]string](), nil)
				return err
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unauthenticated_carries_reason",
			handle: func(pkghttp.ResponseWriter, *http.Request) error {
				return auth.NewUnauthenticatedError("unknown_credentials", "Unknown credentials")
			},
			wantCode:   http.StatusUnauthorized,
			wantReason: "unknown_credentials",
			wantMsg:    "Unknown credentials",
		},
		{
			name: "explicit_status_wins",
			handle: func(w pkghttp.ResponseWriter, _ *http.Request) error {
				w.SetStatusCode(http.StatusConflict)
				return errors.New("conflict")
			},
			wantCode: http.StatusConflict,
			wantMsg:  "conflict",
		},
		{
			name: "internal_error_hides_message",
			handle: func(pkghttp.ResponseWriter, *http.Request) error {
				return errors.New("connection refused")
			},
			wantCode: http.StatusInternalServerError,
			wantMsg:  http.StatusText(http.StatusInternalServerError),
		},
		{
			name: "panic_is_internal_error",
			handle: func(pkghttp.ResponseWriter, *http.Request) error {
				panic("boom")
			},
			wantCode: http.StatusInternalServerError,
			wantMsg:  http.StatusText(http.StatusInternalServerError),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := pkghttp.NewServer(pkghttp.DefaultServerAddress)
			srv.Register(testHandler{method: http.MethodPost, path: "/test", handle: tt.handle})

			rec, body := serve(t, srv, httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("{")))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode < http.StatusBadRequest {
				assert.JSONEq(t, `{"success":true}`, rec.Body.String())
				return
			}
			assert.Equal(t, tt.wantCode, body.StatusCode)
			assert.Equal(t, http.StatusText(tt.wantCode), body.Error)
			assert.Equal(t, tt.wantReason, body.Reason)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Message)
			}
		})
	}
}

func TestServer_WithAuthenticationRequirement(t *testing.T) {
	protected := testHandler{
		method: http.MethodGet,
		path:   "/protected",
		handle: func(w pkghttp.ResponseWriter, r *http.Request) error {
			authentication, ok := auth.GetAuthentication[testPrincipal](r.Context())
			if !ok || authentication.Principal() == nil {
				return auth.ErrUnauthenticated
			}
			w.SetJSONBody(map[string]string{"id": authentication.Principal().id})
			return nil
		},
	}

	newServer := func(provider testProvider) pkghttp.Server {
		srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithAuth[testPrincipal](provider, testTokenProvider))
		srv.Register(protected, pkghttp.WithAuthenticationRequirement("Hawk"))
		return srv
	}

	t.Run("authenticated_request_passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-Test-Token", "42")

		rec, _ := serve(t, newServer(testProvider{}), req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":"42"}`, rec.Body.String())
	})
	t.Run("missing_token_is_challenged", func(t *testing.T) {
		rec, body := serve(t, newServer(testProvider{}), httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Hawk", rec.Header().Get("WWW-Authenticate"))
		assert.Equal(t, auth.ReasonMissingCredentials, body.Reason)
	})
	t.Run("rejected_token_keeps_reason", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-Test-Token", "42")

		rec, body := serve(t, newServer(testProvider{err: auth.NewUnauthenticatedError("expired", "Expired token")}), req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "expired", body.Reason)
		assert.Equal(t, "Expired token", body.Message)
	})
	t.Run("provider_failure_is_internal_error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-Test-Token", "42")

		rec, _ := serve(t, newServer(testProvider{err: errors.New("db down")}), req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_WithHealthCheck(t *testing.T) {
	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithHealthCheck(nil))

	rec, _ := serve(t, srv, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
}

func TestServer_Register_RejectsOversizedJSONBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "within_limit", body: `{"username":"alice"}`, wantCode: http.StatusOK},
		{name: "over_limit", body: `{"username":"` + strings.Repeat("a", 2<<20) + `"}`, wantCode: http.StatusRequestEntityTooLarge},
		{name: "over_limit_whitespace", body: strings.Repeat(" ", 2<<20) + `{}`, wantCode: http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := pkghttp.NewServer(pkghttp.DefaultServerAddress)
			srv.Register(testHandler{method: http.MethodPost, path: "/test", handle: func(w pkghttp.ResponseWriter, r *http.Request) error {
				_, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[map[string]string](), nil)
				if err != nil {
					return err
				}
				w.SetJSONBody(map[string]bool{"success": true})
				return nil
			}})

			rec, body := serve(t, srv, httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode >= http.StatusBadRequest {
				assert.Equal(t, tt.wantCode, body.StatusCode)
			}
		})
	}
}

func TestServer_WithPrincipalObservability(t *testing.T) {
	observer := observability.New()
	handler := testHandler{
		method: http.MethodGet,
		path:   "/observed",
		handle: func(w pkghttp.ResponseWriter, r *http.Request) error {
			principal, ok := observer.Principal(r.Context())
			if !ok {
				w.SetJSONBody(map[string]string{"principal": ""})
				return nil
			}
			w.SetJSONBody(map[string]string{"principal": *principal.ID()})
			return nil
		},
	}

	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithAuth[testPrincipal](testProvider{}, testTokenProvider))
	srv.Register(handler, pkghttp.WithPrincipalObservability(observer))

	t.Run("authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/observed", nil)
		req.Header.Set("X-Test-Token", "42")

		rec, _ := serve(t, srv, req)
		assert.JSONEq(t, `{"principal":"42"}`, rec.Body.String())
	})
	t.Run("anonymous", func(t *testing.T) {
		rec, _ := serve(t, srv, httptest.NewRequest(http.MethodGet, "/observed", nil))
		assert.JSONEq(t, `{"principal":""}`, rec.Body.String())
	})
}
