package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"animal-registry/internal/platform/logger"
	"animal-registry/internal/ports/auth"

	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	claims auth.Claims
	err    error
}

func (v stubVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if token != "good" {
		return auth.Claims{}, errors.New("bad token")
	}
	return v.claims, v.err
}

func captureClaims(got *auth.Claims, ok *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got, *ok = GetClaims(r.Context())
	})
}

func TestAuthContext_DevHeader(t *testing.T) {
	var got auth.Claims
	var ok bool
	h := AuthContext(nil, nil)(captureClaims(&got, &ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", "owner-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, ok)
	assert.Equal(t, "owner-1", got.UserID)
}

func TestAuthContext_Bearer(t *testing.T) {
	var got auth.Claims
	var ok bool
	h := AuthContext(stubVerifier{claims: auth.Claims{UserID: "owner-2"}}, nil)(captureClaims(&got, &ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, ok)
	assert.Equal(t, "owner-2", got.UserID)

	ok = false
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.False(t, ok)

	// Con verifier configurado el header de debug no vale.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", "owner-1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.False(t, ok)
}

func TestRecover_Returns500AndLogs(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: "error", Format: logger.FormatJSON, Output: &buf})

	h := Recover(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.Contains(buf.String(), "kaboom"))
}

func TestRequestLog_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: "info", Format: logger.FormatJSON, Output: &buf})

	h := RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tea", nil))

	out := buf.String()
	assert.True(t, strings.Contains(out, `"status":418`))
	assert.True(t, strings.Contains(out, `"path":"/tea"`))
}

func TestAuthContext_LogsRejectedToken(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: "warn", Format: logger.FormatJSON, Output: &buf})

	var got auth.Claims
	var ok bool
	h := AuthContext(stubVerifier{claims: auth.Claims{UserID: "owner-2"}}, log)(captureClaims(&got, &ok))

	req := httptest.NewRequest(http.MethodGet, "/animals", nil)
	req.Header.Set("Authorization", "Bearer bad")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, ok)
	out := buf.String()
	assert.True(t, strings.Contains(out, "token rejected"))
	assert.True(t, strings.Contains(out, "bad token"))
	assert.True(t, strings.Contains(out, `"component":"auth"`))
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("  bearer   abc "))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken(""))
}

func TestGetClaims_RoundTrip(t *testing.T) {
	_, ok := GetClaims(context.Background())
	assert.False(t, ok)

	c, ok := GetClaims(WithClaims(context.Background(), auth.Claims{UserID: "owner-3"}))
	assert.True(t, ok)
	assert.Equal(t, "owner-3", c.UserID)
}
