package web

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abgdnv/productstore/pkg/config"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type stubVerifier struct {
	token jwt.Token
	err   error
}

func (s stubVerifier) Verify(_ context.Context, _ string) (jwt.Token, error) {
	return s.token, s.err
}

func Test_RequestIDInjector(t *testing.T) {
	var seen string
	h := RequestIDInjector(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetReqID(r.Context())
	}))

	t.Run("generates id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("reuses incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rr.Header().Get(middleware.RequestIDHeader))
	})
}

func Test_Recoverer(t *testing.T) {
	h := Recoverer(discardLogger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()

	require.NotPanics(t, func() {
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func Test_BearerAuth(t *testing.T) {
	validToken, err := jwt.NewBuilder().Subject("user-1").Build()
	require.NoError(t, err)
	noSubject, err := jwt.NewBuilder().Build()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		header       string
		verifier     stubVerifier
		expectedCode int
	}{
		{name: "valid", header: "Bearer good", verifier: stubVerifier{token: validToken}, expectedCode: http.StatusOK},
		{name: "missing header", header: "", verifier: stubVerifier{token: validToken}, expectedCode: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", verifier: stubVerifier{token: validToken}, expectedCode: http.StatusUnauthorized},
		{name: "verification failed", header: "Bearer bad", verifier: stubVerifier{err: errors.New("bad signature")}, expectedCode: http.StatusUnauthorized},
		{name: "no subject", header: "Bearer good", verifier: stubVerifier{token: noSubject}, expectedCode: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var logs bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
			h := BearerAuth(tc.verifier, logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			req := httptest.NewRequest(http.MethodPost, "/api/v1/products", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			// when
			h.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedCode == http.StatusOK {
				assert.Contains(t, logs.String(), `"subject":"user-1"`)
			}
		})
	}
}

func Test_CORS_Preflight(t *testing.T) {
	h := CORS(config.CORSConfig{AllowedOrigins: []string{"https://shop.example"}, MaxAge: time.Minute})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/products", nil)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	assert.Equal(t, "https://shop.example", rr.Header().Get("Access-Control-Allow-Origin"))
}

func Test_RespondJSON(t *testing.T) {
	t.Run("payload", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RespondJSON(rr, discardLogger, http.StatusCreated, map[string]string{"id": "p1"})
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"id":"p1"}`, rr.Body.String())
	})
	t.Run("nil payload", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RespondJSON(rr, discardLogger, http.StatusNoContent, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}
