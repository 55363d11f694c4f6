package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	const key = "test-api-key"
	mw := AuthMiddleware(key)(okHandler())

	t.Run("Valid Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/duels/current", nil)
		req.Header.Set(HeaderAPIKey, key)
		w := httptest.NewRecorder()

		mw.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/duels/current", nil)
		w := httptest.NewRecorder()

		mw.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/duels/current", nil)
		req.Header.Set(HeaderAPIKey, "wrong")
		w := httptest.NewRecorder()

		mw.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Public Paths Bypass Auth", func(t *testing.T) {
		for _, path := range PublicPaths {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()

			mw.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, "path %s should be public", path)
		}
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	mw := SecurityHeadersMiddleware()(okHandler())

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	mw.ServeHTTP(w, req)

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}
