package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth() *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte("test-secret"), nil)
}

func protect(ja *jwtauth.JWTAuth, mw func(http.Handler) http.Handler) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return jwtauth.Verifier(ja)(mw(ok))
}

func requestWithToken(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) *http.Request {
	t.Helper()
	_, tokenString, err := ja.Encode(claims)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	return req
}

func TestAuthRequired_AllowsAccessToken(t *testing.T) {
	ja := newTestAuth()
	handler := protect(ja, AuthRequired(ja))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithToken(t, ja, map[string]interface{}{"type": "access"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_RejectsRefreshToken(t *testing.T) {
	ja := newTestAuth()
	handler := protect(ja, AuthRequired(ja))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithToken(t, ja, map[string]interface{}{"type": "refresh"}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsMissingToken(t *testing.T) {
	ja := newTestAuth()
	handler := protect(ja, AuthRequired(ja))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly_AllowsAdminRole(t *testing.T) {
	ja := newTestAuth()
	handler := protect(ja, AdminOnly)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithToken(t, ja, map[string]interface{}{"type": "access", "role": "admin"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly_RejectsStaffRole(t *testing.T) {
	ja := newTestAuth()
	handler := protect(ja, AdminOnly)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithToken(t, ja, map[string]interface{}{"type": "access", "role": "staff"}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
