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
	return jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
}

func protectedServer(ja *jwtauth.JWTAuth, adminOnly bool) http.Handler {
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if adminOnly {
		h = AdminOnly(h)
	}
	h = AuthRequired(ja)(h)
	return jwtauth.Verifier(ja)(h)
}

func bearerRequest(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) *http.Request {
	t.Helper()
	_, tokenString, err := ja.Encode(claims)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	return req
}

func TestAuthRequired(t *testing.T) {
	ja := newTestAuth()
	server := protectedServer(ja, false)

	cases := []struct {
		name   string
		claims map[string]interface{}
		want   int
	}{
		{"access token", map[string]interface{}{"role": "approver", "type": "access"}, http.StatusOK},
		{"wrong token type", map[string]interface{}{"role": "approver", "type": "refresh"}, http.StatusUnauthorized},
		{"non-string type claim", map[string]interface{}{"role": "approver", "type": 7}, http.StatusUnauthorized},
		{"missing type claim", map[string]interface{}{"role": "approver"}, http.StatusUnauthorized},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, bearerRequest(t, ja, c.claims))
			assert.Equal(t, c.want, rec.Code)
		})
	}
}

func TestAuthRequiredMissingToken(t *testing.T) {
	ja := newTestAuth()
	server := protectedServer(ja, false)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	ja := newTestAuth()
	server := protectedServer(ja, true)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, bearerRequest(t, ja, map[string]interface{}{"role": "admin", "type": "access"}))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, bearerRequest(t, ja, map[string]interface{}{"role": "approver", "type": "access"}))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
