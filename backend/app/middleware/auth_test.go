package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jwtutil "fleetd/backend/app/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth() *Auth {
	return &Auth{
		Token:  "shared-secret",
		Signer: &jwtutil.Signer{Secret: []byte("jwt-secret"), Issuer: "fleetd", ExpMin: 5},
	}
}

func call(t *testing.T, a *Auth, header string) (int, bool) {
	t.Helper()
	reached := false
	h := a.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/v2/computers", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code, reached
}

func TestAuth_SharedSecret(t *testing.T) {
	code, reached := call(t, newAuth(), "Bearer shared-secret")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, reached)
}

func TestAuth_OperatorJWT(t *testing.T) {
	a := newAuth()
	token, err := a.Signer.Sign(1, "operator")
	require.NoError(t, err)

	code, reached := call(t, a, "Bearer "+token)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, reached)
}

func TestAuth_Rejections(t *testing.T) {
	a := newAuth()
	for _, header := range []string{"", "Bearer wrong", "Basic abc", "shared-secret"} {
		code, reached := call(t, a, header)
		assert.Equal(t, http.StatusUnauthorized, code, "header %q", header)
		assert.False(t, reached, "handler must not run for header %q", header)
	}
}
