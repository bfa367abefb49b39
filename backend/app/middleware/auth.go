package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "fleetd/backend/app/jwt"
)

type ctxKey int

const ClaimsKey ctxKey = 1

// Auth guards the control API. Every guarded route accepts either the
// shared-secret agent token or an operator JWT; rejection happens before
// any validation or storage access.
type Auth struct {
	Token  string
	Signer *jwtutil.Signer
}

func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			unauthorized(w)
			return
		}
		token := strings.TrimPrefix(authz, "Bearer ")
		if a.Token != "" && token == a.Token {
			next.ServeHTTP(w, r)
			return
		}
		claims, err := a.Signer.Parse(token)
		if err != nil {
			unauthorized(w)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
