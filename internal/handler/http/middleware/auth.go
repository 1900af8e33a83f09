package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/ledgerline/backoffice-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose bearer token failed verification or
// carries no user identity. Tokens are issued by the external identity
// provider; only verification happens here.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.Unauthorized(w, "Token is missing identity claims")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
