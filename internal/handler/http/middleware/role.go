package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/ledgerline/backoffice-backend-go/internal/handler/http/response"
)

// AdminOnly guards mutating back-office routes: payroll processing, settings
// and reviews require the admin role claim.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != "admin" {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
