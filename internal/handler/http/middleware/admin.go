package middleware

import (
	"net/http"

	"github.com/basratech/hr-suite-go/internal/domain/user"
	"github.com/basratech/hr-suite-go/internal/handler/http/response"
)

// AdminOnly must run after AuthRequired.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Missing token")
			return
		}
		if identity.Role != string(user.RoleAdmin) {
			response.Forbidden(w, "Admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
