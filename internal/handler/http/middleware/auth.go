package middleware

import (
	"context"
	"net/http"

	"github.com/basratech/hr-suite-go/internal/handler/http/response"
	"github.com/basratech/hr-suite-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type identityKey struct{}

// AuthRequired rejects requests without a verified access token. It must run
// after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}
		if token == nil {
			response.Unauthorized(w, "Missing token")
			return
		}

		tokenType, ok := claims["type"].(string)
		if tokenType != jwt.TokenTypeAccess || !ok {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		var identity jwt.Identity
		identity.UserID, _ = claims["user_id"].(string)
		identity.Email, _ = claims["email"].(string)
		identity.Name, _ = claims["name"].(string)
		identity.Role, _ = claims["role"].(string)
		if identity.UserID == "" {
			response.Unauthorized(w, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey{}, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the caller set by AuthRequired.
func IdentityFromContext(ctx context.Context) (jwt.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(jwt.Identity)
	return identity, ok
}

// WithIdentity is used by tests to bypass token verification.
func WithIdentity(ctx context.Context, identity jwt.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}
