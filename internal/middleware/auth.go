package middleware

import (
	"context"
	"net/http"

	"tastebite-be/internal/user"
)

type contextKey string

const IdentityKey contextKey = "identity"

// AuthMiddleware attaches the signed-in identity to the request context when
// a valid token is present. Requests without a token pass through anonymous;
// handlers that need an identity check for it themselves.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := user.ExtractAccessToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, user.Identity{
			Name:  claims.Name,
			Email: claims.Email,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the authenticated identity, if any.
func IdentityFromContext(ctx context.Context) (user.Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(user.Identity)
	return id, ok
}
