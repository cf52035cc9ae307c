package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/unrolled/render"

	"github.com/grabpoint/api/app/services"
	"github.com/grabpoint/api/app/utils/apperrors"
	"github.com/grabpoint/api/app/utils/respond"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// AuthMiddleware validates the bearer token and threads the caller identity
// into the request context. Handlers read it back with ClaimsFromContext;
// there is no other source of "current user".
func AuthMiddleware(tokens *services.TokenService, r *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			header := req.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				respond.Err(r, w, apperrors.Authenticationf("missing bearer token"))
				return
			}

			claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respond.Err(r, w, err)
				return
			}

			ctx := context.WithValue(req.Context(), claimsKey, claims)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*services.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*services.Claims)
	return claims, ok
}
