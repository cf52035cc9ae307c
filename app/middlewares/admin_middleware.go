package middlewares

import (
	"net/http"

	"github.com/unrolled/render"

	"github.com/grabpoint/api/app/utils/apperrors"
	"github.com/grabpoint/api/app/utils/respond"
)

// AdminMiddleware gates operator endpoints on the staff claim. It must run
// inside AuthMiddleware.
func AdminMiddleware(r *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			claims, ok := ClaimsFromContext(req.Context())
			if !ok {
				respond.Err(r, w, apperrors.Authenticationf("missing bearer token"))
				return
			}
			if !claims.IsStaff {
				respond.Err(r, w, apperrors.Authorizationf("operator access required"))
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
