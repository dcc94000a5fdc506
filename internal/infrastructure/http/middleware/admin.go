package middleware

import (
	"context"
	"net/http"
)

type adminKey struct{}

// NewAdminMiddleware marks requests carrying ?admin=1 as admin-mode. This
// only unlocks editing controls; it is not authentication.
func NewAdminMiddleware(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if enabled && r.URL.Query().Get("admin") == "1" {
				r = r.WithContext(context.WithValue(r.Context(), adminKey{}, true))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func IsAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(adminKey{}).(bool)
	return admin
}
